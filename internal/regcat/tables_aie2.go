package regcat

// Register tables are static per generation data. Rows are {name, offset, size in bits}
// where the offset is relative to the tile base address.

var aie2Core = []Register{
	{"cm_core_control", 0x00032000, 32},
	{"cm_core_status", 0x00032004, 32},
	{"cm_program_counter", 0x00031100, 32},
	{"cm_core_amhh0_part1", 0x00030060, 128},
	{"cm_core_amhh0_part2", 0x00030070, 128},
	{"cm_timer_control", 0x00034000, 32},
	{"cm_timer_low", 0x000340F8, 32},
	{"cm_event_generate", 0x00034008, 32},
	{"cm_event_broadcast0", 0x00034010, 32},
	{"cm_event_broadcast1", 0x00034014, 32},
	{"cm_event_broadcast_block_south_set", 0x00034050, 32},
	{"cm_event_broadcast_block_south_value", 0x00034058, 32},
	{"cm_event_broadcast_block_west_set", 0x00034060, 32},
	{"cm_event_broadcast_block_west_value", 0x00034068, 32},
	{"cm_event_broadcast_block_north_set", 0x00034070, 32},
	{"cm_event_broadcast_block_north_value", 0x00034078, 32},
	{"cm_event_broadcast_block_east_set", 0x00034080, 32},
	{"cm_event_broadcast_block_east_value", 0x00034088, 32},
	{"cm_event_status0", 0x00034200, 32},
	{"cm_event_group_0_enable", 0x00034500, 32},
	{"cm_event_group_core_stall_enable", 0x00034508, 32},
	{"cm_event_group_core_program_flow_enable", 0x0003450C, 32},
	{"cm_event_group_stream_switch_enable", 0x00034518, 32},
	{"cm_combo_event_control", 0x00034404, 32},
	{"cm_edge_detection_event_control", 0x00034408, 32},
	{"cm_performance_control0", 0x00031500, 32},
	{"cm_performance_control1", 0x00031504, 32},
	{"cm_performance_counter0", 0x00031520, 32},
	{"cm_performance_counter1", 0x00031524, 32},
	{"cm_performance_counter2", 0x00031528, 32},
	{"cm_performance_counter3", 0x0003152C, 32},
	{"cm_performance_counter0_event_value", 0x00031580, 32},
	{"cm_trace_control0", 0x000340D0, 32},
	{"cm_trace_control1", 0x000340D4, 32},
	{"cm_trace_status", 0x000340D8, 32},
	{"cm_trace_event0", 0x000340E0, 32},
	{"cm_trace_event1", 0x000340E4, 32},
	{"cm_stream_switch_event_port_selection_0", 0x0003FF00, 32},
}

var aie2Memory = []Register{
	{"mm_dma_bd0_0", 0x0001D000, 32},
	{"mm_dma_s2mm_0_ctrl", 0x0001DE00, 32},
	{"mm_dma_mm2s_0_ctrl", 0x0001DE10, 32},
	{"mm_lock0_value", 0x0001F000, 32},
	{"mm_timer_control", 0x00014000, 32},
	{"mm_timer_low", 0x000140F8, 32},
	{"mm_event_generate", 0x00014008, 32},
	{"mm_event_broadcast0", 0x00014010, 32},
	{"mm_event_broadcast1", 0x00014014, 32},
	{"mm_event_broadcast_block_south_set", 0x00014050, 32},
	{"mm_event_broadcast_block_south_value", 0x00014058, 32},
	{"mm_event_broadcast_block_west_set", 0x00014060, 32},
	{"mm_event_broadcast_block_west_value", 0x00014068, 32},
	{"mm_event_broadcast_block_north_set", 0x00014070, 32},
	{"mm_event_broadcast_block_north_value", 0x00014078, 32},
	{"mm_event_broadcast_block_east_set", 0x00014080, 32},
	{"mm_event_broadcast_block_east_value", 0x00014088, 32},
	{"mm_event_status0", 0x00014200, 32},
	{"mm_event_group_0_enable", 0x00014500, 32},
	{"mm_event_group_dma_enable", 0x00014508, 32},
	{"mm_combo_event_control", 0x00014404, 32},
	{"mm_edge_detection_event_control", 0x00014408, 32},
	{"mm_performance_control0", 0x00011000, 32},
	{"mm_performance_control1", 0x00011008, 32},
	{"mm_performance_counter0", 0x00011020, 32},
	{"mm_performance_counter1", 0x00011024, 32},
	{"mm_performance_counter0_event_value", 0x00011080, 32},
	{"mm_trace_control0", 0x000140D0, 32},
	{"mm_trace_control1", 0x000140D4, 32},
	{"mm_trace_status", 0x000140D8, 32},
	{"mm_trace_event0", 0x000140E0, 32},
	{"mm_trace_event1", 0x000140E4, 32},
}

var aie2MemoryTile = []Register{
	{"mem_dma_bd0_0", 0x000A0000, 32},
	{"mem_dma_s2mm_0_ctrl", 0x000A0600, 32},
	{"mem_dma_mm2s_0_ctrl", 0x000A0630, 32},
	{"mem_dma_event_channel_selection", 0x000A06A0, 32},
	{"mem_lock0_value", 0x000C0000, 32},
	{"mem_timer_control", 0x00094000, 32},
	{"mem_timer_low", 0x000940F8, 32},
	{"mem_event_generate", 0x00094008, 32},
	{"mem_event_broadcast0", 0x00094010, 32},
	{"mem_event_broadcast1", 0x00094014, 32},
	{"mem_event_broadcast_a_block_south_set", 0x00094050, 32},
	{"mem_event_broadcast_a_block_south_value", 0x00094058, 32},
	{"mem_event_broadcast_a_block_west_set", 0x00094060, 32},
	{"mem_event_broadcast_a_block_west_value", 0x00094068, 32},
	{"mem_event_broadcast_a_block_north_set", 0x00094070, 32},
	{"mem_event_broadcast_a_block_north_value", 0x00094078, 32},
	{"mem_event_broadcast_a_block_east_set", 0x00094080, 32},
	{"mem_event_broadcast_a_block_east_value", 0x00094088, 32},
	{"mem_event_broadcast_b_block_south_set", 0x00094090, 32},
	{"mem_event_broadcast_b_block_south_value", 0x00094098, 32},
	{"mem_event_broadcast_b_block_west_set", 0x000940A0, 32},
	{"mem_event_broadcast_b_block_west_value", 0x000940A8, 32},
	{"mem_event_broadcast_b_block_north_set", 0x000940B0, 32},
	{"mem_event_broadcast_b_block_north_value", 0x000940B8, 32},
	{"mem_event_broadcast_b_block_east_set", 0x000940C0, 32},
	{"mem_event_broadcast_b_block_east_value", 0x000940C8, 32},
	{"mem_event_status0", 0x00094200, 32},
	{"mem_event_group_0_enable", 0x00094500, 32},
	{"mem_event_group_dma_enable", 0x00094508, 32},
	{"mem_event_group_stream_switch_enable", 0x00094510, 32},
	{"mem_combo_event_control", 0x00094404, 32},
	{"mem_edge_detection_event_control", 0x00094408, 32},
	{"mem_performance_control0", 0x00091000, 32},
	{"mem_performance_control1", 0x00091004, 32},
	{"mem_performance_counter0", 0x00091020, 32},
	{"mem_performance_counter1", 0x00091024, 32},
	{"mem_performance_counter2", 0x00091028, 32},
	{"mem_performance_counter3", 0x0009102C, 32},
	{"mem_performance_counter0_event_value", 0x00091080, 32},
	{"mem_trace_control0", 0x000940D0, 32},
	{"mem_trace_control1", 0x000940D4, 32},
	{"mem_trace_status", 0x000940D8, 32},
	{"mem_trace_event0", 0x000940E0, 32},
	{"mem_trace_event1", 0x000940E4, 32},
	{"mem_stream_switch_event_port_selection_0", 0x000B0F00, 32},
}

var aie2Shim = []Register{
	{"shim_dma_bd0_0", 0x0001D000, 32},
	{"shim_dma_s2mm_0_ctrl", 0x0001D200, 32},
	{"shim_dma_mm2s_0_ctrl", 0x0001D210, 32},
	{"shim_lock0_value", 0x00014000, 32},
	{"shim_timer_control", 0x00034000, 32},
	{"shim_timer_low", 0x000340F8, 32},
	{"shim_event_generate", 0x00034008, 32},
	{"shim_event_broadcast_a_block_south_set", 0x00034050, 32},
	{"shim_event_broadcast_a_block_south_value", 0x00034058, 32},
	{"shim_event_broadcast_a_block_west_set", 0x00034060, 32},
	{"shim_event_broadcast_a_block_west_value", 0x00034068, 32},
	{"shim_event_broadcast_a_block_north_set", 0x00034070, 32},
	{"shim_event_broadcast_a_block_north_value", 0x00034078, 32},
	{"shim_event_broadcast_a_block_east_set", 0x00034080, 32},
	{"shim_event_broadcast_a_block_east_value", 0x00034088, 32},
	{"shim_event_broadcast_b_block_south_set", 0x00034090, 32},
	{"shim_event_broadcast_b_block_south_value", 0x00034098, 32},
	{"shim_event_broadcast_b_block_west_set", 0x000340A0, 32},
	{"shim_event_broadcast_b_block_west_value", 0x000340A8, 32},
	{"shim_event_broadcast_b_block_north_set", 0x000340B0, 32},
	{"shim_event_broadcast_b_block_north_value", 0x000340B8, 32},
	{"shim_event_broadcast_b_block_east_set", 0x000340C0, 32},
	{"shim_event_broadcast_b_block_east_value", 0x000340C8, 32},
	{"shim_event_status0", 0x00034200, 32},
	{"shim_event_group_0_enable", 0x00034500, 32},
	{"shim_event_group_dma_enable", 0x00034504, 32},
	{"shim_event_group_stream_switch_enable", 0x00034510, 32},
	{"shim_combo_event_control", 0x00034404, 32},
	{"shim_edge_detection_event_control", 0x00034408, 32},
	{"shim_performance_control0", 0x00031000, 32},
	{"shim_performance_control1", 0x00031008, 32},
	{"shim_performance_counter0", 0x00031020, 32},
	{"shim_performance_counter1", 0x00031024, 32},
	{"shim_performance_counter0_event_value", 0x00031080, 32},
	{"shim_trace_control0", 0x000340D0, 32},
	{"shim_trace_control1", 0x000340D4, 32},
	{"shim_trace_status", 0x000340D8, 32},
	{"shim_trace_event0", 0x000340E0, 32},
	{"shim_trace_event1", 0x000340E4, 32},
	{"shim_stream_switch_event_port_selection_0", 0x0003FF00, 32},
}
