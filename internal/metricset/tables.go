package metricset

import (
	"aietrace/internal/aie"
	"aietrace/internal/events"
)

// AIE tile core module

func coreSets(gen aie.Generation) map[string][]events.Event {
	return map[string][]events.Event{
		"functions": {events.EventInstrCallCore, events.EventInstrReturnCore},
	}
}

var coreAliases = []alias{
	{"partial_stalls", "functions"},
	{"all_stalls", "functions"},
	{"all_dma", "functions"},
	{"all_stalls_dma", "functions"},
	{"s2mm_channels", "functions"},
	{"mm2s_channels", "functions"},
	{"all_stalls_s2mm", "functions"},
	{"all_stalls_mm2s", "functions"},
	{"s2mm_channels_stalls", "functions"},
	{"mm2s_channels_stalls", "functions"},
}

// AIE tile memory module

func memorySets(gen aie.Generation) map[string][]events.Event {
	allStallsS2MM := []events.Event{
		events.EventInstrCallCore, events.EventInstrReturnCore,
		events.EventMemoryStallCore, events.EventStreamStallCore, events.EventLockStallCore,
		events.EventPortRunning0Core, events.EventPortRunning1Core,
	}
	if gen > aie.GenAIE1 {
		allStallsS2MM = append(allStallsS2MM, events.EventCascadeStallCore)
	}

	return map[string][]events.Event{
		"functions": {events.EventInstrCallCore, events.EventInstrReturnCore},
		"partial_stalls": {
			events.EventInstrCallCore, events.EventInstrReturnCore,
			events.EventStreamStallCore, events.EventCascadeStallCore, events.EventLockStallCore,
		},
		"all_stalls": {
			events.EventInstrCallCore, events.EventInstrReturnCore,
			events.EventMemoryStallCore, events.EventStreamStallCore,
			events.EventCascadeStallCore, events.EventLockStallCore,
		},
		"all_dma": {
			events.EventInstrCallCore, events.EventInstrReturnCore,
			events.EventPortRunning0Core, events.EventPortRunning1Core,
			events.EventPortRunning2Core, events.EventPortRunning3Core,
		},
		"all_stalls_s2mm": allStallsS2MM,
		"all_stalls_dma": {
			events.EventInstrCallCore, events.EventInstrReturnCore,
			events.EventGroupCoreStallCore,
			events.EventPortRunning0Core, events.EventPortRunning1Core,
			events.EventPortRunning2Core, events.EventPortRunning3Core,
		},
		"s2mm_channels": {
			events.EventInstrCallCore, events.EventInstrReturnCore,
			events.EventPortRunning0Core, events.EventPortStalled0Core,
			events.EventPortRunning1Core, events.EventPortStalled1Core,
		},
		"s2mm_channels_stalls": {
			events.EventDMAS2MM0StartTaskMem, events.EventDMAS2MM0FinishedBDMem,
			events.EventDMAS2MM0FinishedTaskMem, events.EventDMAS2MM0StalledLockMem,
			events.EventEdgeDetectionEvent0Mem, events.EventEdgeDetectionEvent1Mem,
			events.EventDMAS2MM0MemoryBackpressureMem,
		},
		"mm2s_channels_stalls": {
			events.EventDMAMM2S0StartTaskMem, events.EventDMAMM2S0FinishedBDMem,
			events.EventDMAMM2S0FinishedTaskMem,
			events.EventEdgeDetectionEvent0Mem, events.EventEdgeDetectionEvent1Mem,
			events.EventDMAMM2S0StreamBackpressureMem, events.EventDMAMM2S0MemoryStarvationMem,
		},
	}
}

var memoryAliases = []alias{
	{"mm2s_channels", "s2mm_channels"},
	{"all_stalls_mm2s", "all_stalls_s2mm"},
	// deprecated names
	{"functions_partial_stalls", "partial_stalls"},
	{"functions_all_stalls", "all_stalls"},
}

// Memory tiles

func memTileSets(gen aie.Generation) map[string][]events.Event {
	return map[string][]events.Event{
		"input_channels": {
			events.EventDMAS2MMSel0StartTaskMemTile, events.EventDMAS2MMSel1StartTaskMemTile,
			events.EventDMAS2MMSel0FinishedBDMemTile, events.EventDMAS2MMSel1FinishedBDMemTile,
			events.EventDMAS2MMSel0FinishedTaskMemTile, events.EventDMAS2MMSel1FinishedTaskMemTile,
		},
		"input_channels_stalls": {
			events.EventDMAS2MMSel0StartTaskMemTile, events.EventDMAS2MMSel0FinishedBDMemTile,
			events.EventDMAS2MMSel0FinishedTaskMemTile, events.EventDMAS2MMSel0StalledLockAcquireMemTile,
			events.EventEdgeDetectionEvent0MemTile, events.EventEdgeDetectionEvent1MemTile,
			events.EventDMAS2MMSel0MemoryBackpressureMemTile,
		},
		"output_channels": {
			events.EventDMAMM2SSel0StartTaskMemTile, events.EventDMAMM2SSel1StartTaskMemTile,
			events.EventDMAMM2SSel0FinishedBDMemTile, events.EventDMAMM2SSel1FinishedBDMemTile,
			events.EventDMAMM2SSel0FinishedTaskMemTile, events.EventDMAMM2SSel1FinishedTaskMemTile,
		},
		"output_channels_stalls": {
			events.EventDMAMM2SSel0StartTaskMemTile, events.EventDMAMM2SSel0FinishedBDMemTile,
			events.EventDMAMM2SSel0FinishedTaskMemTile,
			events.EventEdgeDetectionEvent0MemTile, events.EventEdgeDetectionEvent1MemTile,
			events.EventDMAMM2SSel0StreamBackpressureMemTile, events.EventDMAMM2SSel0MemoryStarvationMemTile,
		},
		"memory_conflicts1": conflictBanks(0),
		"memory_conflicts2": conflictBanks(8),
		"memory_conflicts3": conflictBanks(16),
	}
}

// conflictBanks returns the conflict events of the eight banks starting at first.
func conflictBanks(first int) []events.Event {
	evs := make([]events.Event, 8)
	for i := range evs {
		evs[i] = events.EventConflictDMBank0MemTile + events.Event(first+i)
	}
	return evs
}

var memTileAliases = []alias{
	{"s2mm_channels", "input_channels"},
	{"s2mm_channels_stalls", "input_channels_stalls"},
	{"mm2s_channels", "output_channels"},
	{"mm2s_channels_stalls", "output_channels_stalls"},
}

// Interface tiles

func shimSets(gen aie.Generation) map[string][]events.Event {
	sets := map[string][]events.Event{
		"input_ports": {
			events.EventPortRunning0PL, events.EventPortRunning1PL,
			events.EventPortRunning2PL, events.EventPortRunning3PL,
		},
		"output_ports": {
			events.EventPortRunning0PL, events.EventPortRunning1PL,
			events.EventPortRunning2PL, events.EventPortRunning3PL,
		},
		"input_output_ports": {
			events.EventPortRunning0PL, events.EventPortRunning1PL,
			events.EventPortRunning2PL, events.EventPortRunning3PL,
		},
		"input_ports_stalls": {
			events.EventPortRunning0PL, events.EventPortStalled0PL,
			events.EventPortRunning1PL, events.EventPortStalled1PL,
		},
		"output_ports_stalls": {
			events.EventPortRunning0PL, events.EventPortStalled0PL,
			events.EventPortRunning1PL, events.EventPortStalled1PL,
		},
		"input_output_ports_stalls": {
			events.EventPortRunning0PL, events.EventPortStalled0PL,
			events.EventPortRunning1PL, events.EventPortStalled1PL,
			events.EventPortRunning2PL, events.EventPortStalled2PL,
			events.EventPortRunning3PL, events.EventPortStalled3PL,
		},
		"uc_dma": {
			events.EventDMADM2MMStartTaskUC, events.EventDMADM2MMFinishedBDUC, events.EventDMADM2MMFinishedTaskUC,
			events.EventDMAMM2DMStartTaskUC, events.EventDMAMM2DMFinishedBDUC, events.EventDMAMM2DMFinishedTaskUC,
		},
		"uc_dma_dm2mm": {
			events.EventDMADM2MMStartTaskUC, events.EventDMADM2MMFinishedBDUC, events.EventDMADM2MMFinishedTaskUC,
			events.EventDMADM2MMLocalMemoryStarvationUC, events.EventDMADM2MMRemoteMemoryBackpressureUC,
		},
		"uc_dma_mm2dm": {
			events.EventDMAMM2DMStartTaskUC, events.EventDMAMM2DMFinishedBDUC, events.EventDMAMM2DMFinishedTaskUC,
			events.EventDMAMM2DMLocalMemoryStarvationUC, events.EventDMAMM2DMRemoteMemoryBackpressureUC,
		},
		"uc_axis": {
			events.EventCoreAXISMasterRunningUC, events.EventCoreAXISMasterStalledUC,
			events.EventCoreAXISSlaveRunningUC, events.EventCoreAXISSlaveStalledUC,
		},
		"uc_program_flow": {
			events.EventCoreRegWriteUC, events.EventCoreExceptionTakenUC, events.EventCoreJumpTakenUC,
			events.EventCoreDataReadUC, events.EventCoreDataWriteUC,
			events.EventCoreStreamGetUC, events.EventCoreStreamPutUC,
		},
	}

	switch {
	case gen == aie.GenAIE1:
		sets["input_ports_details"] = []events.Event{
			events.EventDMAMM2S0StartBDPL, events.EventDMAMM2S0FinishedBDPL, events.EventDMAMM2S0StalledLockAcquirePL,
			events.EventDMAMM2S1StartBDPL, events.EventDMAMM2S1FinishedBDPL, events.EventDMAMM2S1StalledLockAcquirePL,
		}
		sets["output_ports_details"] = []events.Event{
			events.EventDMAS2MM0StartBDPL, events.EventDMAS2MM0FinishedBDPL, events.EventDMAS2MM0StalledLockAcquirePL,
			events.EventDMAS2MM1StartBDPL, events.EventDMAS2MM1FinishedBDPL, events.EventDMAS2MM1StalledLockAcquirePL,
		}
	case gen == aie.GenAIE2PS:
		sets["input_ports_details"] = []events.Event{
			events.EventNOC0DMAMM2S0StartTaskPL, events.EventNOC0DMAMM2S0FinishedBDPL,
			events.EventNOC0DMAMM2S0FinishedTaskPL, events.EventNOC0DMAMM2S0StalledLockPL,
			events.EventNOC0DMAMM2S0StreamBackpressurePL, events.EventNOC0DMAMM2S0MemoryStarvationPL,
		}
		sets["output_ports_details"] = []events.Event{
			events.EventNOC0DMAS2MM0StartTaskPL, events.EventNOC0DMAS2MM0FinishedBDPL,
			events.EventNOC0DMAS2MM0FinishedTaskPL, events.EventNOC0DMAS2MM0StalledLockPL,
			events.EventNOC0DMAS2MM0StreamStarvationPL, events.EventNOC0DMAS2MM0MemoryBackpressurePL,
		}
	default:
		sets["input_ports_details"] = []events.Event{
			events.EventDMAMM2S0StartTaskPL, events.EventDMAMM2S0FinishedBDPL,
			events.EventDMAMM2S0FinishedTaskPL, events.EventDMAMM2S0StalledLockPL,
			events.EventDMAMM2S0StreamBackpressurePL, events.EventDMAMM2S0MemoryStarvationPL,
		}
		sets["output_ports_details"] = []events.Event{
			events.EventDMAS2MM0StartTaskPL, events.EventDMAS2MM0FinishedBDPL,
			events.EventDMAS2MM0FinishedTaskPL, events.EventDMAS2MM0StalledLockPL,
			events.EventDMAS2MM0StreamStarvationPL, events.EventDMAS2MM0MemoryBackpressurePL,
		}
	}
	return sets
}

var shimAliases = []alias{
	{"mm2s_ports", "input_ports"},
	{"s2mm_ports", "output_ports"},
	{"mm2s_s2mm_ports", "input_output_ports"},
	{"mm2s_ports_stalls", "input_ports_stalls"},
	{"s2mm_ports_stalls", "output_ports_stalls"},
	{"mm2s_s2mm_ports_stalls", "input_output_ports_stalls"},
	{"mm2s_ports_details", "input_ports_details"},
	{"s2mm_ports_details", "output_ports_details"},
}
