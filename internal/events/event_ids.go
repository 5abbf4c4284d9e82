package events

// Event is an abstract hardware event identifier. Values are stable within this
// package only; the event number a tile actually uses is generation specific
// (see HardwareNumber).
type Event uint16

const (
	EventNone Event = iota

	// Core module
	EventNoneCore
	EventTrueCore
	EventActiveCore
	EventDisabledCore
	EventInstrCallCore
	EventInstrReturnCore
	EventMemoryStallCore
	EventStreamStallCore
	EventCascadeStallCore
	EventLockStallCore
	EventGroupCoreStallCore
	EventGroupCoreProgramFlowCore
	EventGroupStreamSwitchCore
	EventPortIdle0Core
	EventPortIdle1Core
	EventPortIdle2Core
	EventPortIdle3Core
	EventPortIdle4Core
	EventPortIdle5Core
	EventPortIdle6Core
	EventPortIdle7Core
	EventPortRunning0Core
	EventPortRunning1Core
	EventPortRunning2Core
	EventPortRunning3Core
	EventPortRunning4Core
	EventPortRunning5Core
	EventPortRunning6Core
	EventPortRunning7Core
	EventPortStalled0Core
	EventPortStalled1Core
	EventPortStalled2Core
	EventPortStalled3Core
	EventPortStalled4Core
	EventPortStalled5Core
	EventPortStalled6Core
	EventPortStalled7Core
	EventGroupBroadcastCore
	EventInstrErrorCore

	// Memory module
	EventNoneMem
	EventTrueMem
	EventEdgeDetectionEvent0Mem
	EventEdgeDetectionEvent1Mem
	EventDMAS2MM0StartTaskMem
	EventDMAS2MM0FinishedBDMem
	EventDMAS2MM0FinishedTaskMem
	EventDMAS2MM0StalledLockMem
	EventDMAS2MM0StreamStarvationMem
	EventDMAS2MM0MemoryBackpressureMem
	EventDMAS2MM1StartTaskMem
	EventDMAS2MM1FinishedBDMem
	EventDMAS2MM1FinishedTaskMem
	EventDMAS2MM1StalledLockMem
	EventDMAS2MM1StreamStarvationMem
	EventDMAS2MM1MemoryBackpressureMem
	EventDMAMM2S0StartTaskMem
	EventDMAMM2S0FinishedBDMem
	EventDMAMM2S0FinishedTaskMem
	EventDMAMM2S0StalledLockMem
	EventDMAMM2S0StreamBackpressureMem
	EventDMAMM2S0MemoryStarvationMem
	EventDMAMM2S1StartTaskMem
	EventDMAMM2S1FinishedBDMem
	EventDMAMM2S1FinishedTaskMem
	EventDMAMM2S1StalledLockMem
	EventDMAMM2S1StreamBackpressureMem
	EventDMAMM2S1MemoryStarvationMem

	// Memory tile
	EventNoneMemTile
	EventTrueMemTile
	EventEdgeDetectionEvent0MemTile
	EventEdgeDetectionEvent1MemTile
	EventDMAS2MMSel0StartTaskMemTile
	EventDMAS2MMSel0FinishedBDMemTile
	EventDMAS2MMSel0FinishedTaskMemTile
	EventDMAS2MMSel1StartTaskMemTile
	EventDMAS2MMSel1FinishedBDMemTile
	EventDMAS2MMSel1FinishedTaskMemTile
	EventDMAS2MMSel0StalledLockAcquireMemTile
	EventDMAMM2SSel0StartTaskMemTile
	EventDMAMM2SSel0FinishedBDMemTile
	EventDMAMM2SSel0FinishedTaskMemTile
	EventDMAMM2SSel1StartTaskMemTile
	EventDMAMM2SSel1FinishedBDMemTile
	EventDMAMM2SSel1FinishedTaskMemTile
	EventDMAMM2SSel0StalledLockAcquireMemTile
	EventDMAS2MMSel0StreamStarvationMemTile
	EventDMAS2MMSel0MemoryBackpressureMemTile
	EventDMAMM2SSel0StreamBackpressureMemTile
	EventDMAMM2SSel0MemoryStarvationMemTile
	EventGroupStreamSwitchMemTile
	EventPortRunning0MemTile
	EventPortRunning1MemTile
	EventPortRunning2MemTile
	EventPortRunning3MemTile
	EventPortRunning4MemTile
	EventPortRunning5MemTile
	EventPortRunning6MemTile
	EventPortRunning7MemTile
	EventPortStalled0MemTile
	EventPortStalled1MemTile
	EventPortStalled2MemTile
	EventPortStalled3MemTile
	EventPortStalled4MemTile
	EventPortStalled5MemTile
	EventPortStalled6MemTile
	EventPortStalled7MemTile
	EventGroupMemoryConflictMemTile
	EventConflictDMBank0MemTile
	EventConflictDMBank1MemTile
	EventConflictDMBank2MemTile
	EventConflictDMBank3MemTile
	EventConflictDMBank4MemTile
	EventConflictDMBank5MemTile
	EventConflictDMBank6MemTile
	EventConflictDMBank7MemTile
	EventConflictDMBank8MemTile
	EventConflictDMBank9MemTile
	EventConflictDMBank10MemTile
	EventConflictDMBank11MemTile
	EventConflictDMBank12MemTile
	EventConflictDMBank13MemTile
	EventConflictDMBank14MemTile
	EventConflictDMBank15MemTile
	EventConflictDMBank16MemTile
	EventConflictDMBank17MemTile
	EventConflictDMBank18MemTile
	EventConflictDMBank19MemTile
	EventConflictDMBank20MemTile
	EventConflictDMBank21MemTile
	EventConflictDMBank22MemTile
	EventConflictDMBank23MemTile

	// Interface tile
	EventNonePL
	EventTruePL
	EventGroupStreamSwitchPL
	EventPortIdle0PL
	EventPortIdle1PL
	EventPortIdle2PL
	EventPortIdle3PL
	EventPortIdle4PL
	EventPortIdle5PL
	EventPortIdle6PL
	EventPortIdle7PL
	EventPortRunning0PL
	EventPortRunning1PL
	EventPortRunning2PL
	EventPortRunning3PL
	EventPortRunning4PL
	EventPortRunning5PL
	EventPortRunning6PL
	EventPortRunning7PL
	EventPortStalled0PL
	EventPortStalled1PL
	EventPortStalled2PL
	EventPortStalled3PL
	EventPortStalled4PL
	EventPortStalled5PL
	EventPortStalled6PL
	EventPortStalled7PL
	EventGroupBroadcastAPL
	EventDMAS2MM0StartBDPL
	EventDMAS2MM0StalledLockAcquirePL
	EventDMAS2MM0StartTaskPL
	EventDMAS2MM0FinishedBDPL
	EventDMAS2MM0FinishedTaskPL
	EventDMAS2MM0StalledLockPL
	EventDMAS2MM0StreamStarvationPL
	EventDMAS2MM0MemoryBackpressurePL
	EventDMAS2MM1StartBDPL
	EventDMAS2MM1StalledLockAcquirePL
	EventDMAS2MM1StartTaskPL
	EventDMAS2MM1FinishedBDPL
	EventDMAS2MM1FinishedTaskPL
	EventDMAS2MM1StalledLockPL
	EventDMAS2MM1StreamStarvationPL
	EventDMAS2MM1MemoryBackpressurePL
	EventDMAMM2S0StartBDPL
	EventDMAMM2S0StalledLockAcquirePL
	EventDMAMM2S0StartTaskPL
	EventDMAMM2S0FinishedBDPL
	EventDMAMM2S0FinishedTaskPL
	EventDMAMM2S0StalledLockPL
	EventDMAMM2S0StreamBackpressurePL
	EventDMAMM2S0MemoryStarvationPL
	EventDMAMM2S1StartBDPL
	EventDMAMM2S1StalledLockAcquirePL
	EventDMAMM2S1StartTaskPL
	EventDMAMM2S1FinishedBDPL
	EventDMAMM2S1FinishedTaskPL
	EventDMAMM2S1StalledLockPL
	EventDMAMM2S1StreamBackpressurePL
	EventDMAMM2S1MemoryStarvationPL
	EventNOC0DMAS2MM0StartTaskPL
	EventNOC0DMAS2MM0FinishedBDPL
	EventNOC0DMAS2MM0FinishedTaskPL
	EventNOC0DMAS2MM0StalledLockPL
	EventNOC0DMAS2MM0StreamStarvationPL
	EventNOC0DMAS2MM0MemoryBackpressurePL
	EventNOC0DMAS2MM1StartTaskPL
	EventNOC0DMAS2MM1FinishedBDPL
	EventNOC0DMAS2MM1FinishedTaskPL
	EventNOC0DMAS2MM1StalledLockPL
	EventNOC0DMAS2MM1StreamStarvationPL
	EventNOC0DMAS2MM1MemoryBackpressurePL
	EventNOC0DMAMM2S0StartTaskPL
	EventNOC0DMAMM2S0FinishedBDPL
	EventNOC0DMAMM2S0FinishedTaskPL
	EventNOC0DMAMM2S0StalledLockPL
	EventNOC0DMAMM2S0StreamBackpressurePL
	EventNOC0DMAMM2S0MemoryStarvationPL
	EventNOC0DMAMM2S1StartTaskPL
	EventNOC0DMAMM2S1FinishedBDPL
	EventNOC0DMAMM2S1FinishedTaskPL
	EventNOC0DMAMM2S1StalledLockPL
	EventNOC0DMAMM2S1StreamBackpressurePL
	EventNOC0DMAMM2S1MemoryStarvationPL
	EventBroadcastA0PL
	EventBroadcastA1PL
	EventBroadcastA2PL
	EventBroadcastA3PL
	EventBroadcastA4PL
	EventBroadcastA5PL
	EventBroadcastA6PL
	EventBroadcastA7PL
	EventBroadcastA8PL
	EventBroadcastA9PL
	EventBroadcastA10PL
	EventBroadcastA11PL
	EventBroadcastA12PL
	EventBroadcastA13PL
	EventBroadcastA14PL
	EventBroadcastA15PL

	// Interface tile microcontroller
	EventDMADM2MMStartTaskUC
	EventDMADM2MMFinishedBDUC
	EventDMADM2MMFinishedTaskUC
	EventDMADM2MMLocalMemoryStarvationUC
	EventDMADM2MMRemoteMemoryBackpressureUC
	EventDMAMM2DMStartTaskUC
	EventDMAMM2DMFinishedBDUC
	EventDMAMM2DMFinishedTaskUC
	EventDMAMM2DMLocalMemoryStarvationUC
	EventDMAMM2DMRemoteMemoryBackpressureUC
	EventCoreAXISMasterRunningUC
	EventCoreAXISMasterStalledUC
	EventCoreAXISSlaveRunningUC
	EventCoreAXISSlaveStalledUC
	EventCoreRegWriteUC
	EventCoreExceptionTakenUC
	EventCoreJumpTakenUC
	EventCoreDataReadUC
	EventCoreDataWriteUC
	EventCoreStreamGetUC
	EventCoreStreamPutUC

	numEvents
)

var eventNames = [numEvents]string{
	EventNone:                                 "NONE",
	EventNoneCore:                             "NONE_CORE",
	EventTrueCore:                             "TRUE_CORE",
	EventActiveCore:                           "ACTIVE_CORE",
	EventDisabledCore:                         "DISABLED_CORE",
	EventInstrCallCore:                        "INSTR_CALL_CORE",
	EventInstrReturnCore:                      "INSTR_RETURN_CORE",
	EventMemoryStallCore:                      "MEMORY_STALL_CORE",
	EventStreamStallCore:                      "STREAM_STALL_CORE",
	EventCascadeStallCore:                     "CASCADE_STALL_CORE",
	EventLockStallCore:                        "LOCK_STALL_CORE",
	EventGroupCoreStallCore:                   "GROUP_CORE_STALL_CORE",
	EventGroupCoreProgramFlowCore:             "GROUP_CORE_PROGRAM_FLOW_CORE",
	EventGroupStreamSwitchCore:                "GROUP_STREAM_SWITCH_CORE",
	EventPortIdle0Core:                        "PORT_IDLE_0_CORE",
	EventPortIdle1Core:                        "PORT_IDLE_1_CORE",
	EventPortIdle2Core:                        "PORT_IDLE_2_CORE",
	EventPortIdle3Core:                        "PORT_IDLE_3_CORE",
	EventPortIdle4Core:                        "PORT_IDLE_4_CORE",
	EventPortIdle5Core:                        "PORT_IDLE_5_CORE",
	EventPortIdle6Core:                        "PORT_IDLE_6_CORE",
	EventPortIdle7Core:                        "PORT_IDLE_7_CORE",
	EventPortRunning0Core:                     "PORT_RUNNING_0_CORE",
	EventPortRunning1Core:                     "PORT_RUNNING_1_CORE",
	EventPortRunning2Core:                     "PORT_RUNNING_2_CORE",
	EventPortRunning3Core:                     "PORT_RUNNING_3_CORE",
	EventPortRunning4Core:                     "PORT_RUNNING_4_CORE",
	EventPortRunning5Core:                     "PORT_RUNNING_5_CORE",
	EventPortRunning6Core:                     "PORT_RUNNING_6_CORE",
	EventPortRunning7Core:                     "PORT_RUNNING_7_CORE",
	EventPortStalled0Core:                     "PORT_STALLED_0_CORE",
	EventPortStalled1Core:                     "PORT_STALLED_1_CORE",
	EventPortStalled2Core:                     "PORT_STALLED_2_CORE",
	EventPortStalled3Core:                     "PORT_STALLED_3_CORE",
	EventPortStalled4Core:                     "PORT_STALLED_4_CORE",
	EventPortStalled5Core:                     "PORT_STALLED_5_CORE",
	EventPortStalled6Core:                     "PORT_STALLED_6_CORE",
	EventPortStalled7Core:                     "PORT_STALLED_7_CORE",
	EventGroupBroadcastCore:                   "GROUP_BROADCAST_CORE",
	EventInstrErrorCore:                       "INSTR_ERROR_CORE",
	EventNoneMem:                              "NONE_MEM",
	EventTrueMem:                              "TRUE_MEM",
	EventEdgeDetectionEvent0Mem:               "EDGE_DETECTION_EVENT_0_MEM",
	EventEdgeDetectionEvent1Mem:               "EDGE_DETECTION_EVENT_1_MEM",
	EventDMAS2MM0StartTaskMem:                 "DMA_S2MM_0_START_TASK_MEM",
	EventDMAS2MM0FinishedBDMem:                "DMA_S2MM_0_FINISHED_BD_MEM",
	EventDMAS2MM0FinishedTaskMem:              "DMA_S2MM_0_FINISHED_TASK_MEM",
	EventDMAS2MM0StalledLockMem:               "DMA_S2MM_0_STALLED_LOCK_MEM",
	EventDMAS2MM0StreamStarvationMem:          "DMA_S2MM_0_STREAM_STARVATION_MEM",
	EventDMAS2MM0MemoryBackpressureMem:        "DMA_S2MM_0_MEMORY_BACKPRESSURE_MEM",
	EventDMAS2MM1StartTaskMem:                 "DMA_S2MM_1_START_TASK_MEM",
	EventDMAS2MM1FinishedBDMem:                "DMA_S2MM_1_FINISHED_BD_MEM",
	EventDMAS2MM1FinishedTaskMem:              "DMA_S2MM_1_FINISHED_TASK_MEM",
	EventDMAS2MM1StalledLockMem:               "DMA_S2MM_1_STALLED_LOCK_MEM",
	EventDMAS2MM1StreamStarvationMem:          "DMA_S2MM_1_STREAM_STARVATION_MEM",
	EventDMAS2MM1MemoryBackpressureMem:        "DMA_S2MM_1_MEMORY_BACKPRESSURE_MEM",
	EventDMAMM2S0StartTaskMem:                 "DMA_MM2S_0_START_TASK_MEM",
	EventDMAMM2S0FinishedBDMem:                "DMA_MM2S_0_FINISHED_BD_MEM",
	EventDMAMM2S0FinishedTaskMem:              "DMA_MM2S_0_FINISHED_TASK_MEM",
	EventDMAMM2S0StalledLockMem:               "DMA_MM2S_0_STALLED_LOCK_MEM",
	EventDMAMM2S0StreamBackpressureMem:        "DMA_MM2S_0_STREAM_BACKPRESSURE_MEM",
	EventDMAMM2S0MemoryStarvationMem:          "DMA_MM2S_0_MEMORY_STARVATION_MEM",
	EventDMAMM2S1StartTaskMem:                 "DMA_MM2S_1_START_TASK_MEM",
	EventDMAMM2S1FinishedBDMem:                "DMA_MM2S_1_FINISHED_BD_MEM",
	EventDMAMM2S1FinishedTaskMem:              "DMA_MM2S_1_FINISHED_TASK_MEM",
	EventDMAMM2S1StalledLockMem:               "DMA_MM2S_1_STALLED_LOCK_MEM",
	EventDMAMM2S1StreamBackpressureMem:        "DMA_MM2S_1_STREAM_BACKPRESSURE_MEM",
	EventDMAMM2S1MemoryStarvationMem:          "DMA_MM2S_1_MEMORY_STARVATION_MEM",
	EventNoneMemTile:                          "NONE_MEM_TILE",
	EventTrueMemTile:                          "TRUE_MEM_TILE",
	EventEdgeDetectionEvent0MemTile:           "EDGE_DETECTION_EVENT_0_MEM_TILE",
	EventEdgeDetectionEvent1MemTile:           "EDGE_DETECTION_EVENT_1_MEM_TILE",
	EventDMAS2MMSel0StartTaskMemTile:          "DMA_S2MM_SEL0_START_TASK_MEM_TILE",
	EventDMAS2MMSel0FinishedBDMemTile:         "DMA_S2MM_SEL0_FINISHED_BD_MEM_TILE",
	EventDMAS2MMSel0FinishedTaskMemTile:       "DMA_S2MM_SEL0_FINISHED_TASK_MEM_TILE",
	EventDMAS2MMSel1StartTaskMemTile:          "DMA_S2MM_SEL1_START_TASK_MEM_TILE",
	EventDMAS2MMSel1FinishedBDMemTile:         "DMA_S2MM_SEL1_FINISHED_BD_MEM_TILE",
	EventDMAS2MMSel1FinishedTaskMemTile:       "DMA_S2MM_SEL1_FINISHED_TASK_MEM_TILE",
	EventDMAS2MMSel0StalledLockAcquireMemTile: "DMA_S2MM_SEL0_STALLED_LOCK_ACQUIRE_MEM_TILE",
	EventDMAMM2SSel0StartTaskMemTile:          "DMA_MM2S_SEL0_START_TASK_MEM_TILE",
	EventDMAMM2SSel0FinishedBDMemTile:         "DMA_MM2S_SEL0_FINISHED_BD_MEM_TILE",
	EventDMAMM2SSel0FinishedTaskMemTile:       "DMA_MM2S_SEL0_FINISHED_TASK_MEM_TILE",
	EventDMAMM2SSel1StartTaskMemTile:          "DMA_MM2S_SEL1_START_TASK_MEM_TILE",
	EventDMAMM2SSel1FinishedBDMemTile:         "DMA_MM2S_SEL1_FINISHED_BD_MEM_TILE",
	EventDMAMM2SSel1FinishedTaskMemTile:       "DMA_MM2S_SEL1_FINISHED_TASK_MEM_TILE",
	EventDMAMM2SSel0StalledLockAcquireMemTile: "DMA_MM2S_SEL0_STALLED_LOCK_ACQUIRE_MEM_TILE",
	EventDMAS2MMSel0StreamStarvationMemTile:   "DMA_S2MM_SEL0_STREAM_STARVATION_MEM_TILE",
	EventDMAS2MMSel0MemoryBackpressureMemTile: "DMA_S2MM_SEL0_MEMORY_BACKPRESSURE_MEM_TILE",
	EventDMAMM2SSel0StreamBackpressureMemTile: "DMA_MM2S_SEL0_STREAM_BACKPRESSURE_MEM_TILE",
	EventDMAMM2SSel0MemoryStarvationMemTile:   "DMA_MM2S_SEL0_MEMORY_STARVATION_MEM_TILE",
	EventGroupStreamSwitchMemTile:             "GROUP_STREAM_SWITCH_MEM_TILE",
	EventPortRunning0MemTile:                  "PORT_RUNNING_0_MEM_TILE",
	EventPortRunning1MemTile:                  "PORT_RUNNING_1_MEM_TILE",
	EventPortRunning2MemTile:                  "PORT_RUNNING_2_MEM_TILE",
	EventPortRunning3MemTile:                  "PORT_RUNNING_3_MEM_TILE",
	EventPortRunning4MemTile:                  "PORT_RUNNING_4_MEM_TILE",
	EventPortRunning5MemTile:                  "PORT_RUNNING_5_MEM_TILE",
	EventPortRunning6MemTile:                  "PORT_RUNNING_6_MEM_TILE",
	EventPortRunning7MemTile:                  "PORT_RUNNING_7_MEM_TILE",
	EventPortStalled0MemTile:                  "PORT_STALLED_0_MEM_TILE",
	EventPortStalled1MemTile:                  "PORT_STALLED_1_MEM_TILE",
	EventPortStalled2MemTile:                  "PORT_STALLED_2_MEM_TILE",
	EventPortStalled3MemTile:                  "PORT_STALLED_3_MEM_TILE",
	EventPortStalled4MemTile:                  "PORT_STALLED_4_MEM_TILE",
	EventPortStalled5MemTile:                  "PORT_STALLED_5_MEM_TILE",
	EventPortStalled6MemTile:                  "PORT_STALLED_6_MEM_TILE",
	EventPortStalled7MemTile:                  "PORT_STALLED_7_MEM_TILE",
	EventGroupMemoryConflictMemTile:           "GROUP_MEMORY_CONFLICT_MEM_TILE",
	EventConflictDMBank0MemTile:               "CONFLICT_DM_BANK_0_MEM_TILE",
	EventConflictDMBank1MemTile:               "CONFLICT_DM_BANK_1_MEM_TILE",
	EventConflictDMBank2MemTile:               "CONFLICT_DM_BANK_2_MEM_TILE",
	EventConflictDMBank3MemTile:               "CONFLICT_DM_BANK_3_MEM_TILE",
	EventConflictDMBank4MemTile:               "CONFLICT_DM_BANK_4_MEM_TILE",
	EventConflictDMBank5MemTile:               "CONFLICT_DM_BANK_5_MEM_TILE",
	EventConflictDMBank6MemTile:               "CONFLICT_DM_BANK_6_MEM_TILE",
	EventConflictDMBank7MemTile:               "CONFLICT_DM_BANK_7_MEM_TILE",
	EventConflictDMBank8MemTile:               "CONFLICT_DM_BANK_8_MEM_TILE",
	EventConflictDMBank9MemTile:               "CONFLICT_DM_BANK_9_MEM_TILE",
	EventConflictDMBank10MemTile:              "CONFLICT_DM_BANK_10_MEM_TILE",
	EventConflictDMBank11MemTile:              "CONFLICT_DM_BANK_11_MEM_TILE",
	EventConflictDMBank12MemTile:              "CONFLICT_DM_BANK_12_MEM_TILE",
	EventConflictDMBank13MemTile:              "CONFLICT_DM_BANK_13_MEM_TILE",
	EventConflictDMBank14MemTile:              "CONFLICT_DM_BANK_14_MEM_TILE",
	EventConflictDMBank15MemTile:              "CONFLICT_DM_BANK_15_MEM_TILE",
	EventConflictDMBank16MemTile:              "CONFLICT_DM_BANK_16_MEM_TILE",
	EventConflictDMBank17MemTile:              "CONFLICT_DM_BANK_17_MEM_TILE",
	EventConflictDMBank18MemTile:              "CONFLICT_DM_BANK_18_MEM_TILE",
	EventConflictDMBank19MemTile:              "CONFLICT_DM_BANK_19_MEM_TILE",
	EventConflictDMBank20MemTile:              "CONFLICT_DM_BANK_20_MEM_TILE",
	EventConflictDMBank21MemTile:              "CONFLICT_DM_BANK_21_MEM_TILE",
	EventConflictDMBank22MemTile:              "CONFLICT_DM_BANK_22_MEM_TILE",
	EventConflictDMBank23MemTile:              "CONFLICT_DM_BANK_23_MEM_TILE",
	EventNonePL:                               "NONE_PL",
	EventTruePL:                               "TRUE_PL",
	EventGroupStreamSwitchPL:                  "GROUP_STREAM_SWITCH_PL",
	EventPortIdle0PL:                          "PORT_IDLE_0_PL",
	EventPortIdle1PL:                          "PORT_IDLE_1_PL",
	EventPortIdle2PL:                          "PORT_IDLE_2_PL",
	EventPortIdle3PL:                          "PORT_IDLE_3_PL",
	EventPortIdle4PL:                          "PORT_IDLE_4_PL",
	EventPortIdle5PL:                          "PORT_IDLE_5_PL",
	EventPortIdle6PL:                          "PORT_IDLE_6_PL",
	EventPortIdle7PL:                          "PORT_IDLE_7_PL",
	EventPortRunning0PL:                       "PORT_RUNNING_0_PL",
	EventPortRunning1PL:                       "PORT_RUNNING_1_PL",
	EventPortRunning2PL:                       "PORT_RUNNING_2_PL",
	EventPortRunning3PL:                       "PORT_RUNNING_3_PL",
	EventPortRunning4PL:                       "PORT_RUNNING_4_PL",
	EventPortRunning5PL:                       "PORT_RUNNING_5_PL",
	EventPortRunning6PL:                       "PORT_RUNNING_6_PL",
	EventPortRunning7PL:                       "PORT_RUNNING_7_PL",
	EventPortStalled0PL:                       "PORT_STALLED_0_PL",
	EventPortStalled1PL:                       "PORT_STALLED_1_PL",
	EventPortStalled2PL:                       "PORT_STALLED_2_PL",
	EventPortStalled3PL:                       "PORT_STALLED_3_PL",
	EventPortStalled4PL:                       "PORT_STALLED_4_PL",
	EventPortStalled5PL:                       "PORT_STALLED_5_PL",
	EventPortStalled6PL:                       "PORT_STALLED_6_PL",
	EventPortStalled7PL:                       "PORT_STALLED_7_PL",
	EventGroupBroadcastAPL:                    "GROUP_BROADCAST_A_PL",
	EventDMAS2MM0StartBDPL:                    "DMA_S2MM_0_START_BD_PL",
	EventDMAS2MM0StalledLockAcquirePL:         "DMA_S2MM_0_STALLED_LOCK_ACQUIRE_PL",
	EventDMAS2MM0StartTaskPL:                  "DMA_S2MM_0_START_TASK_PL",
	EventDMAS2MM0FinishedBDPL:                 "DMA_S2MM_0_FINISHED_BD_PL",
	EventDMAS2MM0FinishedTaskPL:               "DMA_S2MM_0_FINISHED_TASK_PL",
	EventDMAS2MM0StalledLockPL:                "DMA_S2MM_0_STALLED_LOCK_PL",
	EventDMAS2MM0StreamStarvationPL:           "DMA_S2MM_0_STREAM_STARVATION_PL",
	EventDMAS2MM0MemoryBackpressurePL:         "DMA_S2MM_0_MEMORY_BACKPRESSURE_PL",
	EventDMAS2MM1StartBDPL:                    "DMA_S2MM_1_START_BD_PL",
	EventDMAS2MM1StalledLockAcquirePL:         "DMA_S2MM_1_STALLED_LOCK_ACQUIRE_PL",
	EventDMAS2MM1StartTaskPL:                  "DMA_S2MM_1_START_TASK_PL",
	EventDMAS2MM1FinishedBDPL:                 "DMA_S2MM_1_FINISHED_BD_PL",
	EventDMAS2MM1FinishedTaskPL:               "DMA_S2MM_1_FINISHED_TASK_PL",
	EventDMAS2MM1StalledLockPL:                "DMA_S2MM_1_STALLED_LOCK_PL",
	EventDMAS2MM1StreamStarvationPL:           "DMA_S2MM_1_STREAM_STARVATION_PL",
	EventDMAS2MM1MemoryBackpressurePL:         "DMA_S2MM_1_MEMORY_BACKPRESSURE_PL",
	EventDMAMM2S0StartBDPL:                    "DMA_MM2S_0_START_BD_PL",
	EventDMAMM2S0StalledLockAcquirePL:         "DMA_MM2S_0_STALLED_LOCK_ACQUIRE_PL",
	EventDMAMM2S0StartTaskPL:                  "DMA_MM2S_0_START_TASK_PL",
	EventDMAMM2S0FinishedBDPL:                 "DMA_MM2S_0_FINISHED_BD_PL",
	EventDMAMM2S0FinishedTaskPL:               "DMA_MM2S_0_FINISHED_TASK_PL",
	EventDMAMM2S0StalledLockPL:                "DMA_MM2S_0_STALLED_LOCK_PL",
	EventDMAMM2S0StreamBackpressurePL:         "DMA_MM2S_0_STREAM_BACKPRESSURE_PL",
	EventDMAMM2S0MemoryStarvationPL:           "DMA_MM2S_0_MEMORY_STARVATION_PL",
	EventDMAMM2S1StartBDPL:                    "DMA_MM2S_1_START_BD_PL",
	EventDMAMM2S1StalledLockAcquirePL:         "DMA_MM2S_1_STALLED_LOCK_ACQUIRE_PL",
	EventDMAMM2S1StartTaskPL:                  "DMA_MM2S_1_START_TASK_PL",
	EventDMAMM2S1FinishedBDPL:                 "DMA_MM2S_1_FINISHED_BD_PL",
	EventDMAMM2S1FinishedTaskPL:               "DMA_MM2S_1_FINISHED_TASK_PL",
	EventDMAMM2S1StalledLockPL:                "DMA_MM2S_1_STALLED_LOCK_PL",
	EventDMAMM2S1StreamBackpressurePL:         "DMA_MM2S_1_STREAM_BACKPRESSURE_PL",
	EventDMAMM2S1MemoryStarvationPL:           "DMA_MM2S_1_MEMORY_STARVATION_PL",
	EventNOC0DMAS2MM0StartTaskPL:              "NOC0_DMA_S2MM_0_START_TASK_PL",
	EventNOC0DMAS2MM0FinishedBDPL:             "NOC0_DMA_S2MM_0_FINISHED_BD_PL",
	EventNOC0DMAS2MM0FinishedTaskPL:           "NOC0_DMA_S2MM_0_FINISHED_TASK_PL",
	EventNOC0DMAS2MM0StalledLockPL:            "NOC0_DMA_S2MM_0_STALLED_LOCK_PL",
	EventNOC0DMAS2MM0StreamStarvationPL:       "NOC0_DMA_S2MM_0_STREAM_STARVATION_PL",
	EventNOC0DMAS2MM0MemoryBackpressurePL:     "NOC0_DMA_S2MM_0_MEMORY_BACKPRESSURE_PL",
	EventNOC0DMAS2MM1StartTaskPL:              "NOC0_DMA_S2MM_1_START_TASK_PL",
	EventNOC0DMAS2MM1FinishedBDPL:             "NOC0_DMA_S2MM_1_FINISHED_BD_PL",
	EventNOC0DMAS2MM1FinishedTaskPL:           "NOC0_DMA_S2MM_1_FINISHED_TASK_PL",
	EventNOC0DMAS2MM1StalledLockPL:            "NOC0_DMA_S2MM_1_STALLED_LOCK_PL",
	EventNOC0DMAS2MM1StreamStarvationPL:       "NOC0_DMA_S2MM_1_STREAM_STARVATION_PL",
	EventNOC0DMAS2MM1MemoryBackpressurePL:     "NOC0_DMA_S2MM_1_MEMORY_BACKPRESSURE_PL",
	EventNOC0DMAMM2S0StartTaskPL:              "NOC0_DMA_MM2S_0_START_TASK_PL",
	EventNOC0DMAMM2S0FinishedBDPL:             "NOC0_DMA_MM2S_0_FINISHED_BD_PL",
	EventNOC0DMAMM2S0FinishedTaskPL:           "NOC0_DMA_MM2S_0_FINISHED_TASK_PL",
	EventNOC0DMAMM2S0StalledLockPL:            "NOC0_DMA_MM2S_0_STALLED_LOCK_PL",
	EventNOC0DMAMM2S0StreamBackpressurePL:     "NOC0_DMA_MM2S_0_STREAM_BACKPRESSURE_PL",
	EventNOC0DMAMM2S0MemoryStarvationPL:       "NOC0_DMA_MM2S_0_MEMORY_STARVATION_PL",
	EventNOC0DMAMM2S1StartTaskPL:              "NOC0_DMA_MM2S_1_START_TASK_PL",
	EventNOC0DMAMM2S1FinishedBDPL:             "NOC0_DMA_MM2S_1_FINISHED_BD_PL",
	EventNOC0DMAMM2S1FinishedTaskPL:           "NOC0_DMA_MM2S_1_FINISHED_TASK_PL",
	EventNOC0DMAMM2S1StalledLockPL:            "NOC0_DMA_MM2S_1_STALLED_LOCK_PL",
	EventNOC0DMAMM2S1StreamBackpressurePL:     "NOC0_DMA_MM2S_1_STREAM_BACKPRESSURE_PL",
	EventNOC0DMAMM2S1MemoryStarvationPL:       "NOC0_DMA_MM2S_1_MEMORY_STARVATION_PL",
	EventBroadcastA0PL:                        "BROADCAST_A_0_PL",
	EventBroadcastA1PL:                        "BROADCAST_A_1_PL",
	EventBroadcastA2PL:                        "BROADCAST_A_2_PL",
	EventBroadcastA3PL:                        "BROADCAST_A_3_PL",
	EventBroadcastA4PL:                        "BROADCAST_A_4_PL",
	EventBroadcastA5PL:                        "BROADCAST_A_5_PL",
	EventBroadcastA6PL:                        "BROADCAST_A_6_PL",
	EventBroadcastA7PL:                        "BROADCAST_A_7_PL",
	EventBroadcastA8PL:                        "BROADCAST_A_8_PL",
	EventBroadcastA9PL:                        "BROADCAST_A_9_PL",
	EventBroadcastA10PL:                       "BROADCAST_A_10_PL",
	EventBroadcastA11PL:                       "BROADCAST_A_11_PL",
	EventBroadcastA12PL:                       "BROADCAST_A_12_PL",
	EventBroadcastA13PL:                       "BROADCAST_A_13_PL",
	EventBroadcastA14PL:                       "BROADCAST_A_14_PL",
	EventBroadcastA15PL:                       "BROADCAST_A_15_PL",
	EventDMADM2MMStartTaskUC:                  "DMA_DM2MM_START_TASK_UC",
	EventDMADM2MMFinishedBDUC:                 "DMA_DM2MM_FINISHED_BD_UC",
	EventDMADM2MMFinishedTaskUC:               "DMA_DM2MM_FINISHED_TASK_UC",
	EventDMADM2MMLocalMemoryStarvationUC:      "DMA_DM2MM_LOCAL_MEMORY_STARVATION_UC",
	EventDMADM2MMRemoteMemoryBackpressureUC:   "DMA_DM2MM_REMOTE_MEMORY_BACKPRESSURE_UC",
	EventDMAMM2DMStartTaskUC:                  "DMA_MM2DM_START_TASK_UC",
	EventDMAMM2DMFinishedBDUC:                 "DMA_MM2DM_FINISHED_BD_UC",
	EventDMAMM2DMFinishedTaskUC:               "DMA_MM2DM_FINISHED_TASK_UC",
	EventDMAMM2DMLocalMemoryStarvationUC:      "DMA_MM2DM_LOCAL_MEMORY_STARVATION_UC",
	EventDMAMM2DMRemoteMemoryBackpressureUC:   "DMA_MM2DM_REMOTE_MEMORY_BACKPRESSURE_UC",
	EventCoreAXISMasterRunningUC:              "CORE_AXIS_MASTER_RUNNING_UC",
	EventCoreAXISMasterStalledUC:              "CORE_AXIS_MASTER_STALLED_UC",
	EventCoreAXISSlaveRunningUC:               "CORE_AXIS_SLAVE_RUNNING_UC",
	EventCoreAXISSlaveStalledUC:               "CORE_AXIS_SLAVE_STALLED_UC",
	EventCoreRegWriteUC:                       "CORE_REG_WRITE_UC",
	EventCoreExceptionTakenUC:                 "CORE_EXCEPTION_TAKEN_UC",
	EventCoreJumpTakenUC:                      "CORE_JUMP_TAKEN_UC",
	EventCoreDataReadUC:                       "CORE_DATA_READ_UC",
	EventCoreDataWriteUC:                      "CORE_DATA_WRITE_UC",
	EventCoreStreamGetUC:                      "CORE_STREAM_GET_UC",
	EventCoreStreamPutUC:                      "CORE_STREAM_PUT_UC",
}
