package events

import (
	"fmt"

	"aietrace/internal/aie"
)

func (e Event) String() string {
	if e < numEvents && eventNames[e] != "" {
		return eventNames[e]
	}
	return fmt.Sprintf("EVENT_%d", uint16(e))
}

// Count returns the number of defined events, including EventNone.
func Count() int { return int(numEvents) }

// Lookup returns the event with the given printable name.
func Lookup(name string) (Event, bool) {
	e, ok := byName[name]
	return e, ok
}

var byName = func() map[string]Event {
	m := make(map[string]Event, numEvents)
	for i, n := range eventNames {
		m[n] = Event(i)
	}
	return m
}()

// ClassOf returns the module class whose event space contains e.
func ClassOf(e Event) (aie.ModuleClass, bool) {
	switch {
	case e >= EventNoneCore && e <= EventInstrErrorCore:
		return aie.ClassCore, true
	case e >= EventNoneMem && e <= EventDMAMM2S1MemoryStarvationMem:
		return aie.ClassMemory, true
	case e >= EventNoneMemTile && e <= EventConflictDMBank23MemTile:
		return aie.ClassMemoryTile, true
	case e >= EventNonePL && e < numEvents:
		return aie.ClassShim, true
	}
	return aie.ClassCore, false
}

// IsStreamSwitchPortEvent reports whether e is a stream switch port event of any tile kind.
func IsStreamSwitchPortEvent(e Event) bool {
	if e > EventGroupStreamSwitchCore && e < EventGroupBroadcastCore {
		return true
	}
	if e > EventGroupStreamSwitchPL && e < EventGroupBroadcastAPL {
		return true
	}
	if e > EventGroupStreamSwitchMemTile && e < EventGroupMemoryConflictMemTile {
		return true
	}
	return false
}

// PortNumber returns the stream switch port an event refers to, or 0.
func PortNumber(e Event) uint8 {
	for _, base := range []Event{
		EventPortIdle0Core, EventPortRunning0Core, EventPortStalled0Core,
		EventPortIdle0PL, EventPortRunning0PL, EventPortStalled0PL,
		EventPortRunning0MemTile, EventPortStalled0MemTile,
	} {
		if e >= base && e < base+8 {
			return uint8(e - base)
		}
	}
	return 0
}

// ChannelNumber returns the DMA channel of an AIE tile or interface tile DMA
// event, or -1 when e is not channel specific.
func ChannelNumber(e Event) int8 {
	if ch, ok := channelOf[e]; ok {
		return ch
	}
	return -1
}

var channelOf = func() map[Event]int8 {
	m := make(map[Event]int8)
	ranges := [][2]Event{
		{EventDMAS2MM0StartTaskMem, EventDMAMM2S1MemoryStarvationMem},
		{EventDMAS2MM0StartBDPL, EventNOC0DMAMM2S1MemoryStarvationPL},
	}
	for _, r := range ranges {
		for e := r[0]; e <= r[1]; e++ {
			m[e] = channelFromName(eventNames[e])
		}
	}
	return m
}()

// channelFromName reads the channel digit that follows the DMA direction token.
func channelFromName(name string) int8 {
	for _, dir := range []string{"S2MM_", "MM2S_"} {
		for i := 0; i+len(dir) < len(name); i++ {
			if name[i:i+len(dir)] == dir {
				return int8(name[i+len(dir)] - '0')
			}
		}
	}
	return -1
}

// IsEdgeDetection reports whether e is one of the edge detection events of a
// memory module or memory tile.
func IsEdgeDetection(e Event) bool {
	switch e {
	case EventEdgeDetectionEvent0Mem, EventEdgeDetectionEvent1Mem,
		EventEdgeDetectionEvent0MemTile, EventEdgeDetectionEvent1MemTile:
		return true
	}
	return false
}

// BroadcastPL returns the interface tile event raised by broadcast channel id.
func BroadcastPL(id uint8) Event {
	return EventBroadcastA0PL + Event(id)
}

// HardwareNumber returns the raw event number programmed into event selection
// fields for gen. Only events used as register field values are tabulated.
func HardwareNumber(gen aie.Generation, e Event) (uint8, bool) {
	tbl, ok := hwNumbers[gen]
	if !ok {
		return 0, false
	}
	n, ok := tbl[e]
	return n, ok
}

var aie2Numbers = map[Event]uint8{
	EventDMAS2MM0StreamStarvationMem:          33,
	EventDMAS2MM1StreamStarvationMem:          34,
	EventDMAMM2S0StalledLockMem:               41,
	EventDMAMM2S1StalledLockMem:               42,
	EventDMAS2MMSel0StreamStarvationMemTile:   31,
	EventDMAMM2SSel0StalledLockAcquireMemTile: 46,
}

// AIE1 has no edge detection logic in the memory module.
var hwNumbers = map[aie.Generation]map[Event]uint8{
	aie.GenAIE2:   aie2Numbers,
	aie.GenAIE2PS: aie2Numbers,
	aie.GenAIE4: {
		EventDMAS2MM0StreamStarvationMem:          35,
		EventDMAS2MM1StreamStarvationMem:          36,
		EventDMAMM2S0StalledLockMem:               43,
		EventDMAMM2S1StalledLockMem:               44,
		EventDMAS2MMSel0StreamStarvationMemTile:   31,
		EventDMAMM2SSel0StalledLockAcquireMemTile: 46,
	},
}
