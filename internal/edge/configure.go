package edge

import (
	"fmt"

	"aietrace/internal/aie"
	"aietrace/internal/device"
	"aietrace/internal/events"
	"aietrace/internal/metricset"
	"aietrace/internal/regcat"
)

// memorySources holds the per channel edge sources of a memory module, keyed
// by whether the set traces the input side.
var memorySources = map[bool][]events.Event{
	true:  {events.EventDMAMM2S0StalledLockMem, events.EventDMAMM2S1StalledLockMem},
	false: {events.EventDMAS2MM0StreamStarvationMem, events.EventDMAS2MM1StreamStarvationMem},
}

// SourceEvent returns the event watched by the edge detectors of a tile for
// a metric set. AIE tiles watch the memory module DMA channel; memory tiles
// watch selection slot 0.
func SourceEvent(class aie.ModuleClass, name string, channel uint8) (events.Event, bool) {
	input := metricset.IsInputSet(class, name)
	switch class {
	case aie.ClassMemoryTile:
		if input {
			return events.EventDMAS2MMSel0StreamStarvationMemTile, true
		}
		return events.EventDMAMM2SSel0StalledLockAcquireMemTile, true
	case aie.ClassCore, aie.ClassMemory:
		srcs := memorySources[input]
		if int(channel) >= len(srcs) {
			return events.EventNone, false
		}
		return srcs[channel], true
	}
	return events.EventNone, false
}

func controlRegister(class aie.ModuleClass) (aie.ModuleClass, string, bool) {
	switch class {
	case aie.ClassMemoryTile:
		return aie.ClassMemoryTile, "mem_edge_detection_event_control", true
	case aie.ClassCore, aie.ClassMemory:
		return aie.ClassMemory, "mm_edge_detection_event_control", true
	}
	return class, "", false
}

// Plan returns the register write that arms the edge detectors of tile for ev,
// or ok false when ev is not an edge detection event or the generation has
// no edge detection logic.
func Plan(gen aie.Generation, tileAddr uint64, tile aie.Tile, name string, ev events.Event, channel uint8) (op device.Op, ok bool, err error) {
	if !events.IsEdgeDetection(ev) {
		return op, false, nil
	}
	regClass, reg, ok := controlRegister(tile.Class)
	if !ok {
		return op, false, nil
	}
	offset, ok := regcat.For(gen).AddressOf(reg, regClass)
	if !ok {
		return op, false, nil
	}
	src, ok := SourceEvent(tile.Class, name, channel)
	if !ok {
		return op, false, nil
	}
	num, ok := events.HardwareNumber(gen, src)
	if !ok {
		return op, false, nil
	}
	word, err := Encode(uint32(num), PolicyRiseFall)
	if err != nil {
		return op, false, err
	}
	return device.Op{Kind: device.OpWrite, Loc: tile.Loc, Addr: tileAddr + offset, Value: word}, true, nil
}

// Configure arms the edge detectors of tile when ev is an edge detection
// event. Other events are ignored.
func Configure(dev device.Device, gen aie.Generation, tile aie.Tile, name string, ev events.Event, channel uint8) error {
	op, ok, err := Plan(gen, dev.TileAddress(tile.Loc), tile, name, ev, channel)
	if err != nil || !ok {
		return err
	}
	if err := device.Apply(dev, op); err != nil {
		return fmt.Errorf("edge detection at %s: %w", tile.Loc, err)
	}
	return nil
}
