package runtimecfg

import (
	"aietrace/internal/aie"
	"aietrace/internal/device"
	"aietrace/internal/events"
	"aietrace/internal/metricset"
)

// PlanEventSelections returns the DMA channel selections a memory tile needs
// for a metric set. Other tiles need none.
func PlanEventSelections(tile aie.Tile, name string, ch0, ch1 uint8) []device.Op {
	if tile.Class != aie.ClassMemoryTile {
		return nil
	}
	dir := metricset.Direction(tile.Class, name)
	return []device.Op{
		{Kind: device.OpSelectDMA, Loc: tile.Loc, Slot: 0, DMADir: dir, Channel: ch0},
		{Kind: device.OpSelectDMA, Loc: tile.Loc, Slot: 1, DMADir: dir, Channel: ch1},
	}
}

// RecordSelections fills in the port and channel wiring of a memory tile.
// A second channel equal to the first is recorded once.
func RecordSelections(cfg *TileConfig, input bool, ch0, ch1 uint8) {
	cfg.PortTraceIDs[0] = int8(ch0)
	cfg.PortTraceIDs[1] = int8(ch1)
	cfg.PortTraceIsMaster[0] = input
	cfg.PortTraceIsMaster[1] = input

	channels := &cfg.MM2SChannels
	if input {
		channels = &cfg.S2MMChannels
	}
	channels[0] = int8(ch0)
	if ch0 != ch1 {
		channels[1] = int8(ch1)
	}
}

// RecordInterfacePorts fills in the wiring of an interface tile from the
// events it traces. Every stream switch port named by an event is recorded
// with the tile's channel, as a master port when the set watches input. DMA
// events record the channel they were adapted to.
func RecordInterfacePorts(cfg *TileConfig, evs []events.Event, dir aie.DMADirection, input bool, channel uint8) {
	channels := &cfg.MM2SChannels
	if dir == aie.DMAS2MM {
		channels = &cfg.S2MMChannels
	}
	for _, e := range evs {
		if events.IsStreamSwitchPortEvent(e) {
			p := events.PortNumber(e)
			if int(p) < NumTracePorts {
				cfg.PortTraceIDs[p] = int8(channel)
				cfg.PortTraceIsMaster[p] = input
			}
			continue
		}
		ch := events.ChannelNumber(e)
		if ch < 0 || channels[0] == ch || channels[1] == ch {
			continue
		}
		if channels[0] == Unset {
			channels[0] = ch
		} else {
			channels[1] = ch
		}
	}
}
