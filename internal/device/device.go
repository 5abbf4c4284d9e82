// Package device defines the hardware access contract the configuration layer
// drives, and an in-memory implementation of it.
package device

import (
	"fmt"

	"aietrace/internal/aie"
	"aietrace/internal/events"
)

// Device is the set of primitive configuration calls issued against the
// array. Implementations report failures as errors; callers do not retry.
type Device interface {
	// Write32 writes value to an absolute register address.
	Write32(addr uint64, value uint32) error

	// TileAddress returns the base address of a tile's register space.
	TileAddress(loc aie.TileLoc) uint64

	// Broadcast drives broadcast channel id of a module with event ev.
	Broadcast(loc aie.TileLoc, mod aie.ModuleKind, id uint8, ev events.Event) error

	// ResetBroadcast removes the event driving broadcast channel id.
	ResetBroadcast(loc aie.TileLoc, mod aie.ModuleKind, id uint8) error

	// BlockDirections stops channel id leaving the switch in dirs.
	BlockDirections(loc aie.TileLoc, mod aie.ModuleKind, sw aie.Switch, id uint8, dirs aie.Direction) error

	// UnblockDirections reopens dirs for channel id.
	UnblockDirections(loc aie.TileLoc, mod aie.ModuleKind, sw aie.Switch, id uint8, dirs aie.Direction) error

	// SelectDMAChannel routes a DMA channel to one of the memory tile event selection slots.
	SelectDMAChannel(loc aie.TileLoc, slot uint8, dir aie.DMADirection, channel uint8) error

	// GroupControl sets the enable mask of a group event.
	GroupControl(loc aie.TileLoc, mod aie.ModuleKind, group events.Event, mask uint32) error
}

// OpKind identifies a Device call.
type OpKind uint8

const (
	OpWrite OpKind = iota
	OpBroadcast
	OpResetBroadcast
	OpBlock
	OpUnblock
	OpSelectDMA
	OpGroup
)

func (k OpKind) String() string {
	switch k {
	case OpWrite:
		return "write"
	case OpBroadcast:
		return "broadcast"
	case OpResetBroadcast:
		return "reset-broadcast"
	case OpBlock:
		return "block"
	case OpUnblock:
		return "unblock"
	case OpSelectDMA:
		return "select-dma"
	case OpGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Op is one Device call captured as a value. Only the fields meaningful for
// Kind are set.
type Op struct {
	Kind    OpKind
	Loc     aie.TileLoc
	Mod     aie.ModuleKind
	Switch  aie.Switch
	Channel uint8
	Dirs    aie.Direction
	Event   events.Event
	Addr    uint64
	Value   uint32
	Slot    uint8
	DMADir  aie.DMADirection
}

func (o Op) String() string {
	switch o.Kind {
	case OpWrite:
		return fmt.Sprintf("write 0x%09X = 0x%08X", o.Addr, o.Value)
	case OpBroadcast:
		return fmt.Sprintf("%s %-4s broadcast ch%-2d <- %v", o.Loc, o.Mod, o.Channel, o.Event)
	case OpResetBroadcast:
		return fmt.Sprintf("%s %-4s broadcast ch%-2d reset", o.Loc, o.Mod, o.Channel)
	case OpBlock, OpUnblock:
		return fmt.Sprintf("%s %-4s switch %v ch%-2d %-7s %v", o.Loc, o.Mod, o.Switch, o.Channel, o.Kind, o.Dirs)
	case OpSelectDMA:
		return fmt.Sprintf("%s slot %d <- %v channel %d", o.Loc, o.Slot, o.DMADir, o.Channel)
	case OpGroup:
		return fmt.Sprintf("%s %-4s %v mask 0x%08X", o.Loc, o.Mod, o.Event, o.Value)
	}
	return "unknown op"
}

// Apply issues op against d.
func Apply(d Device, op Op) error {
	switch op.Kind {
	case OpWrite:
		return d.Write32(op.Addr, op.Value)
	case OpBroadcast:
		return d.Broadcast(op.Loc, op.Mod, op.Channel, op.Event)
	case OpResetBroadcast:
		return d.ResetBroadcast(op.Loc, op.Mod, op.Channel)
	case OpBlock:
		return d.BlockDirections(op.Loc, op.Mod, op.Switch, op.Channel, op.Dirs)
	case OpUnblock:
		return d.UnblockDirections(op.Loc, op.Mod, op.Switch, op.Channel, op.Dirs)
	case OpSelectDMA:
		return d.SelectDMAChannel(op.Loc, op.Slot, op.DMADir, op.Channel)
	case OpGroup:
		return d.GroupControl(op.Loc, op.Mod, op.Event, op.Value)
	}
	return fmt.Errorf("unknown device op %d", op.Kind)
}

// ApplyAll issues ops in order and stops at the first failure. The error
// names the failing op; earlier ops stay applied.
func ApplyAll(d Device, ops []Op) error {
	for i, op := range ops {
		if err := Apply(d, op); err != nil {
			return fmt.Errorf("op %d (%v): %w", i, op, err)
		}
	}
	return nil
}
