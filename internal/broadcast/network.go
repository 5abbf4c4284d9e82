// Package broadcast builds and tears down the two channel broadcast network
// that distributes a trace trigger across a column range of the array.
//
// The trigger is injected on the relay channel (id2) at the interface tile of
// the first column. The relay channel walks east along the interface row, and
// in every column the interface tile re-raises it on the trigger channel
// (id1), which then climbs the column up to its highest traced row.
package broadcast

import (
	"fmt"

	"aietrace/internal/aie"
	"aietrace/internal/common"
	"aietrace/internal/device"
	"aietrace/internal/events"
)

// Network is the full description of one broadcast network. Build and
// Reset are pure functions of a Network and the traced tile locations.
type Network struct {
	Topo     aie.Topology
	StartCol uint8
	NumCols  uint8
	ID1      uint8
	ID2      uint8
	Trigger  events.Event
}

// EndCol returns one past the last column of the network.
func (n Network) EndCol() int { return int(n.StartCol) + int(n.NumCols) }

// Validate checks the column range and channel ids.
func (n Network) Validate() error {
	if n.NumCols == 0 || n.EndCol() > int(n.Topo.NumCols) {
		return common.Errorf(aie.ErrBadColumnRange, "columns [%d,%d) on a %d column array",
			n.StartCol, n.EndCol(), n.Topo.NumCols)
	}
	if !aie.IsValidBroadcastID(n.ID1) || !aie.IsValidBroadcastID(n.ID2) || n.ID1 == n.ID2 {
		return common.Errorf(aie.ErrNoBroadcastChannel, "broadcast ids %d,%d", n.ID1, n.ID2)
	}
	return nil
}

func (n Network) id(c Channel) uint8 {
	if c == ChannelRelay {
		return n.ID2
	}
	return n.ID1
}

// TopRows returns the highest traced row of every column in range, indexed
// from StartCol. Columns without traced tiles report row 0. Tiles outside
// the column range are ignored.
func (n Network) TopRows(tiles []aie.TileLoc) ([]uint8, error) {
	top := make([]uint8, n.NumCols)
	for _, t := range tiles {
		if t.Row >= n.Topo.NumRows {
			return nil, common.NewErrorWithLocMsg(aie.ErrSevError, aie.ErrInvalidParamVal, t, "row outside the array")
		}
		if int(t.Col) < int(n.StartCol) || int(t.Col) >= n.EndCol() {
			continue
		}
		if i := t.Col - n.StartCol; t.Row > top[i] {
			top[i] = t.Row
		}
	}
	return top, nil
}

// visit calls fn for every tile of the network in column-major, row-ascending
// order, covering each column from the interface row up to its top row.
func (n Network) visit(tiles []aie.TileLoc, fn func(t aie.Tile, top, first, last bool)) error {
	if err := n.Validate(); err != nil {
		return err
	}
	tops, err := n.TopRows(tiles)
	if err != nil {
		return err
	}
	for i, topRow := range tops {
		col := n.StartCol + uint8(i)
		for row := uint8(0); row <= topRow; row++ {
			fn(n.Topo.NewTile(col, row), row == topRow, i == 0, i == len(tops)-1)
		}
	}
	return nil
}

// Roles returns the switches a network configures in a tile.
func Roles(t aie.Tile, top, first, last bool) []Role {
	r := Role{Class: t.Class, Switch: aie.SwitchA, Channel: ChannelTrigger, IsTop: top, IsFirstCol: first, IsLastCol: last}
	switch t.Class {
	case aie.ClassShim:
		relayA, relayB := r, r
		relayA.Channel = ChannelRelay
		relayB.Channel, relayB.Switch = ChannelRelay, aie.SwitchB
		return []Role{r, relayA, relayB}
	case aie.ClassCore:
		mem := r
		mem.Class = aie.ClassMemory
		return []Role{r, mem}
	}
	return []Role{r}
}

func (n Network) blockOp(kind device.OpKind, loc aie.TileLoc, r Role, dirs aie.Direction) device.Op {
	return device.Op{Kind: kind, Loc: loc, Mod: r.Module(), Switch: r.Switch, Channel: n.id(r.Channel), Dirs: dirs}
}

// PlanBuild returns the device calls that build the network, in issue order.
func (n Network) PlanBuild(tiles []aie.TileLoc) ([]device.Op, error) {
	origin := aie.TileLoc{Col: n.StartCol, Row: 0}
	ops := []device.Op{{Kind: device.OpBroadcast, Loc: origin, Mod: aie.ModPL, Channel: n.ID2, Event: n.Trigger}}

	err := n.visit(tiles, func(t aie.Tile, top, first, last bool) {
		if t.Class == aie.ClassShim {
			src := events.BroadcastPL(n.ID2)
			if first {
				src = n.Trigger
			}
			ops = append(ops, device.Op{Kind: device.OpBroadcast, Loc: t.Loc, Mod: aie.ModPL, Channel: n.ID1, Event: src})
		}
		for _, r := range Roles(t, top, first, last) {
			ops = append(ops, n.blockOp(device.OpBlock, t.Loc, r, DirectionsToBlock(r)))
		}
	})
	if err != nil {
		return nil, err
	}
	return ops, nil
}

// PlanReset returns the device calls that undo PlanBuild. Every configured
// switch is fully unblocked, so the plan is safe over a partial build.
func (n Network) PlanReset(tiles []aie.TileLoc) ([]device.Op, error) {
	origin := aie.TileLoc{Col: n.StartCol, Row: 0}
	ops := []device.Op{{Kind: device.OpResetBroadcast, Loc: origin, Mod: aie.ModPL, Channel: n.ID2}}

	err := n.visit(tiles, func(t aie.Tile, top, first, last bool) {
		if t.Class == aie.ClassShim {
			ops = append(ops, device.Op{Kind: device.OpResetBroadcast, Loc: t.Loc, Mod: aie.ModPL, Channel: n.ID1})
		}
		for _, r := range Roles(t, top, first, last) {
			ops = append(ops, n.blockOp(device.OpUnblock, t.Loc, r, aie.DirAll))
		}
	})
	if err != nil {
		return nil, err
	}
	return ops, nil
}

// Build configures the network on dev. It stops at the first failing call
// and leaves earlier calls applied; Reset may be used to clean up.
func (n Network) Build(dev device.Device, tiles []aie.TileLoc) error {
	ops, err := n.PlanBuild(tiles)
	if err != nil {
		return err
	}
	if err := device.ApplyAll(dev, ops); err != nil {
		return fmt.Errorf("build broadcast network %d/%d: %w", n.ID1, n.ID2, err)
	}
	return nil
}

// Reset releases the network's channels on dev.
func (n Network) Reset(dev device.Device, tiles []aie.TileLoc) error {
	ops, err := n.PlanReset(tiles)
	if err != nil {
		return err
	}
	if err := device.ApplyAll(dev, ops); err != nil {
		return fmt.Errorf("reset broadcast network %d/%d: %w", n.ID1, n.ID2, err)
	}
	return nil
}
