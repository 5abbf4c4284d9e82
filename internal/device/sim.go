package device

import (
	"fmt"
	"sort"

	"aietrace/common"
	"aietrace/internal/aie"
	intcommon "aietrace/internal/common"
	"aietrace/internal/events"
)

type chanKey struct {
	loc aie.TileLoc
	mod aie.ModuleKind
	id  uint8
}

type switchKey struct {
	loc aie.TileLoc
	mod aie.ModuleKind
	sw  aie.Switch
	id  uint8
}

type slotKey struct {
	loc  aie.TileLoc
	slot uint8
}

type groupKey struct {
	loc   aie.TileLoc
	mod   aie.ModuleKind
	group events.Event
}

// DMASelection is the DMA channel routed to an event selection slot.
type DMASelection struct {
	Dir     aie.DMADirection
	Channel uint8
}

// Sim is an in-memory Device. It keeps a sparse register file plus the
// broadcast, switch, DMA selection and group state that the primitive calls
// set, and records every call in order.
//
// Sim is not safe for concurrent use.
type Sim struct {
	Topo aie.Topology

	// FailOn, when set, is consulted before every call. A non-nil result is
	// returned to the caller and the call has no effect.
	FailOn func(op Op) error

	regs       map[uint64]uint32
	broadcasts map[chanKey]events.Event
	blocked    map[switchKey]aie.Direction
	dma        map[slotKey]DMASelection
	groups     map[groupKey]uint32
	ops        []Op
	addrs      *AddressMap
	logger     common.Logger
}

// NewSim creates an empty simulated device with the given array layout.
func NewSim(topo aie.Topology) *Sim {
	return &Sim{
		Topo:       topo,
		regs:       make(map[uint64]uint32),
		broadcasts: make(map[chanKey]events.Event),
		blocked:    make(map[switchKey]aie.Direction),
		dma:        make(map[slotKey]DMASelection),
		groups:     make(map[groupKey]uint32),
		addrs:      NewAddressMap(topo),
		logger:     common.NewNoOpLogger(),
	}
}

// SetLogger makes the device log every call at debug level.
func (s *Sim) SetLogger(l common.Logger) {
	if l == nil {
		l = common.NewNoOpLogger()
	}
	s.logger = l
}

func (s *Sim) begin(op Op) error {
	if op.Kind != OpWrite && !s.Topo.Contains(op.Loc) {
		return intcommon.NewErrorWithLocMsg(aie.ErrSevError, aie.ErrInvalidParamVal, op.Loc, "tile outside the array")
	}
	if op.Kind != OpWrite && op.Kind != OpSelectDMA && op.Kind != OpGroup && !aie.IsValidBroadcastID(op.Channel) {
		return intcommon.NewErrorWithLocMsg(aie.ErrSevError, aie.ErrNoBroadcastChannel, op.Loc,
			fmt.Sprintf("broadcast channel %d", op.Channel))
	}
	if s.FailOn != nil {
		if err := s.FailOn(op); err != nil {
			return err
		}
	}
	s.ops = append(s.ops, op)
	s.logger.Debug(op.String())
	return nil
}

// Write32 implements Device. The address must fall inside a tile of the
// array; the recorded op carries the owning tile.
func (s *Sim) Write32(addr uint64, value uint32) error {
	r, ok := s.addrs.Find(addr)
	if !ok {
		return intcommon.NewErrorMsg(aie.ErrSevError, aie.ErrInvalidParamVal,
			fmt.Sprintf("address 0x%X outside the array", addr))
	}
	if err := s.begin(Op{Kind: OpWrite, Loc: r.Loc, Addr: addr, Value: value}); err != nil {
		return err
	}
	s.regs[addr] = value
	return nil
}

// TileAddress implements Device.
func (s *Sim) TileAddress(loc aie.TileLoc) uint64 {
	return s.Topo.TileAddress(loc)
}

// Broadcast implements Device.
func (s *Sim) Broadcast(loc aie.TileLoc, mod aie.ModuleKind, id uint8, ev events.Event) error {
	if err := s.begin(Op{Kind: OpBroadcast, Loc: loc, Mod: mod, Channel: id, Event: ev}); err != nil {
		return err
	}
	s.broadcasts[chanKey{loc, mod, id}] = ev
	return nil
}

// ResetBroadcast implements Device.
func (s *Sim) ResetBroadcast(loc aie.TileLoc, mod aie.ModuleKind, id uint8) error {
	if err := s.begin(Op{Kind: OpResetBroadcast, Loc: loc, Mod: mod, Channel: id}); err != nil {
		return err
	}
	delete(s.broadcasts, chanKey{loc, mod, id})
	return nil
}

// BlockDirections implements Device.
func (s *Sim) BlockDirections(loc aie.TileLoc, mod aie.ModuleKind, sw aie.Switch, id uint8, dirs aie.Direction) error {
	if err := s.begin(Op{Kind: OpBlock, Loc: loc, Mod: mod, Switch: sw, Channel: id, Dirs: dirs}); err != nil {
		return err
	}
	k := switchKey{loc, mod, sw, id}
	s.blocked[k] |= dirs
	return nil
}

// UnblockDirections implements Device.
func (s *Sim) UnblockDirections(loc aie.TileLoc, mod aie.ModuleKind, sw aie.Switch, id uint8, dirs aie.Direction) error {
	if err := s.begin(Op{Kind: OpUnblock, Loc: loc, Mod: mod, Switch: sw, Channel: id, Dirs: dirs}); err != nil {
		return err
	}
	k := switchKey{loc, mod, sw, id}
	if m := s.blocked[k] &^ dirs; m != aie.DirNone {
		s.blocked[k] = m
	} else {
		delete(s.blocked, k)
	}
	return nil
}

// SelectDMAChannel implements Device.
func (s *Sim) SelectDMAChannel(loc aie.TileLoc, slot uint8, dir aie.DMADirection, channel uint8) error {
	if err := s.begin(Op{Kind: OpSelectDMA, Loc: loc, Slot: slot, DMADir: dir, Channel: channel}); err != nil {
		return err
	}
	s.dma[slotKey{loc, slot}] = DMASelection{Dir: dir, Channel: channel}
	return nil
}

// GroupControl implements Device.
func (s *Sim) GroupControl(loc aie.TileLoc, mod aie.ModuleKind, group events.Event, mask uint32) error {
	if err := s.begin(Op{Kind: OpGroup, Loc: loc, Mod: mod, Event: group, Value: mask}); err != nil {
		return err
	}
	s.groups[groupKey{loc, mod, group}] = mask
	return nil
}

// Addresses returns the register address map of the array.
func (s *Sim) Addresses() *AddressMap { return s.addrs }

// Read32 returns the last value written to addr.
func (s *Sim) Read32(addr uint64) (uint32, bool) {
	v, ok := s.regs[addr]
	return v, ok
}

// BroadcastEvent returns the event driving channel id of a module.
func (s *Sim) BroadcastEvent(loc aie.TileLoc, mod aie.ModuleKind, id uint8) (events.Event, bool) {
	ev, ok := s.broadcasts[chanKey{loc, mod, id}]
	return ev, ok
}

// Blocked returns the directions currently blocked for a switch and channel.
func (s *Sim) Blocked(loc aie.TileLoc, mod aie.ModuleKind, sw aie.Switch, id uint8) aie.Direction {
	return s.blocked[switchKey{loc, mod, sw, id}]
}

// BlockedTiles returns, sorted, the tiles with any direction blocked on channel id.
func (s *Sim) BlockedTiles(id uint8) []aie.TileLoc {
	seen := make(map[aie.TileLoc]bool)
	for k := range s.blocked {
		if k.id == id {
			seen[k.loc] = true
		}
	}
	locs := make([]aie.TileLoc, 0, len(seen))
	for loc := range seen {
		locs = append(locs, loc)
	}
	sort.Slice(locs, func(i, j int) bool { return locs[i].Less(locs[j]) })
	return locs
}

// ActiveBroadcasts returns the number of channels currently driven by an event.
func (s *Sim) ActiveBroadcasts() int { return len(s.broadcasts) }

// DMASelection returns the DMA channel routed to a memory tile slot.
func (s *Sim) DMASelection(loc aie.TileLoc, slot uint8) (DMASelection, bool) {
	sel, ok := s.dma[slotKey{loc, slot}]
	return sel, ok
}

// GroupMask returns the mask last set for a group event.
func (s *Sim) GroupMask(loc aie.TileLoc, mod aie.ModuleKind, group events.Event) (uint32, bool) {
	m, ok := s.groups[groupKey{loc, mod, group}]
	return m, ok
}

// Ops returns the calls that took effect, in order.
func (s *Sim) Ops() []Op {
	return append([]Op(nil), s.ops...)
}
