package session

import (
	"aietrace/internal/aie"
	"aietrace/internal/device"
	"aietrace/internal/edge"
	"aietrace/internal/events"
	"aietrace/internal/metricset"
	"aietrace/internal/runtimecfg"
)

// Enable masks of the core module group events.
const (
	GroupCoreFunctionsMask       uint32 = 0x0000000C
	GroupCoreStallMask           uint32 = 0x0000000F
	GroupStreamSwitchRunningMask uint32 = 0x22222222
)

var coreGroupMasks = []struct {
	group events.Event
	mask  uint32
}{
	{events.EventGroupCoreProgramFlowCore, GroupCoreFunctionsMask},
	{events.EventGroupCoreStallCore, GroupCoreStallMask},
	{events.EventGroupStreamSwitchCore, GroupStreamSwitchRunningMask},
}

// tilePlan is the resolved work for one assignment.
type tilePlan struct {
	assign   Assignment
	events   []events.Event
	counters []Counter
	ops      []device.Op
	edgeWord uint32
}

func (tp *tilePlan) record(r *runtimecfg.Record) {
	a := tp.assign
	cfg := r.Tile(a.Tile.Loc, a.Tile.Class, a.MetricSet)
	cfg.SetEvents(tp.events)
	cfg.EdgeControl = tp.edgeWord
	input := metricset.IsInputSet(a.Tile.Class, a.MetricSet)
	switch a.Tile.Class {
	case aie.ClassMemoryTile:
		runtimecfg.RecordSelections(cfg, input, a.Channel0, a.Channel1)
	case aie.ClassShim:
		runtimecfg.RecordInterfacePorts(cfg, tp.events, metricset.Direction(a.Tile.Class, a.MetricSet), input, a.Channel0)
	}
}

func (s *Session) plans() ([]*tilePlan, error) {
	out := make([]*tilePlan, 0, len(s.req.Assignments))
	for _, a := range s.req.Assignments {
		tp, err := s.planTile(a)
		if err != nil {
			return nil, err
		}
		out = append(out, tp)
	}
	return out, nil
}

func (s *Session) planTile(a Assignment) (*tilePlan, error) {
	gen := s.req.Generation
	tp := &tilePlan{assign: a}

	switch a.Tile.Class {
	case aie.ClassCore:
		core := metricset.Resolve(aie.ClassCore, gen, a.MetricSet)
		mem := metricset.Resolve(aie.ClassMemory, gen, a.MetricSet)
		tp.events = append(core, mem...)
		if len(core) > 0 && metricset.IsDMASet(a.MetricSet) {
			for _, g := range coreGroupMasks {
				tp.ops = append(tp.ops, device.Op{Kind: device.OpGroup, Loc: a.Tile.Loc, Mod: aie.ModCore, Event: g.group, Value: g.mask})
			}
		}
		tp.counters = append(s.counters(aie.ClassCore), s.counters(aie.ClassMemory)...)
		if err := tp.planEdge(s, mem, a.Channel0); err != nil {
			return nil, err
		}
	case aie.ClassMemoryTile:
		tp.events = metricset.Resolve(aie.ClassMemoryTile, gen, a.MetricSet)
		tp.ops = append(tp.ops, runtimecfg.PlanEventSelections(a.Tile, a.MetricSet, a.Channel0, a.Channel1)...)
		if err := tp.planEdge(s, tp.events, a.Channel0); err != nil {
			return nil, err
		}
	case aie.ClassShim:
		evs := metricset.Resolve(aie.ClassShim, gen, a.MetricSet)
		tp.events = metricset.Adapt(aie.ClassShim, a.IO, a.MetricSet, a.Channel0, evs)
	}
	return tp, nil
}

// planEdge arms the edge detectors once per tile, on the first edge event
// of the set.
func (tp *tilePlan) planEdge(s *Session, evs []events.Event, channel uint8) error {
	for _, ev := range evs {
		if !events.IsEdgeDetection(ev) {
			continue
		}
		op, ok, err := edge.Plan(s.req.Generation, s.dev.TileAddress(tp.assign.Tile.Loc), tp.assign.Tile, tp.assign.MetricSet, ev, channel)
		if err != nil || !ok {
			return err
		}
		tp.ops = append(tp.ops, op)
		tp.edgeWord = op.Value
		return nil
	}
	return nil
}

func (s *Session) counters(class aie.ModuleClass) []Counter {
	gen, scheme := s.req.Generation, s.req.CounterScheme
	starts := metricset.CounterStartEvents(class, gen, scheme)
	ends := metricset.CounterEndEvents(class, gen, scheme)
	thresholds := metricset.CounterThresholds(class, gen, scheme)
	out := make([]Counter, 0, len(starts))
	for i := range starts {
		out = append(out, Counter{Class: class, Start: starts[i], End: ends[i], Threshold: thresholds[i]})
	}
	return out
}
