// Package session runs one trace configuration request against a device:
// it resolves the metric set of every assigned tile, programs the per tile
// helpers (group events, DMA event selections, edge detectors), records the
// runtime configuration and finally builds the broadcast network that starts
// trace on all tiles at once.
package session

import (
	"fmt"
	"sort"

	"github.com/rs/xid"

	"aietrace/common"
	"aietrace/internal/aie"
	"aietrace/internal/broadcast"
	intcommon "aietrace/internal/common"
	"aietrace/internal/device"
	"aietrace/internal/events"
	"aietrace/internal/metricset"
	"aietrace/internal/runtimecfg"
)

// Assignment binds a metric set to one tile.
type Assignment struct {
	Tile      aie.Tile
	MetricSet string
	// Channel0 and Channel1 select the DMA channels a DMA set observes.
	// Interface tiles only use Channel0.
	Channel0 uint8
	Channel1 uint8
	IO       aie.IOKind
}

// Request is everything needed to configure trace for one run.
type Request struct {
	Generation    aie.Generation
	Assignments   []Assignment
	StartCol      uint8
	NumCols       uint8
	BroadcastIDs  [2]uint8
	CounterScheme string
	TriggerEvent  events.Event
}

// Counter is a performance counter the trace of an AIE1 tile relies on.
type Counter struct {
	Class     aie.ModuleClass
	Start     events.Event
	End       events.Event
	Threshold uint32
}

// Result is the outcome of a successful Configure.
type Result struct {
	SessionID string
	// Events holds the traced events per tile. AIE tiles list the core
	// module events followed by the memory module events.
	Events   map[aie.TileLoc][]events.Event
	Counters map[aie.TileLoc][]Counter
	Config   *runtimecfg.Record
	Skipped  []aie.TileLoc
}

// Tiles returns the configured tile locations in traversal order.
func (r *Result) Tiles() []aie.TileLoc {
	out := make([]aie.TileLoc, 0, len(r.Events))
	for loc := range r.Events {
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Session holds a validated request bound to a device.
type Session struct {
	ID      string
	req     Request
	topo    aie.Topology
	network broadcast.Network
	dev     device.Device
	logger  common.Logger
}

// New validates req and binds it to dev. A nil logger discards messages.
func New(dev device.Device, req Request, logger common.Logger) (*Session, error) {
	if logger == nil {
		logger = common.NewNoOpLogger()
	}
	topo, e := aie.TopologyFor(req.Generation)
	if e != aie.OK {
		return nil, intcommon.NewErrorMsg(aie.ErrSevError, e, fmt.Sprintf("generation %d", req.Generation))
	}
	if req.CounterScheme == "" {
		req.CounterScheme = metricset.SchemeES2
	}
	if req.CounterScheme != metricset.SchemeES1 && req.CounterScheme != metricset.SchemeES2 {
		return nil, intcommon.Errorf(aie.ErrInvalidParamVal, "counter scheme %q", req.CounterScheme)
	}
	if req.TriggerEvent == events.EventNone {
		req.TriggerEvent = events.EventTruePL
	}
	network := broadcast.Network{
		Topo:     topo,
		StartCol: req.StartCol,
		NumCols:  req.NumCols,
		ID1:      req.BroadcastIDs[0],
		ID2:      req.BroadcastIDs[1],
		Trigger:  req.TriggerEvent,
	}
	if err := network.Validate(); err != nil {
		return nil, err
	}
	seen := make(map[aie.TileLoc]bool, len(req.Assignments))
	for _, a := range req.Assignments {
		if !topo.Contains(a.Tile.Loc) {
			return nil, intcommon.NewErrorWithLocMsg(aie.ErrSevError, aie.ErrInvalidParamVal, a.Tile.Loc, "tile outside the array")
		}
		if col := int(a.Tile.Loc.Col); col < int(network.StartCol) || col >= network.EndCol() {
			return nil, intcommon.NewErrorWithLocMsg(aie.ErrSevError, aie.ErrBadColumnRange, a.Tile.Loc,
				fmt.Sprintf("tile outside the traced columns [%d,%d)", network.StartCol, network.EndCol()))
		}
		if want := topo.ClassOf(a.Tile.Loc.Row); a.Tile.Class != want {
			return nil, intcommon.NewErrorWithLocMsg(aie.ErrSevError, aie.ErrInvalidParamVal, a.Tile.Loc,
				fmt.Sprintf("tile class %v, row holds %v", a.Tile.Class, want))
		}
		if seen[a.Tile.Loc] {
			return nil, intcommon.NewErrorWithLocMsg(aie.ErrSevError, aie.ErrInvalidParamVal, a.Tile.Loc, "tile assigned twice")
		}
		seen[a.Tile.Loc] = true
	}
	id := xid.New().String()
	// logrus loggers tag every message with the session
	if ll, ok := logger.(*common.LogrusLogger); ok {
		logger = ll.WithField("session", id)
	}
	return &Session{
		ID:      id,
		req:     req,
		topo:    topo,
		network: network,
		dev:     dev,
		logger:  logger,
	}, nil
}

// Request returns the validated request, with defaults filled in.
func (s *Session) Request() Request { return s.req }

// Network returns the broadcast network of the session.
func (s *Session) Network() broadcast.Network { return s.network }

// Configure runs req against dev in a new session.
func Configure(dev device.Device, req Request, logger common.Logger) (*Result, error) {
	s, err := New(dev, req, logger)
	if err != nil {
		return nil, err
	}
	return s.Configure()
}

// Teardown resets the broadcast network req built.
func Teardown(dev device.Device, req Request, logger common.Logger) error {
	s, err := New(dev, req, logger)
	if err != nil {
		return err
	}
	return s.Teardown()
}

// Configure programs every assigned tile and then builds the broadcast
// network. The first device failure aborts the session; nothing already
// written is undone.
func (s *Session) Configure() (*Result, error) {
	res := &Result{
		SessionID: s.ID,
		Events:    make(map[aie.TileLoc][]events.Event),
		Counters:  make(map[aie.TileLoc][]Counter),
		Config:    runtimecfg.NewRecord(s.ID, s.req.Generation),
	}
	plans, err := s.plans()
	if err != nil {
		return nil, err
	}
	for _, tp := range plans {
		if len(tp.events) == 0 {
			s.logger.Warning(fmt.Sprintf("metric set %q is not available for %v at %s, tile skipped",
				tp.assign.MetricSet, tp.assign.Tile.Class, tp.assign.Tile.Loc))
			res.Skipped = append(res.Skipped, tp.assign.Tile.Loc)
			continue
		}
		if err := device.ApplyAll(s.dev, tp.ops); err != nil {
			return nil, fmt.Errorf("configure tile %s: %w", tp.assign.Tile.Loc, err)
		}
		s.logger.Logf(common.SeverityDebug, "tile %s %v set %q, %d events, %d ops",
			tp.assign.Tile.Loc, tp.assign.Tile.Class, tp.assign.MetricSet, len(tp.events), len(tp.ops))
		tp.record(res.Config)
		res.Events[tp.assign.Tile.Loc] = tp.events
		if len(tp.counters) > 0 {
			res.Counters[tp.assign.Tile.Loc] = tp.counters
		}
	}
	if err := s.network.Build(s.dev, res.Tiles()); err != nil {
		return nil, err
	}
	s.logger.Logf(common.SeverityInfo, "trace configured on %d tiles, broadcast %d/%d",
		len(res.Events), s.network.ID1, s.network.ID2)
	return res, nil
}

// Teardown resets the broadcast network over the tiles the session traces.
func (s *Session) Teardown() error {
	tiles, err := s.tracedTiles()
	if err != nil {
		return err
	}
	if err := s.network.Reset(s.dev, tiles); err != nil {
		return err
	}
	s.logger.Logf(common.SeverityInfo, "broadcast network %d/%d reset", s.network.ID1, s.network.ID2)
	return nil
}

// Plan returns every device call Configure would issue, in order, without
// touching the device.
func (s *Session) Plan() ([]device.Op, error) {
	plans, err := s.plans()
	if err != nil {
		return nil, err
	}
	var ops []device.Op
	var tiles []aie.TileLoc
	for _, tp := range plans {
		if len(tp.events) > 0 {
			ops = append(ops, tp.ops...)
			tiles = append(tiles, tp.assign.Tile.Loc)
		}
	}
	build, err := s.network.PlanBuild(tiles)
	if err != nil {
		return nil, err
	}
	return append(ops, build...), nil
}

// PlanTeardown returns the device calls Teardown would issue.
func (s *Session) PlanTeardown() ([]device.Op, error) {
	tiles, err := s.tracedTiles()
	if err != nil {
		return nil, err
	}
	return s.network.PlanReset(tiles)
}

// tracedTiles returns the tiles whose metric set resolved to events.
func (s *Session) tracedTiles() ([]aie.TileLoc, error) {
	plans, err := s.plans()
	if err != nil {
		return nil, err
	}
	var out []aie.TileLoc
	for _, tp := range plans {
		if len(tp.events) > 0 {
			out = append(out, tp.assign.Tile.Loc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out, nil
}
