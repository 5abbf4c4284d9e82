package broadcast

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"aietrace/internal/aie"
	"aietrace/internal/common"
	"aietrace/internal/device"
	"aietrace/internal/events"
)

type node struct {
	loc aie.TileLoc
	mod aie.ModuleKind
	sw  aie.Switch
	id  uint8
}

func (n node) String() string {
	return fmt.Sprintf("%s/%v/%v/%d", n.loc, n.mod, n.sw, n.id)
}

// entry returns the switch a signal travelling north into loc arrives at.
func entry(topo aie.Topology, loc aie.TileLoc, id uint8) node {
	mod := aie.ModCore
	if topo.ClassOf(loc.Row) == aie.ClassMemoryTile {
		mod = aie.ModMem
	}
	return node{loc, mod, aie.SwitchA, id}
}

// propagate follows the trigger through the switch state of sim and returns
// every switch it reaches plus every open direction that leads nowhere the
// network intends.
func propagate(sim *device.Sim, n Network, tops []uint8) (map[node]bool, []string) {
	reached := make(map[node]bool)
	var leaks []string
	inRange := func(loc aie.TileLoc) bool {
		return int(loc.Col) >= int(n.StartCol) && int(loc.Col) < n.EndCol() && loc.Row <= tops[loc.Col-n.StartCol]
	}

	origin := aie.TileLoc{Col: n.StartCol}
	var queue []node
	push := func(nd node) {
		if !reached[nd] {
			reached[nd] = true
			queue = append(queue, nd)
		}
	}
	if ev, ok := sim.BroadcastEvent(origin, aie.ModPL, n.ID2); ok && ev == n.Trigger {
		push(node{origin, aie.ModPL, aie.SwitchA, n.ID2})
	}
	if ev, ok := sim.BroadcastEvent(origin, aie.ModPL, n.ID1); ok && ev == n.Trigger {
		push(node{origin, aie.ModPL, aie.SwitchA, n.ID1})
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		open := sim.Blocked(cur.loc, cur.mod, cur.sw, cur.id).Complement()
		for _, dir := range []aie.Direction{aie.DirSouth, aie.DirWest, aie.DirNorth, aie.DirEast} {
			if !open.Has(dir) {
				continue
			}
			var next node
			switch {
			case cur.mod == aie.ModPL && cur.id == n.ID2 && cur.sw == aie.SwitchA && dir == aie.DirEast:
				next = node{cur.loc, aie.ModPL, aie.SwitchB, n.ID2}
			case cur.mod == aie.ModPL && cur.id == n.ID2 && cur.sw == aie.SwitchB && dir == aie.DirEast:
				next = node{aie.TileLoc{Col: cur.loc.Col + 1}, aie.ModPL, aie.SwitchA, n.ID2}
			case cur.mod == aie.ModCore && dir == aie.DirEast:
				next = node{cur.loc, aie.ModMem, aie.SwitchA, cur.id}
			case cur.id == n.ID1 && dir == aie.DirNorth:
				next = entry(n.Topo, aie.TileLoc{Col: cur.loc.Col, Row: cur.loc.Row + 1}, n.ID1)
			default:
				leaks = append(leaks, fmt.Sprintf("%v open %v", cur, dir))
				continue
			}
			if !inRange(next.loc) {
				leaks = append(leaks, fmt.Sprintf("%v leaks %v to %s", cur, dir, next.loc))
				continue
			}
			push(next)
			// relay arriving at an interface tile re-raises the trigger on id1
			if next.mod == aie.ModPL && next.id == n.ID2 {
				if ev, ok := sim.BroadcastEvent(next.loc, aie.ModPL, n.ID1); ok && ev == events.BroadcastPL(n.ID2) {
					push(node{next.loc, aie.ModPL, aie.SwitchA, n.ID1})
				}
			}
		}
	}
	return reached, leaks
}

type networkCase struct {
	name  string
	gen   aie.Generation
	start uint8
	cols  uint8
	tiles []aie.TileLoc
}

func networkCases() []networkCase {
	return []networkCase{
		{"aie2 full block", aie.GenAIE2, 0, 4, []aie.TileLoc{{Col: 0, Row: 5}, {Col: 1, Row: 5}, {Col: 2, Row: 5}, {Col: 3, Row: 5}}},
		{"aie2 ragged", aie.GenAIE2, 1, 3, []aie.TileLoc{{Col: 1, Row: 2}, {Col: 2, Row: 4}, {Col: 3, Row: 1}, {Col: 3, Row: 3}}},
		{"aie2 empty column", aie.GenAIE2, 0, 3, []aie.TileLoc{{Col: 0, Row: 3}, {Col: 2, Row: 2}}},
		{"aie2 single column", aie.GenAIE2, 4, 1, []aie.TileLoc{{Col: 4, Row: 4}}},
		{"aie2 interface only", aie.GenAIE2, 0, 2, []aie.TileLoc{{Col: 0, Row: 0}, {Col: 1, Row: 0}}},
		{"aie1", aie.GenAIE1, 10, 5, []aie.TileLoc{{Col: 10, Row: 1}, {Col: 11, Row: 8}, {Col: 13, Row: 4}, {Col: 14, Row: 2}}},
		{"aie2ps", aie.GenAIE2PS, 30, 6, []aie.TileLoc{{Col: 30, Row: 5}, {Col: 33, Row: 1}, {Col: 35, Row: 3}}},
		{"aie4 out of range tile ignored", aie.GenAIE4, 2, 2, []aie.TileLoc{{Col: 2, Row: 3}, {Col: 3, Row: 2}, {Col: 6, Row: 5}}},
	}
}

func newNetwork(t *testing.T, gen aie.Generation, start, cols uint8) (Network, *device.Sim) {
	t.Helper()
	topo, e := aie.TopologyFor(gen)
	if e != aie.OK {
		t.Fatalf("TopologyFor(%v): %v", gen, e)
	}
	n := Network{Topo: topo, StartCol: start, NumCols: cols, ID1: 6, ID2: 7, Trigger: events.EventTruePL}
	return n, device.NewSim(topo)
}

func TestBuildReachesEveryTile(t *testing.T) {
	for _, tc := range networkCases() {
		t.Run(tc.name, func(t *testing.T) {
			n, sim := newNetwork(t, tc.gen, tc.start, tc.cols)
			if err := n.Build(sim, tc.tiles); err != nil {
				t.Fatalf("Build: %v", err)
			}
			tops, err := n.TopRows(tc.tiles)
			if err != nil {
				t.Fatal(err)
			}
			reached, leaks := propagate(sim, n, tops)
			for _, l := range leaks {
				t.Errorf("leak: %s", l)
			}
			for i, top := range tops {
				col := n.StartCol + uint8(i)
				shim := aie.TileLoc{Col: col}
				if !reached[node{shim, aie.ModPL, aie.SwitchA, n.ID2}] {
					t.Errorf("relay did not reach %s", shim)
				}
				for row := uint8(0); row <= top; row++ {
					loc := aie.TileLoc{Col: col, Row: row}
					var want []node
					switch n.Topo.ClassOf(row) {
					case aie.ClassShim:
						want = []node{{loc, aie.ModPL, aie.SwitchA, n.ID1}}
					case aie.ClassMemoryTile:
						want = []node{{loc, aie.ModMem, aie.SwitchA, n.ID1}}
					default:
						want = []node{{loc, aie.ModCore, aie.SwitchA, n.ID1}, {loc, aie.ModMem, aie.SwitchA, n.ID1}}
					}
					for _, w := range want {
						if !reached[w] {
							t.Errorf("trigger did not reach %v", w)
						}
					}
				}
			}
		})
	}
}

func TestBuildResetRoundTrip(t *testing.T) {
	for _, tc := range networkCases() {
		t.Run(tc.name, func(t *testing.T) {
			n, sim := newNetwork(t, tc.gen, tc.start, tc.cols)
			if err := n.Build(sim, tc.tiles); err != nil {
				t.Fatal(err)
			}
			if len(sim.BlockedTiles(n.ID1)) == 0 {
				t.Fatalf("build blocked nothing")
			}
			if err := n.Reset(sim, tc.tiles); err != nil {
				t.Fatal(err)
			}
			for _, id := range []uint8{n.ID1, n.ID2} {
				if tiles := sim.BlockedTiles(id); len(tiles) != 0 {
					t.Errorf("channel %d still blocked at %v", id, tiles)
				}
			}
			if sim.ActiveBroadcasts() != 0 {
				t.Errorf("%d broadcasts still driven", sim.ActiveBroadcasts())
			}
		})
	}
}

func TestPlanOrder(t *testing.T) {
	n, _ := newNetwork(t, aie.GenAIE2, 0, 2)
	ops, err := n.PlanBuild([]aie.TileLoc{{Col: 0, Row: 2}, {Col: 1, Row: 1}})
	if err != nil {
		t.Fatal(err)
	}
	type step struct {
		kind device.OpKind
		loc  aie.TileLoc
		mod  aie.ModuleKind
		sw   aie.Switch
		id   uint8
		dirs aie.Direction
		ev   events.Event
	}
	var got []step
	for _, op := range ops {
		got = append(got, step{op.Kind, op.Loc, op.Mod, op.Switch, op.Channel, op.Dirs, op.Event})
	}
	swe := aie.DirSouth | aie.DirWest | aie.DirEast
	swn := aie.DirSouth | aie.DirWest | aie.DirNorth
	want := []step{
		{device.OpBroadcast, aie.TileLoc{Col: 0, Row: 0}, aie.ModPL, aie.SwitchA, 7, 0, events.EventTruePL},
		{device.OpBroadcast, aie.TileLoc{Col: 0, Row: 0}, aie.ModPL, aie.SwitchA, 6, 0, events.EventTruePL},
		{device.OpBlock, aie.TileLoc{Col: 0, Row: 0}, aie.ModPL, aie.SwitchA, 6, swe, 0},
		{device.OpBlock, aie.TileLoc{Col: 0, Row: 0}, aie.ModPL, aie.SwitchA, 7, swn, 0},
		{device.OpBlock, aie.TileLoc{Col: 0, Row: 0}, aie.ModPL, aie.SwitchB, 7, swn, 0},
		{device.OpBlock, aie.TileLoc{Col: 0, Row: 1}, aie.ModMem, aie.SwitchA, 6, swe, 0},
		{device.OpBlock, aie.TileLoc{Col: 0, Row: 2}, aie.ModCore, aie.SwitchA, 6, swn, 0},
		{device.OpBlock, aie.TileLoc{Col: 0, Row: 2}, aie.ModMem, aie.SwitchA, 6, aie.DirAll, 0},
		{device.OpBroadcast, aie.TileLoc{Col: 1, Row: 0}, aie.ModPL, aie.SwitchA, 6, 0, events.EventBroadcastA7PL},
		{device.OpBlock, aie.TileLoc{Col: 1, Row: 0}, aie.ModPL, aie.SwitchA, 6, swe, 0},
		{device.OpBlock, aie.TileLoc{Col: 1, Row: 0}, aie.ModPL, aie.SwitchA, 7, swn, 0},
		{device.OpBlock, aie.TileLoc{Col: 1, Row: 0}, aie.ModPL, aie.SwitchB, 7, aie.DirAll, 0},
		{device.OpBlock, aie.TileLoc{Col: 1, Row: 1}, aie.ModMem, aie.SwitchA, 6, aie.DirAll, 0},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(step{})); diff != "" {
		t.Errorf("build plan (-want +got):\n%s", diff)
	}

	reset, err := n.PlanReset([]aie.TileLoc{{Col: 0, Row: 2}, {Col: 1, Row: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if reset[0].Kind != device.OpResetBroadcast || reset[0].Channel != 7 {
		t.Errorf("reset starts with %v", reset[0])
	}
	for _, op := range reset[1:] {
		if op.Kind == device.OpUnblock && op.Dirs != aie.DirAll {
			t.Errorf("partial unblock %v", op)
		}
	}
}

func TestBuildStopsOnDeviceError(t *testing.T) {
	n, sim := newNetwork(t, aie.GenAIE2, 0, 3)
	tiles := []aie.TileLoc{{Col: 0, Row: 3}, {Col: 1, Row: 3}, {Col: 2, Row: 3}}
	injected := common.NewErrorMsg(aie.ErrSevError, aie.ErrDeviceWrite, "busy")
	sim.FailOn = func(op device.Op) error {
		if op.Loc.Col == 1 && op.Kind == device.OpBlock {
			return injected
		}
		return nil
	}
	err := n.Build(sim, tiles)
	if !errors.Is(err, injected) {
		t.Fatalf("Build error = %v", err)
	}
	for _, op := range sim.Ops() {
		if op.Loc.Col > 1 {
			t.Fatalf("build continued past the failure: %v", op)
		}
	}

	// reset over the partial build releases everything
	sim.FailOn = nil
	if err := n.Reset(sim, tiles); err != nil {
		t.Fatal(err)
	}
	if len(sim.BlockedTiles(n.ID1)) != 0 || len(sim.BlockedTiles(n.ID2)) != 0 {
		t.Errorf("partial build not fully reset")
	}
}

func TestValidate(t *testing.T) {
	topo, _ := aie.TopologyFor(aie.GenAIE2)
	tests := []struct {
		name string
		n    Network
		code aie.Err
	}{
		{"no columns", Network{Topo: topo, NumCols: 0, ID1: 1, ID2: 2}, aie.ErrBadColumnRange},
		{"past the array", Network{Topo: topo, StartCol: 3, NumCols: 3, ID1: 1, ID2: 2}, aie.ErrBadColumnRange},
		{"same ids", Network{Topo: topo, NumCols: 1, ID1: 2, ID2: 2}, aie.ErrNoBroadcastChannel},
		{"id out of pool", Network{Topo: topo, NumCols: 1, ID1: 2, ID2: 16}, aie.ErrNoBroadcastChannel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.n.PlanBuild(nil)
			var libErr *common.Error
			if !errors.As(err, &libErr) || libErr.Code != tt.code {
				t.Errorf("error = %v, want code %d", err, tt.code)
			}
		})
	}

	n := Network{Topo: topo, NumCols: 1, ID1: 1, ID2: 2}
	if _, err := n.TopRows([]aie.TileLoc{{Col: 0, Row: 9}}); err == nil {
		t.Errorf("row outside the array accepted")
	}
}
