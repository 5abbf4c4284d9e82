package aie

import "testing"

func TestGenerationOrdering(t *testing.T) {
	if !(GenAIE1 < GenAIE2 && GenAIE2 < GenAIE2PS && GenAIE2PS < GenAIE4) {
		t.Fatalf("generations are not ordered: %v", Generations)
	}
}

func TestParseGeneration(t *testing.T) {
	tests := []struct {
		in   string
		want Generation
		err  Err
	}{
		{"aie", GenAIE1, OK},
		{"AIE2", GenAIE2, OK},
		{" aie2ps ", GenAIE2PS, OK},
		{"6", GenAIE4, OK},
		{"3", GenUnknown, ErrUnknownGeneration},
		{"versal", GenUnknown, ErrUnknownGeneration},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGeneration(tt.in)
			if got != tt.want || err != tt.err {
				t.Errorf("ParseGeneration(%q) = %v, %v; want %v, %v", tt.in, got, err, tt.want, tt.err)
			}
		})
	}
}

func TestParseModuleClass(t *testing.T) {
	for _, c := range ModuleClasses {
		got, err := ParseModuleClass(c.String())
		if err != OK || got != c {
			t.Errorf("ParseModuleClass(%q) = %v, %v", c.String(), got, err)
		}
	}
	if _, err := ParseModuleClass("npi"); err != ErrUnknownModule {
		t.Errorf("expected ErrUnknownModule, got %v", err)
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{DirNone, "-"},
		{DirAll, "SWNE"},
		{DirSouth | DirEast, "SE"},
		{DirNorth, "N"},
	}
	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.want)
		}
	}
	if (DirSouth | DirWest).Complement() != DirNorth|DirEast {
		t.Errorf("unexpected complement")
	}
	if !DirAll.Has(DirWest | DirNorth) {
		t.Errorf("DirAll should contain west and north")
	}
}

func TestTopologyClassOf(t *testing.T) {
	topo, err := TopologyFor(GenAIE2)
	if err != OK {
		t.Fatalf("TopologyFor: %v", err)
	}
	want := []ModuleClass{ClassShim, ClassMemoryTile, ClassCore, ClassCore}
	for row, c := range want {
		if got := topo.ClassOf(uint8(row)); got != c {
			t.Errorf("row %d: got %v, want %v", row, got, c)
		}
	}

	topo1, _ := TopologyFor(GenAIE1)
	if topo1.ClassOf(1) != ClassCore {
		t.Errorf("AIE1 has no memory tile rows")
	}
}

func TestTileAddress(t *testing.T) {
	topo, _ := TopologyFor(GenAIE2)
	loc := TileLoc{Col: 2, Row: 3}
	if got, want := topo.TileAddress(loc), uint64(2<<25|3<<20); got != want {
		t.Errorf("TileAddress = 0x%X, want 0x%X", got, want)
	}
	if _, err := TopologyFor(GenUnknown); err != ErrUnknownGeneration {
		t.Errorf("expected ErrUnknownGeneration")
	}
}

func TestTileLocLess(t *testing.T) {
	a := TileLoc{Col: 1, Row: 5}
	b := TileLoc{Col: 2, Row: 0}
	c := TileLoc{Col: 2, Row: 1}
	if !a.Less(b) || !b.Less(c) || c.Less(a) {
		t.Errorf("column-major ordering broken")
	}
}
