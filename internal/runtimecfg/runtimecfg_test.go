package runtimecfg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/segmentio/encoding/json"

	"aietrace/internal/aie"
	"aietrace/internal/device"
	"aietrace/internal/events"
)

func newSim(t *testing.T) (aie.Topology, *device.Sim) {
	t.Helper()
	topo, e := aie.TopologyFor(aie.GenAIE2)
	if e != aie.OK {
		t.Fatal(e)
	}
	return topo, device.NewSim(topo)
}

func TestEventSelections(t *testing.T) {
	tests := []struct {
		name     string
		set      string
		ch0, ch1 uint8
		dir      aie.DMADirection
		master   bool
		s2mm     [2]int8
		mm2s     [2]int8
	}{
		{"input", "input_channels", 0, 1, aie.DMAS2MM, true, [2]int8{0, 1}, [2]int8{Unset, Unset}},
		{"input same channel", "s2mm_channels_stalls", 2, 2, aie.DMAS2MM, true, [2]int8{2, Unset}, [2]int8{Unset, Unset}},
		{"output", "output_channels_stalls", 3, 4, aie.DMAMM2S, false, [2]int8{Unset, Unset}, [2]int8{3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topo, sim := newSim(t)
			tile := topo.NewTile(1, 1)
			cfg := NewTileConfig(tile.Loc, tile.Class, tt.set)

			if err := device.ApplyAll(sim, PlanEventSelections(tile, tt.set, tt.ch0, tt.ch1)); err != nil {
				t.Fatal(err)
			}
			RecordSelections(cfg, tt.master, tt.ch0, tt.ch1)
			for slot, ch := range []uint8{tt.ch0, tt.ch1} {
				sel, ok := sim.DMASelection(tile.Loc, uint8(slot))
				if !ok || sel != (device.DMASelection{Dir: tt.dir, Channel: ch}) {
					t.Errorf("slot %d = %v, %v", slot, sel, ok)
				}
			}
			if cfg.PortTraceIDs[0] != int8(tt.ch0) || cfg.PortTraceIDs[1] != int8(tt.ch1) || cfg.PortTraceIDs[2] != Unset {
				t.Errorf("port ids = %v", cfg.PortTraceIDs)
			}
			if cfg.PortTraceIsMaster[0] != tt.master || cfg.PortTraceIsMaster[1] != tt.master {
				t.Errorf("master flags = %v", cfg.PortTraceIsMaster)
			}
			if cfg.S2MMChannels != tt.s2mm || cfg.MM2SChannels != tt.mm2s {
				t.Errorf("channels s2mm=%v mm2s=%v", cfg.S2MMChannels, cfg.MM2SChannels)
			}
		})
	}
}

func TestSelectionsOnlyForMemoryTiles(t *testing.T) {
	topo, _ := newSim(t)
	for _, tile := range []aie.Tile{topo.NewTile(0, 0), topo.NewTile(0, 3)} {
		if ops := PlanEventSelections(tile, "mm2s_channels", 0, 1); len(ops) != 0 {
			t.Errorf("%s: selections %v", tile.Loc, ops)
		}
	}
}

func TestRecordInterfacePorts(t *testing.T) {
	tests := []struct {
		name    string
		evs     []events.Event
		dir     aie.DMADirection
		input   bool
		channel uint8
		ports   [NumTracePorts]int8
		master  [NumTracePorts]bool
		s2mm    [2]int8
		mm2s    [2]int8
	}{
		{
			name: "input ports",
			evs: []events.Event{
				events.EventPortRunning0PL, events.EventPortStalled0PL,
				events.EventPortRunning1PL, events.EventPortStalled1PL,
			},
			dir: aie.DMAMM2S, input: true, channel: 0,
			ports:  [NumTracePorts]int8{0, 0, Unset, Unset, Unset, Unset, Unset, Unset},
			master: [NumTracePorts]bool{true, true},
			s2mm:   [2]int8{Unset, Unset},
			mm2s:   [2]int8{Unset, Unset},
		},
		{
			name: "output port channel 1",
			evs:  []events.Event{events.EventPortRunning3PL},
			dir:  aie.DMAS2MM, channel: 1,
			ports: [NumTracePorts]int8{Unset, Unset, Unset, 1, Unset, Unset, Unset, Unset},
			s2mm:  [2]int8{Unset, Unset},
			mm2s:  [2]int8{Unset, Unset},
		},
		{
			name: "dma details",
			evs: []events.Event{
				events.EventDMAS2MM1StartBDPL, events.EventDMAS2MM1FinishedBDPL, events.EventDMAS2MM1StalledLockAcquirePL,
			},
			dir: aie.DMAS2MM, channel: 1,
			ports: [NumTracePorts]int8{Unset, Unset, Unset, Unset, Unset, Unset, Unset, Unset},
			s2mm:  [2]int8{1, Unset},
			mm2s:  [2]int8{Unset, Unset},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewTileConfig(aie.TileLoc{Col: 2}, aie.ClassShim, "set")
			RecordInterfacePorts(cfg, tt.evs, tt.dir, tt.input, tt.channel)
			if cfg.PortTraceIDs != tt.ports || cfg.PortTraceIsMaster != tt.master {
				t.Errorf("ports = %v master = %v", cfg.PortTraceIDs, cfg.PortTraceIsMaster)
			}
			if cfg.S2MMChannels != tt.s2mm || cfg.MM2SChannels != tt.mm2s {
				t.Errorf("channels s2mm=%v mm2s=%v", cfg.S2MMChannels, cfg.MM2SChannels)
			}
		})
	}
}

func TestRecordOrderAndJSON(t *testing.T) {
	r := NewRecord("sess", aie.GenAIE2)
	for _, loc := range []aie.TileLoc{{Col: 2, Row: 3}, {Col: 0, Row: 4}, {Col: 0, Row: 1}} {
		r.Tile(loc, aie.ClassCore, "functions")
	}
	if again := r.Tile(aie.TileLoc{Col: 2, Row: 3}, aie.ClassCore, "other"); again.MetricSet != "functions" {
		t.Errorf("Tile created a second record")
	}
	var got []aie.TileLoc
	for _, c := range r.Tiles() {
		got = append(got, c.Loc)
	}
	want := []aie.TileLoc{{Col: 0, Row: 1}, {Col: 0, Row: 4}, {Col: 2, Row: 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tile order (-want +got):\n%s", diff)
	}

	c, _ := r.Get(aie.TileLoc{Col: 0, Row: 1})
	c.SetEvents([]events.Event{events.EventInstrCallCore, events.EventInstrReturnCore})

	var buf bytes.Buffer
	if err := r.WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		SessionID string `json:"session_id"`
		Gen       string `json:"hw_generation"`
		Tiles     []struct {
			Column uint8    `json:"column"`
			Row    uint8    `json:"row"`
			Module string   `json:"module"`
			Events []string `json:"events"`
			Ports  []int8   `json:"port_trace_ids"`
		} `json:"tiles"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if decoded.SessionID != "sess" || decoded.Gen != "aie2" || len(decoded.Tiles) != 3 {
		t.Fatalf("decoded = %+v", decoded)
	}
	first := decoded.Tiles[0]
	if first.Row != 1 || first.Module != "aie" || len(first.Ports) != NumTracePorts || first.Ports[0] != -1 {
		t.Errorf("first tile = %+v", first)
	}
	if strings.Join(first.Events, ",") != "INSTR_CALL_CORE,INSTR_RETURN_CORE" {
		t.Errorf("events = %v", first.Events)
	}
}
