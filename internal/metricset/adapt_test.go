package metricset

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"aietrace/internal/aie"
	"aietrace/internal/events"
)

func TestAdaptGuards(t *testing.T) {
	in := Resolve(aie.ClassShim, aie.GenAIE2, "input_ports_details")
	tests := []struct {
		name    string
		class   aie.ModuleClass
		io      aie.IOKind
		channel uint8
	}{
		{"memory module", aie.ClassMemory, aie.IOGMIO, 1},
		{"plio", aie.ClassShim, aie.IOPLIO, 1},
		{"channel 0", aie.ClassShim, aie.IOGMIO, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Adapt(tt.class, tt.io, "input_ports_details", tt.channel, in)
			if diff := cmp.Diff(in, got); diff != "" {
				t.Errorf("list changed (-in +out):\n%s", diff)
			}
		})
	}
}

func TestAdaptChannel1(t *testing.T) {
	for _, gen := range []aie.Generation{aie.GenAIE2, aie.GenAIE2PS, aie.GenAIE4} {
		for _, name := range []string{"input_ports_details", "output_ports_details"} {
			in := Resolve(aie.ClassShim, gen, name)
			out := Adapt(aie.ClassShim, aie.IOGMIO, name, 1, in)
			if len(out) != len(in) {
				t.Fatalf("%v/%s: length changed", gen, name)
			}
			for i := range in {
				if ch := events.ChannelNumber(in[i]); ch != 0 {
					t.Fatalf("%v/%s: unexpected input event %v", gen, name, in[i])
				}
				if ch := events.ChannelNumber(out[i]); ch != 1 {
					t.Errorf("%v/%s: %v adapted to %v", gen, name, in[i], out[i])
				}
			}
		}
	}
}

func TestAdaptPassThrough(t *testing.T) {
	in := []events.Event{events.EventPortRunning0PL, events.EventDMAMM2S0StartTaskPL, events.EventDMAS2MM0StartTaskPL}
	got := Adapt(aie.ClassShim, aie.IOGMIO, "mm2s_ports_details", 1, in)
	want := []events.Event{events.EventPortRunning0PL, events.EventDMAMM2S1StartTaskPL, events.EventDMAS2MM0StartTaskPL}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if in[1] != events.EventDMAMM2S0StartTaskPL {
		t.Errorf("input was modified")
	}
}

// Every channel 0 DMA event used by an interface tile set must have a
// channel 1 counterpart in the direction the set is adapted for.
func TestChannelPairsComplete(t *testing.T) {
	for dir, pairs := range channelPairs {
		seen := make(map[events.Event]bool)
		for _, p := range pairs {
			if seen[p[1]] {
				t.Errorf("%v: %v targeted twice", dir, p[1])
			}
			seen[p[1]] = true
			if events.ChannelNumber(p[0]) != 0 || events.ChannelNumber(p[1]) != 1 {
				t.Errorf("%v: bad pair %v -> %v", dir, p[0], p[1])
			}
			if !strings.Contains(p[0].String(), dir.String()) || !strings.Contains(p[1].String(), dir.String()) {
				t.Errorf("%v: pair %v -> %v crosses directions", dir, p[0], p[1])
			}
			if strings.Replace(p[0].String(), dir.String()+"_0", dir.String()+"_1", 1) != p[1].String() {
				t.Errorf("%v: %v does not pair with %v", dir, p[0], p[1])
			}
		}
		if len(ChannelPairs(dir)) != len(pairs) {
			t.Errorf("ChannelPairs(%v) length mismatch", dir)
		}
	}

	for _, gen := range []aie.Generation{aie.GenAIE2, aie.GenAIE2PS, aie.GenAIE4} {
		for _, name := range Names(aie.ClassShim, gen) {
			sub := channelSubst[Direction(aie.ClassShim, name)]
			for _, e := range Resolve(aie.ClassShim, gen, name) {
				if events.ChannelNumber(e) == 0 {
					if _, ok := sub[e]; !ok {
						t.Errorf("%v/%s: %v has no channel 1 variant", gen, name, e)
					}
				}
			}
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		class aie.ModuleClass
		name  string
		input bool
		dma   bool
		dir   aie.DMADirection
	}{
		{aie.ClassMemoryTile, "input_channels", true, false, aie.DMAS2MM},
		{aie.ClassMemoryTile, "s2mm_channels_stalls", true, true, aie.DMAS2MM},
		{aie.ClassMemoryTile, "mm2s_channels", false, true, aie.DMAMM2S},
		{aie.ClassShim, "input_ports", true, false, aie.DMAMM2S},
		{aie.ClassShim, "mm2s_ports_details", true, true, aie.DMAMM2S},
		{aie.ClassShim, "s2mm_ports", false, true, aie.DMAS2MM},
		{aie.ClassCore, "all_stalls_dma", false, true, aie.DMAS2MM},
		{aie.ClassMemory, "mm2s_channels_stalls", true, true, aie.DMAMM2S},
		{aie.ClassCore, "functions", false, false, aie.DMAS2MM},
	}
	for _, tt := range tests {
		if got := IsInputSet(tt.class, tt.name); got != tt.input {
			t.Errorf("IsInputSet(%v, %s) = %v", tt.class, tt.name, got)
		}
		if got := IsDMASet(tt.name); got != tt.dma {
			t.Errorf("IsDMASet(%s) = %v", tt.name, got)
		}
		if got := Direction(tt.class, tt.name); got != tt.dir {
			t.Errorf("Direction(%v, %s) = %v", tt.class, tt.name, got)
		}
	}
}
