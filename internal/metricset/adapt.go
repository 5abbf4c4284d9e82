package metricset

import (
	"aietrace/internal/aie"
	"aietrace/internal/events"
)

// channelPairs maps channel 0 DMA events of an interface tile to their
// channel 1 counterparts, per DMA direction.
var channelPairs = map[aie.DMADirection][][2]events.Event{
	aie.DMAMM2S: {
		{events.EventDMAMM2S0StartTaskPL, events.EventDMAMM2S1StartTaskPL},
		{events.EventDMAMM2S0FinishedBDPL, events.EventDMAMM2S1FinishedBDPL},
		{events.EventDMAMM2S0FinishedTaskPL, events.EventDMAMM2S1FinishedTaskPL},
		{events.EventDMAMM2S0StalledLockPL, events.EventDMAMM2S1StalledLockPL},
		{events.EventDMAMM2S0StreamBackpressurePL, events.EventDMAMM2S1StreamBackpressurePL},
		{events.EventDMAMM2S0MemoryStarvationPL, events.EventDMAMM2S1MemoryStarvationPL},

		{events.EventNOC0DMAMM2S0StartTaskPL, events.EventNOC0DMAMM2S1StartTaskPL},
		{events.EventNOC0DMAMM2S0FinishedBDPL, events.EventNOC0DMAMM2S1FinishedBDPL},
		{events.EventNOC0DMAMM2S0FinishedTaskPL, events.EventNOC0DMAMM2S1FinishedTaskPL},
		{events.EventNOC0DMAMM2S0StalledLockPL, events.EventNOC0DMAMM2S1StalledLockPL},
		{events.EventNOC0DMAMM2S0StreamBackpressurePL, events.EventNOC0DMAMM2S1StreamBackpressurePL},
		{events.EventNOC0DMAMM2S0MemoryStarvationPL, events.EventNOC0DMAMM2S1MemoryStarvationPL},
	},
	aie.DMAS2MM: {
		{events.EventDMAS2MM0StartTaskPL, events.EventDMAS2MM1StartTaskPL},
		{events.EventDMAS2MM0FinishedBDPL, events.EventDMAS2MM1FinishedBDPL},
		{events.EventDMAS2MM0FinishedTaskPL, events.EventDMAS2MM1FinishedTaskPL},
		{events.EventDMAS2MM0StalledLockPL, events.EventDMAS2MM1StalledLockPL},
		{events.EventDMAS2MM0StreamStarvationPL, events.EventDMAS2MM1StreamStarvationPL},
		{events.EventDMAS2MM0MemoryBackpressurePL, events.EventDMAS2MM1MemoryBackpressurePL},

		{events.EventNOC0DMAS2MM0StartTaskPL, events.EventNOC0DMAS2MM1StartTaskPL},
		{events.EventNOC0DMAS2MM0FinishedBDPL, events.EventNOC0DMAS2MM1FinishedBDPL},
		{events.EventNOC0DMAS2MM0FinishedTaskPL, events.EventNOC0DMAS2MM1FinishedTaskPL},
		{events.EventNOC0DMAS2MM0StalledLockPL, events.EventNOC0DMAS2MM1StalledLockPL},
		{events.EventNOC0DMAS2MM0StreamStarvationPL, events.EventNOC0DMAS2MM1StreamStarvationPL},
		{events.EventNOC0DMAS2MM0MemoryBackpressurePL, events.EventNOC0DMAS2MM1MemoryBackpressurePL},
	},
}

var channelSubst = func() map[aie.DMADirection]map[events.Event]events.Event {
	m := make(map[aie.DMADirection]map[events.Event]events.Event, len(channelPairs))
	for dir, pairs := range channelPairs {
		sub := make(map[events.Event]events.Event, len(pairs))
		for _, p := range pairs {
			sub[p[0]] = p[1]
		}
		m[dir] = sub
	}
	return m
}()

// ChannelPairs returns the channel 0 to channel 1 substitutions used for dir.
func ChannelPairs(dir aie.DMADirection) [][2]events.Event {
	return append([][2]events.Event(nil), channelPairs[dir]...)
}

// Adapt returns evs with interface tile channel 0 DMA events replaced by
// their channel 1 variants. It only substitutes for DMA driven interface
// tiles tracing a channel other than 0; otherwise the result equals evs.
// Events without a channel 1 counterpart pass through unchanged.
func Adapt(class aie.ModuleClass, io aie.IOKind, name string, channel uint8, evs []events.Event) []events.Event {
	out := append([]events.Event(nil), evs...)
	if class != aie.ClassShim || io == aie.IOPLIO || channel == 0 {
		return out
	}
	sub := channelSubst[Direction(class, name)]
	for i, e := range out {
		if r, ok := sub[e]; ok {
			out[i] = r
		}
	}
	return out
}
