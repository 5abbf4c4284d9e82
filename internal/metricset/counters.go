package metricset

import (
	"aietrace/internal/aie"
	"aietrace/internal/events"
)

// Trace counter thresholds of the two counter schemes.
const (
	ES1TraceCounter uint32 = 1020
	ES2TraceCounter uint32 = 0x3FF00
)

// Counter schemes.
const (
	SchemeES1 = "es1"
	SchemeES2 = "es2"
)

// schemeLen is the number of counters a scheme programs. es1 needs a second
// counter running at the squared threshold to work around a hardware erratum.
var schemeLen = map[string]int{SchemeES1: 2, SchemeES2: 1}

func counterEvent(class aie.ModuleClass, start bool) (events.Event, bool) {
	switch class {
	case aie.ClassCore:
		if start {
			return events.EventActiveCore, true
		}
		return events.EventDisabledCore, true
	case aie.ClassMemory:
		if start {
			return events.EventTrueMem, true
		}
		return events.EventNoneMem, true
	}
	return events.EventNone, false
}

func counterEvents(class aie.ModuleClass, gen aie.Generation, scheme string, start bool) []events.Event {
	n := schemeLen[scheme]
	ev, ok := counterEvent(class, start)
	if gen != aie.GenAIE1 || n == 0 || !ok {
		return nil
	}
	evs := make([]events.Event, n)
	for i := range evs {
		evs[i] = ev
	}
	return evs
}

// CounterStartEvents returns the events that start the trace counters.
// Only the first generation uses counters; every other generation gets an
// empty list.
func CounterStartEvents(class aie.ModuleClass, gen aie.Generation, scheme string) []events.Event {
	return counterEvents(class, gen, scheme, true)
}

// CounterEndEvents returns the events that stop the trace counters.
func CounterEndEvents(class aie.ModuleClass, gen aie.Generation, scheme string) []events.Event {
	return counterEvents(class, gen, scheme, false)
}

// CounterThresholds returns the counter thresholds for a scheme.
func CounterThresholds(class aie.ModuleClass, gen aie.Generation, scheme string) []uint32 {
	if _, ok := counterEvent(class, true); !ok || gen != aie.GenAIE1 {
		return nil
	}
	switch scheme {
	case SchemeES1:
		return []uint32{ES1TraceCounter, ES1TraceCounter * ES1TraceCounter}
	case SchemeES2:
		return []uint32{ES2TraceCounter}
	}
	return nil
}
