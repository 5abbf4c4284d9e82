// Package metricset expands named metric sets into ordered event lists for
// each module class and hardware generation.
//
// Every catalog is built once per generation. A set is either enumerated
// directly or is an alias of a set defined earlier, in which case both names
// share one canonical list. Sets that a generation cannot support are kept in
// the catalog as empty lists, so a lookup never has to special-case a missing
// name.
package metricset

import (
	"sort"

	"aietrace/common"
	"aietrace/internal/aie"
	"aietrace/internal/events"
)

type alias struct {
	name   string
	target string
}

// gate makes a set available only from a minimum generation upwards.
// An empty name applies the gate to every set of the class.
type gate struct {
	class  aie.ModuleClass
	name   string
	minGen aie.Generation
}

var gates = []gate{
	{aie.ClassCore, "s2mm_channels_stalls", aie.GenAIE2},
	{aie.ClassCore, "mm2s_channels_stalls", aie.GenAIE2},
	{aie.ClassMemory, "s2mm_channels_stalls", aie.GenAIE2},
	{aie.ClassMemory, "mm2s_channels_stalls", aie.GenAIE2},
	{aie.ClassMemoryTile, "", aie.GenAIE2},
	{aie.ClassMemoryTile, "memory_conflicts3", aie.GenAIE4},
	{aie.ClassShim, "uc_dma", aie.GenAIE2PS},
	{aie.ClassShim, "uc_dma_dm2mm", aie.GenAIE2PS},
	{aie.ClassShim, "uc_dma_mm2dm", aie.GenAIE2PS},
	{aie.ClassShim, "uc_axis", aie.GenAIE2PS},
	{aie.ClassShim, "uc_program_flow", aie.GenAIE2PS},
}

type classDef struct {
	base    func(gen aie.Generation) map[string][]events.Event
	aliases []alias
}

var classDefs = [aie.NumModuleClasses]classDef{
	aie.ClassCore:       {base: coreSets, aliases: coreAliases},
	aie.ClassMemory:     {base: memorySets, aliases: memoryAliases},
	aie.ClassShim:       {base: shimSets, aliases: shimAliases},
	aie.ClassMemoryTile: {base: memTileSets, aliases: memTileAliases},
}

type catalog [aie.NumModuleClasses]map[string][]events.Event

var catalogs = func() map[aie.Generation]*catalog {
	m := make(map[aie.Generation]*catalog, len(aie.Generations))
	for _, gen := range aie.Generations {
		m[gen] = build(gen)
	}
	return m
}()

var logger common.Logger = common.NewNoOpLogger()

// SetLogger sets the logger that reports unknown metric set names.
func SetLogger(l common.Logger) {
	if l == nil {
		l = common.NewNoOpLogger()
	}
	logger = l
}

func build(gen aie.Generation) *catalog {
	var c catalog
	for class, def := range classDefs {
		sets := def.base(gen)
		for _, a := range def.aliases {
			sets[a.name] = sets[a.target]
		}
		for name := range sets {
			if !IsAvailable(name, aie.ModuleClass(class), gen) {
				sets[name] = []events.Event{}
			}
		}
		c[class] = sets
	}
	return &c
}

func lookup(class aie.ModuleClass, gen aie.Generation) map[string][]events.Event {
	c, ok := catalogs[gen]
	if !ok || int(class) >= len(c) {
		return nil
	}
	return c[class]
}

// Resolve returns the events of the named metric set. The result is a copy
// the caller may modify. Unknown names resolve to an empty list.
func Resolve(class aie.ModuleClass, gen aie.Generation, name string) []events.Event {
	evs, ok := lookup(class, gen)[name]
	if !ok {
		logger.Logf(common.SeverityDebug, "metric set %q is not defined for %v on %v", name, class, gen)
		return nil
	}
	return append([]events.Event(nil), evs...)
}

// IsAvailable reports whether name is a metric set that gen supports for class.
func IsAvailable(name string, class aie.ModuleClass, gen aie.Generation) bool {
	if !gen.IsValid() || int(class) >= len(classDefs) {
		return false
	}
	for _, g := range gates {
		if g.class == class && (g.name == "" || g.name == name) && gen < g.minGen {
			return false
		}
	}
	return true
}

// Names returns the sorted names of the metric sets available for class on gen.
func Names(class aie.ModuleClass, gen aie.Generation) []string {
	var names []string
	for name := range lookup(class, gen) {
		if IsAvailable(name, class, gen) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Defined reports whether name is known for class on gen, even if gated out.
func Defined(class aie.ModuleClass, gen aie.Generation, name string) bool {
	_, ok := lookup(class, gen)[name]
	return ok
}
