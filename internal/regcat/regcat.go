// Package regcat holds the per generation register catalogs used to translate
// between symbolic register names, tile relative offsets and register widths.
//
// One catalog exists per hardware generation. Catalogs are built when the
// package is initialised and are read-only afterwards, so they may be shared
// freely between callers.
package regcat

import (
	"fmt"
	"sort"
	"strings"

	"aietrace/internal/aie"
)

// DefaultSizeBits is reported for registers whose width is not catalogued.
const DefaultSizeBits = 32

// Register describes one catalogued register.
type Register struct {
	Name    string
	Address uint64
	Size    uint32
}

type classTable struct {
	byName map[string]Register
	byAddr map[uint64]Register
}

// Catalog is the immutable register catalog of one generation.
type Catalog struct {
	gen     aie.Generation
	classes [aie.NumModuleClasses]classTable
}

// genData maps each generation to its raw tables, indexed by module class.
var genData = map[aie.Generation][aie.NumModuleClasses][]Register{
	aie.GenAIE1: {
		aie.ClassCore:   without(aie2Core, "cm_core_amhh0_part1", "cm_core_amhh0_part2", "cm_edge_detection_event_control"),
		aie.ClassMemory: without(aie2Memory, "mm_edge_detection_event_control"),
		aie.ClassShim:   without(aie2Shim, "shim_edge_detection_event_control"),
	},
	aie.GenAIE2:   {aie2Core, aie2Memory, aie2Shim, aie2MemoryTile},
	aie.GenAIE2PS: {aie2Core, aie2Memory, aie2Shim, aie2MemoryTile},
	aie.GenAIE4:   {aie2Core, aie2Memory, aie2Shim, aie2MemoryTile},
}

// catalogs is built once at package initialisation and never written again.
var catalogs = func() map[aie.Generation]*Catalog {
	m := make(map[aie.Generation]*Catalog, len(genData))
	for gen, data := range genData {
		m[gen] = newCatalog(gen, data)
	}
	return m
}()

var emptyData [aie.NumModuleClasses][]Register

// For returns the shared catalog of gen. Unknown generations get an empty
// catalog, so lookups on it fall back to their sentinels.
func For(gen aie.Generation) *Catalog {
	if c, ok := catalogs[gen]; ok {
		return c
	}
	return newCatalog(gen, emptyData)
}

func newCatalog(gen aie.Generation, data [aie.NumModuleClasses][]Register) *Catalog {
	c := &Catalog{gen: gen}
	for class, regs := range data {
		t := classTable{
			byName: make(map[string]Register, len(regs)),
			byAddr: make(map[uint64]Register, len(regs)),
		}
		for _, r := range regs {
			t.byName[r.Name] = r
			t.byAddr[r.Address] = r
		}
		c.classes[class] = t
	}
	return c
}

// Generation returns the generation the catalog describes.
func (c *Catalog) Generation() aie.Generation { return c.gen }

func (c *Catalog) table(class aie.ModuleClass) (classTable, bool) {
	if int(class) >= len(c.classes) {
		return classTable{}, false
	}
	return c.classes[class], true
}

// AddressOf returns the tile relative offset of a named register.
func (c *Catalog) AddressOf(name string, class aie.ModuleClass) (uint64, bool) {
	t, ok := c.table(class)
	if !ok {
		return 0, false
	}
	r, ok := t.byName[name]
	return r.Address, ok
}

// SizeOf returns the width in bits of the register at addr, or DefaultSizeBits.
func (c *Catalog) SizeOf(addr uint64, class aie.ModuleClass) uint32 {
	if t, ok := c.table(class); ok {
		if r, ok := t.byAddr[addr]; ok {
			return r.Size
		}
	}
	return DefaultSizeBits
}

// NameOf returns the register name at addr, or the address in hex when unknown.
func (c *Catalog) NameOf(addr uint64, class aie.ModuleClass) string {
	if t, ok := c.table(class); ok {
		if r, ok := t.byAddr[addr]; ok {
			return r.Name
		}
	}
	return fmt.Sprintf("0x%X", addr)
}

// Len returns the number of registers catalogued for class.
func (c *Catalog) Len(class aie.ModuleClass) int {
	t, _ := c.table(class)
	return len(t.byName)
}

// Registers returns the catalogued registers of class sorted by address.
func (c *Catalog) Registers(class aie.ModuleClass) []Register {
	return c.filter(class, func(Register) bool { return true })
}

// TraceRegisters returns the trace unit registers of class.
func (c *Catalog) TraceRegisters(class aie.ModuleClass) []Register {
	return c.filter(class, func(r Register) bool { return strings.Contains(r.Name, "_trace_") })
}

// ProfileRegisters returns the performance counter registers of class.
func (c *Catalog) ProfileRegisters(class aie.ModuleClass) []Register {
	return c.filter(class, func(r Register) bool { return strings.Contains(r.Name, "_performance_") })
}

func (c *Catalog) filter(class aie.ModuleClass, keep func(Register) bool) []Register {
	t, _ := c.table(class)
	regs := make([]Register, 0, len(t.byAddr))
	for _, r := range t.byAddr {
		if keep(r) {
			regs = append(regs, r)
		}
	}
	sort.Slice(regs, func(i, j int) bool { return regs[i].Address < regs[j].Address })
	return regs
}

func without(regs []Register, names ...string) []Register {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	out := make([]Register, 0, len(regs))
	for _, r := range regs {
		if !drop[r.Name] {
			out = append(out, r)
		}
	}
	return out
}
