package aie

import (
	"fmt"
	"strconv"
	"strings"
)

// Hardware Generations

// Generation identifies an AI Engine hardware revision. Values follow the
// driver's device generation numbering so ordering comparisons are meaningful.
type Generation uint8

const (
	GenUnknown Generation = 0
	GenAIE1    Generation = 1
	GenAIE2    Generation = 2
	GenAIE2PS  Generation = 5
	GenAIE4    Generation = 6
)

// Generations lists every supported generation in ascending order.
var Generations = []Generation{GenAIE1, GenAIE2, GenAIE2PS, GenAIE4}

func (g Generation) String() string {
	switch g {
	case GenAIE1:
		return "aie"
	case GenAIE2:
		return "aie2"
	case GenAIE2PS:
		return "aie2ps"
	case GenAIE4:
		return "aie4"
	default:
		return fmt.Sprintf("gen%d", uint8(g))
	}
}

// IsValid returns true for one of the supported generations.
func (g Generation) IsValid() bool {
	for _, known := range Generations {
		if g == known {
			return true
		}
	}
	return false
}

// ParseGeneration accepts a generation name ("aie2") or its driver number ("2").
func ParseGeneration(s string) (Generation, Err) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, g := range Generations {
		if s == g.String() {
			return g, OK
		}
	}
	if n, err := strconv.ParseUint(s, 0, 8); err == nil && Generation(n).IsValid() {
		return Generation(n), OK
	}
	return GenUnknown, ErrUnknownGeneration
}

// Module Classes

// ModuleClass is the logical kind of a tile module used for event and register lookups.
type ModuleClass uint8

const (
	ClassCore ModuleClass = iota
	ClassMemory
	ClassShim
	ClassMemoryTile
)

// NumModuleClasses is the number of module classes with their own tables.
const NumModuleClasses = 4

// ModuleClasses lists every module class in table order.
var ModuleClasses = []ModuleClass{ClassCore, ClassMemory, ClassShim, ClassMemoryTile}

func (c ModuleClass) String() string {
	switch c {
	case ClassCore:
		return "aie"
	case ClassMemory:
		return "aie_memory"
	case ClassShim:
		return "interface_tile"
	case ClassMemoryTile:
		return "memory_tile"
	default:
		return "unknown"
	}
}

// ParseModuleClass accepts the settings names of a module class plus a few short forms.
func ParseModuleClass(s string) (ModuleClass, Err) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "aie", "core", "aie_tile":
		return ClassCore, OK
	case "aie_memory", "memory", "mem", "dma":
		return ClassMemory, OK
	case "interface_tile", "interface", "shim":
		return ClassShim, OK
	case "memory_tile", "mem_tile", "memtile":
		return ClassMemoryTile, OK
	}
	return ClassCore, ErrUnknownModule
}

// ModuleKind selects a hardware module within a tile when issuing device calls.
type ModuleKind uint8

const (
	ModCore ModuleKind = iota
	ModMem
	ModPL
)

func (m ModuleKind) String() string {
	switch m {
	case ModCore:
		return "CORE"
	case ModMem:
		return "MEM"
	case ModPL:
		return "PL"
	default:
		return "?"
	}
}

// Switch selects one of the two broadcast switches in a module.
type Switch uint8

const (
	SwitchA Switch = iota
	SwitchB
)

func (s Switch) String() string {
	if s == SwitchB {
		return "B"
	}
	return "A"
}

// Directions

// Direction is a set of broadcast propagation directions.
type Direction uint8

const (
	DirSouth Direction = 1 << iota
	DirWest
	DirNorth
	DirEast

	DirNone Direction = 0
	DirAll  Direction = DirSouth | DirWest | DirNorth | DirEast
)

// Has reports whether every direction in d is present in m.
func (m Direction) Has(d Direction) bool { return m&d == d }

// Complement returns the directions not in m.
func (m Direction) Complement() Direction { return DirAll &^ m }

func (m Direction) String() string {
	if m == DirNone {
		return "-"
	}
	var sb strings.Builder
	for _, d := range []struct {
		bit  Direction
		name byte
	}{{DirSouth, 'S'}, {DirWest, 'W'}, {DirNorth, 'N'}, {DirEast, 'E'}} {
		if m&d.bit != 0 {
			sb.WriteByte(d.name)
		}
	}
	return sb.String()
}

// IO and DMA

// IOKind describes how an interface tile connection moves data.
type IOKind uint8

const (
	// IOPLIO is a passive stream connection into programmable logic.
	IOPLIO IOKind = iota
	// IOGMIO is a DMA driven connection to global memory.
	IOGMIO
)

func (k IOKind) String() string {
	if k == IOGMIO {
		return "GMIO"
	}
	return "PLIO"
}

// DMADirection is a DMA transfer direction.
type DMADirection uint8

const (
	DMAS2MM DMADirection = iota
	DMAMM2S
)

func (d DMADirection) String() string {
	if d == DMAMM2S {
		return "MM2S"
	}
	return "S2MM"
}

// Broadcast channels

// NumBroadcastChannels is the size of the device-wide broadcast channel pool.
const NumBroadcastChannels = 16

// IsValidBroadcastID returns true if id addresses a broadcast channel.
func IsValidBroadcastID(id uint8) bool { return id < NumBroadcastChannels }

// General Library Return and Error Codes

// Err represents library error return type
type Err uint32

const (
	OK                    Err = 0
	ErrFail               Err = 1
	ErrInvalidParamVal    Err = 2
	ErrEventRange         Err = 3
	ErrUnknownGeneration  Err = 4
	ErrUnknownModule      Err = 5
	ErrDeviceWrite        Err = 6
	ErrBadColumnRange     Err = 7
	ErrSettingsParse      Err = 8
	ErrNoBroadcastChannel Err = 9
	ErrLast               Err = 10
)

// ErrSeverity used to indicate the severity of an error or logger verbosity
type ErrSeverity uint32

const (
	ErrSevNone  ErrSeverity = 0
	ErrSevError ErrSeverity = 1
	ErrSevWarn  ErrSeverity = 2
	ErrSevInfo  ErrSeverity = 3
)
