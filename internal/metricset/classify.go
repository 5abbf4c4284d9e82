package metricset

import (
	"strings"

	"aietrace/internal/aie"
)

// IsInputSet reports whether a metric set traces data flowing into the array
// side of a tile. Memory tiles name their input side after S2MM, interface
// tiles after MM2S.
func IsInputSet(class aie.ModuleClass, name string) bool {
	if strings.Contains(name, "input") {
		return true
	}
	if class == aie.ClassMemoryTile {
		return strings.Contains(name, "s2mm")
	}
	return strings.Contains(name, "mm2s")
}

// IsDMASet reports whether a metric set observes DMA activity.
func IsDMASet(name string) bool {
	return strings.Contains(name, "dma") || strings.Contains(name, "s2mm") || strings.Contains(name, "mm2s")
}

// Direction returns the DMA direction a metric set observes on class.
func Direction(class aie.ModuleClass, name string) aie.DMADirection {
	input := IsInputSet(class, name)
	if class == aie.ClassMemoryTile {
		if input {
			return aie.DMAS2MM
		}
		return aie.DMAMM2S
	}
	if input {
		return aie.DMAMM2S
	}
	return aie.DMAS2MM
}
