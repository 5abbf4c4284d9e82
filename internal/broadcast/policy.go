package broadcast

import (
	"fmt"

	"aietrace/internal/aie"
)

// Channel selects one of the two broadcast channels of a network.
type Channel uint8

const (
	// ChannelTrigger (id1) fans the trigger north up every column.
	ChannelTrigger Channel = iota
	// ChannelRelay (id2) carries the trigger east along the interface row.
	ChannelRelay
)

func (c Channel) String() string {
	if c == ChannelRelay {
		return "id2"
	}
	return "id1"
}

// Role is one switch that a network configures, together with the position
// facts its blocking depends on. Class ClassMemory denotes the memory module
// paired with a core module.
type Role struct {
	Class      aie.ModuleClass
	Switch     aie.Switch
	Channel    Channel
	IsTop      bool
	IsFirstCol bool
	IsLastCol  bool
}

func (r Role) String() string {
	return fmt.Sprintf("%v/%v/%v top=%t first=%t last=%t",
		r.Class, r.Switch, r.Channel, r.IsTop, r.IsFirstCol, r.IsLastCol)
}

// Module returns the hardware module that holds the role's switch.
func (r Role) Module() aie.ModuleKind {
	switch r.Class {
	case aie.ClassShim:
		return aie.ModPL
	case aie.ClassCore:
		return aie.ModCore
	}
	return aie.ModMem
}

// Carried reports whether a network configures this switch at all.
func (r Role) Carried() bool {
	switch r.Class {
	case aie.ClassShim:
		return r.Channel == ChannelRelay || r.Switch == aie.SwitchA
	case aie.ClassMemoryTile, aie.ClassCore, aie.ClassMemory:
		return r.Channel == ChannelTrigger && r.Switch == aie.SwitchA
	}
	return false
}

// DirectionsToBlock returns the directions a switch must block. Whatever it
// leaves open is used to relay the trigger further. Switches a network does
// not carry block everything.
func DirectionsToBlock(r Role) aie.Direction {
	if !r.Carried() {
		return aie.DirAll
	}
	top := aie.DirNone
	if r.IsTop {
		top = aie.DirNorth
	}
	switch r.Class {
	case aie.ClassShim:
		switch {
		case r.Channel == ChannelTrigger:
			return aie.DirSouth | aie.DirWest | aie.DirEast | top
		case r.Switch == aie.SwitchA:
			return aie.DirSouth | aie.DirWest | aie.DirNorth
		case r.IsLastCol:
			return aie.DirAll
		default:
			return aie.DirSouth | aie.DirWest | aie.DirNorth
		}
	case aie.ClassMemoryTile:
		return aie.DirSouth | aie.DirWest | aie.DirEast | top
	case aie.ClassCore:
		return aie.DirSouth | aie.DirWest | top
	}
	// a core tile's memory module only ever receives
	return aie.DirAll
}

// RelayDirections returns the directions a switch leaves open.
func RelayDirections(r Role) aie.Direction {
	return DirectionsToBlock(r).Complement()
}
