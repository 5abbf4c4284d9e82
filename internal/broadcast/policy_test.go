package broadcast

import (
	"testing"

	"aietrace/internal/aie"
)

func allRoles() []Role {
	var roles []Role
	for _, class := range aie.ModuleClasses {
		for _, sw := range []aie.Switch{aie.SwitchA, aie.SwitchB} {
			for _, ch := range []Channel{ChannelTrigger, ChannelRelay} {
				for _, flags := range []uint8{0, 1, 2, 3, 4, 5, 6, 7} {
					roles = append(roles, Role{
						Class:      class,
						Switch:     sw,
						Channel:    ch,
						IsTop:      flags&1 != 0,
						IsFirstCol: flags&2 != 0,
						IsLastCol:  flags&4 != 0,
					})
				}
			}
		}
	}
	return roles
}

func TestDirectionsToBlock(t *testing.T) {
	const (
		s = aie.DirSouth
		w = aie.DirWest
		n = aie.DirNorth
		e = aie.DirEast
	)
	tests := []struct {
		role Role
		want aie.Direction
	}{
		{Role{Class: aie.ClassShim, Switch: aie.SwitchA, Channel: ChannelTrigger}, s | w | e},
		{Role{Class: aie.ClassShim, Switch: aie.SwitchA, Channel: ChannelTrigger, IsTop: true}, s | w | e | n},
		{Role{Class: aie.ClassShim, Switch: aie.SwitchA, Channel: ChannelRelay, IsLastCol: true}, s | w | n},
		{Role{Class: aie.ClassShim, Switch: aie.SwitchB, Channel: ChannelRelay}, s | w | n},
		{Role{Class: aie.ClassShim, Switch: aie.SwitchB, Channel: ChannelRelay, IsLastCol: true}, s | w | n | e},
		{Role{Class: aie.ClassMemoryTile, Switch: aie.SwitchA, Channel: ChannelTrigger}, s | w | e},
		{Role{Class: aie.ClassMemoryTile, Switch: aie.SwitchA, Channel: ChannelTrigger, IsTop: true}, s | w | e | n},
		{Role{Class: aie.ClassCore, Switch: aie.SwitchA, Channel: ChannelTrigger}, s | w},
		{Role{Class: aie.ClassCore, Switch: aie.SwitchA, Channel: ChannelTrigger, IsTop: true}, s | w | n},
		{Role{Class: aie.ClassMemory, Switch: aie.SwitchA, Channel: ChannelTrigger}, aie.DirAll},
		{Role{Class: aie.ClassMemory, Switch: aie.SwitchA, Channel: ChannelTrigger, IsTop: true, IsLastCol: true}, aie.DirAll},
	}
	for _, tt := range tests {
		if got := DirectionsToBlock(tt.role); got != tt.want {
			t.Errorf("DirectionsToBlock(%v) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

// neededDirections is where a switch must forward the trigger for every
// traced tile to see it: north up to the top row, east from a core module to
// its memory module, east from switch A to switch B of an interface tile, and
// east from switch B to the next column except at the end of the range.
func neededDirections(r Role) aie.Direction {
	if !r.Carried() {
		return aie.DirNone
	}
	north := aie.DirNorth
	if r.IsTop {
		north = aie.DirNone
	}
	switch r.Class {
	case aie.ClassShim:
		switch {
		case r.Channel == ChannelTrigger:
			return north
		case r.Switch == aie.SwitchA:
			return aie.DirEast
		case r.IsLastCol:
			return aie.DirNone
		default:
			return aie.DirEast
		}
	case aie.ClassMemoryTile:
		return north
	case aie.ClassCore:
		return aie.DirEast | north
	}
	return aie.DirNone
}

func TestDirectionPartition(t *testing.T) {
	for _, r := range allRoles() {
		blocked := DirectionsToBlock(r)
		used := RelayDirections(r)
		if blocked&used != 0 || blocked|used != aie.DirAll {
			t.Errorf("%v: blocked %v and used %v do not partition", r, blocked, used)
		}
		if want := neededDirections(r); used != want {
			t.Errorf("%v: relays %v, needs %v", r, used, want)
		}
	}
}

func TestRoleModule(t *testing.T) {
	tests := []struct {
		class aie.ModuleClass
		want  aie.ModuleKind
	}{
		{aie.ClassShim, aie.ModPL},
		{aie.ClassMemoryTile, aie.ModMem},
		{aie.ClassCore, aie.ModCore},
		{aie.ClassMemory, aie.ModMem},
	}
	for _, tt := range tests {
		if got := (Role{Class: tt.class}).Module(); got != tt.want {
			t.Errorf("%v: Module() = %v, want %v", tt.class, got, tt.want)
		}
	}
}
