package device

import (
	"fmt"
	"sort"

	"aietrace/internal/aie"
)

// TileRange is the register space of one tile: [Start, End).
type TileRange struct {
	Loc   aie.TileLoc
	Class aie.ModuleClass
	Start uint64
	End   uint64
}

// Contains reports whether addr falls inside the tile's register space.
func (r TileRange) Contains(addr uint64) bool {
	return addr >= r.Start && addr < r.End
}

// AddressMap resolves absolute register addresses to the tile that owns
// them. Ranges may not overlap.
type AddressMap struct {
	ranges []TileRange // sorted by Start
}

// NewAddressMap builds the map of every tile in the array.
func NewAddressMap(topo aie.Topology) *AddressMap {
	m := &AddressMap{}
	size := uint64(1) << topo.RowShift
	for col := uint8(0); col < topo.NumCols; col++ {
		for row := uint8(0); row < topo.NumRows; row++ {
			t := topo.NewTile(col, row)
			start := topo.TileAddress(t.Loc)
			// tile ranges of a valid topology never overlap
			_ = m.Add(TileRange{Loc: t.Loc, Class: t.Class, Start: start, End: start + size})
		}
	}
	return m
}

// Add inserts a range, rejecting empty ranges and overlaps.
func (m *AddressMap) Add(r TileRange) error {
	if r.Start >= r.End {
		return fmt.Errorf("invalid range: start (0x%X) >= end (0x%X)", r.Start, r.End)
	}
	i := sort.Search(len(m.ranges), func(i int) bool { return m.ranges[i].Start >= r.Start })
	if i > 0 && overlaps(m.ranges[i-1], r) {
		return overlapErr(r, m.ranges[i-1])
	}
	if i < len(m.ranges) && overlaps(m.ranges[i], r) {
		return overlapErr(r, m.ranges[i])
	}
	m.ranges = append(m.ranges, TileRange{})
	copy(m.ranges[i+1:], m.ranges[i:])
	m.ranges[i] = r
	return nil
}

func overlaps(a, b TileRange) bool {
	return a.Start < b.End && b.Start < a.End
}

func overlapErr(r, existing TileRange) error {
	return fmt.Errorf("overlap detected: %s [0x%X-0x%X) conflicts with %s [0x%X-0x%X)",
		r.Loc, r.Start, r.End, existing.Loc, existing.Start, existing.End)
}

// Find returns the range holding addr.
func (m *AddressMap) Find(addr uint64) (TileRange, bool) {
	i := sort.Search(len(m.ranges), func(i int) bool { return m.ranges[i].End > addr })
	if i < len(m.ranges) && m.ranges[i].Contains(addr) {
		return m.ranges[i], true
	}
	return TileRange{}, false
}

// Decode splits addr into the owning tile and the tile relative offset.
func (m *AddressMap) Decode(addr uint64) (TileRange, uint64, bool) {
	r, ok := m.Find(addr)
	if !ok {
		return r, 0, false
	}
	return r, addr - r.Start, true
}

// Len returns the number of ranges.
func (m *AddressMap) Len() int { return len(m.ranges) }
