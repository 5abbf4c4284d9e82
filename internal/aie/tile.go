package aie

import "fmt"

// TileLoc is the (column, row) position of a tile in the array.
type TileLoc struct {
	Col uint8
	Row uint8
}

// BadTileLoc is an invalid tile location value.
var BadTileLoc = TileLoc{Col: 0xFF, Row: 0xFF}

func (l TileLoc) String() string {
	return fmt.Sprintf("(%d,%d)", l.Col, l.Row)
}

// Less orders locations column-major, row-ascending.
func (l TileLoc) Less(o TileLoc) bool {
	if l.Col != o.Col {
		return l.Col < o.Col
	}
	return l.Row < o.Row
}

// Tile is a located tile together with its module class.
// Identity is the location; the class follows from the topology.
type Tile struct {
	Loc   TileLoc
	Class ModuleClass
}

// Topology describes the generation fixed layout of the tile array.
type Topology struct {
	Gen Generation
	// RowOffset is the first row holding AIE (core) tiles. Rows between the
	// interface row and RowOffset hold memory tiles.
	RowOffset uint8
	NumRows   uint8
	NumCols   uint8
	ColShift  uint8
	RowShift  uint8
}

var topologies = map[Generation]Topology{
	GenAIE1:   {Gen: GenAIE1, RowOffset: 1, NumRows: 9, NumCols: 50, ColShift: 23, RowShift: 18},
	GenAIE2:   {Gen: GenAIE2, RowOffset: 2, NumRows: 6, NumCols: 5, ColShift: 25, RowShift: 20},
	GenAIE2PS: {Gen: GenAIE2PS, RowOffset: 2, NumRows: 6, NumCols: 36, ColShift: 25, RowShift: 20},
	GenAIE4:   {Gen: GenAIE4, RowOffset: 2, NumRows: 6, NumCols: 8, ColShift: 25, RowShift: 20},
}

// TopologyFor returns the array layout for a generation.
func TopologyFor(gen Generation) (Topology, Err) {
	t, ok := topologies[gen]
	if !ok {
		return Topology{}, ErrUnknownGeneration
	}
	return t, OK
}

// ClassOf returns the module class of the tiles in a row.
func (t Topology) ClassOf(row uint8) ModuleClass {
	if row == 0 {
		return ClassShim
	}
	if row < t.RowOffset {
		return ClassMemoryTile
	}
	return ClassCore
}

// NewTile builds a tile at (col, row) with the class implied by the topology.
func (t Topology) NewTile(col, row uint8) Tile {
	return Tile{Loc: TileLoc{Col: col, Row: row}, Class: t.ClassOf(row)}
}

// TileAddress returns the base address of a tile's register space.
func (t Topology) TileAddress(loc TileLoc) uint64 {
	return uint64(loc.Col)<<t.ColShift | uint64(loc.Row)<<t.RowShift
}

// Contains reports whether loc lies inside the array.
func (t Topology) Contains(loc TileLoc) bool {
	return loc.Col < t.NumCols && loc.Row < t.NumRows
}
