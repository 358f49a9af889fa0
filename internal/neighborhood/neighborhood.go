// Package neighborhood enumerates the fixed offset sets a cell considers
// its neighbors. Hexagonal shapes use odd-r offset coordinates, so their
// offsets depend on row parity.
package neighborhood

import "topolife/internal/core"

// Shape identifies one of the five supported neighborhood shapes.
type Shape uint8

const (
	Moore Shape = iota
	VonNeumann
	ExtendedMoore
	Hexagonal
	ExtendedHexagonal
)

var shapeIDs = []string{"moore", "vonNeumann", "extendedMoore", "hexagonal", "extendedHexagonal"}

// IDs returns the stable string ids in index order.
func IDs() []string { return shapeIDs }

// String returns the stable string id for the shape.
func (s Shape) String() string { return core.MustID(shapeIDs, int(s)) }

// FromID resolves a string id leniently, reporting whether it is known.
func FromID(id string) (Shape, bool) {
	i, ok := core.LookupIndex(shapeIDs, id)
	return Shape(i), ok
}

// MustFromID resolves a string id, panicking on unknown ids.
func MustFromID(id string) Shape {
	return Shape(core.MustIndex(shapeIDs, id))
}

// Offset is a relative (dx, dy) step from a cell to one of its neighbors.
type Offset struct {
	DX, DY int
}

// MaxNeighbors returns the number of offsets the shape produces, used
// everywhere weighted neighbor totals are clamped.
func (s Shape) MaxNeighbors() int {
	switch s {
	case Moore:
		return 8
	case VonNeumann:
		return 4
	case ExtendedMoore:
		return 24
	case Hexagonal:
		return 6
	case ExtendedHexagonal:
		return 18
	default:
		return 8
	}
}

// Offsets returns the neighbor offsets for a cell on row y. Only the
// hexagonal shapes inspect y; the rectangular shapes are row-independent.
func (s Shape) Offsets(y int) []Offset {
	switch s {
	case Moore:
		return mooreOffsets
	case VonNeumann:
		return vonNeumannOffsets
	case ExtendedMoore:
		return extendedMooreOffsets
	case Hexagonal:
		if y&1 != 0 {
			return hexOddOffsets
		}
		return hexEvenOffsets
	case ExtendedHexagonal:
		if y&1 != 0 {
			return hexExtOddOffsets
		}
		return hexExtEvenOffsets
	default:
		return mooreOffsets
	}
}

var mooreOffsets = []Offset{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

var vonNeumannOffsets = []Offset{
	{0, -1},
	{-1, 0}, {1, 0},
	{0, 1},
}

var extendedMooreOffsets = buildExtendedMoore()

func buildExtendedMoore() []Offset {
	offsets := make([]Offset, 0, 24)
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			offsets = append(offsets, Offset{dx, dy})
		}
	}
	return offsets
}

// Odd-r hexagonal ring 1. Odd rows shift the diagonal neighbors one column
// to the right relative to even rows.
var hexEvenOffsets = []Offset{
	{-1, -1}, {0, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1},
}

var hexOddOffsets = []Offset{
	{0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{0, 1}, {1, 1},
}

// Odd-r hexagonal rings 1+2. The ring-2 cells on the dy=±1 rows flank the
// ring-1 diagonals of that row, so their columns follow the parity of the
// row one step away (y±1), not of y itself. The dy=±2 rows share y's parity
// and are identical for both cases.
var hexExtEvenOffsets = []Offset{
	{-1, -1}, {0, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1},
	{-1, -2}, {0, -2}, {1, -2},
	{-2, -1}, {1, -1},
	{-2, 0}, {2, 0},
	{-2, 1}, {1, 1},
	{-1, 2}, {0, 2}, {1, 2},
}

var hexExtOddOffsets = []Offset{
	{0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{0, 1}, {1, 1},
	{-1, -2}, {0, -2}, {1, -2},
	{-1, -1}, {2, -1},
	{-2, 0}, {2, 0},
	{-1, 1}, {2, 1},
	{-1, 2}, {0, 2}, {1, 2},
}
