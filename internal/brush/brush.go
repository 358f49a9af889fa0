// Package brush produces stamp offset lists for bulk cell painting.
package brush

import "topolife/internal/core"

// Shape identifies a brush footprint.
type Shape uint8

const (
	Circle Shape = iota
	Square
	Diamond
	Cross
)

var shapeIDs = []string{"circle", "square", "diamond", "cross"}

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

// Offset is a relative stamp coordinate around the brush center.
type Offset struct {
	DX, DY int
}

// Offsets returns the stamp footprint for the shape at the given radius.
// Radius 0 is always the single center cell.
func (s Shape) Offsets(radius int) []Offset {
	if radius < 0 {
		radius = 0
	}
	var out []Offset
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if s.contains(dx, dy, radius) {
				out = append(out, Offset{dx, dy})
			}
		}
	}
	return out
}

func (s Shape) contains(dx, dy, radius int) bool {
	switch s {
	case Circle:
		return dx*dx+dy*dy <= radius*radius
	case Square:
		return true
	case Diamond:
		return abs(dx)+abs(dy) <= radius
	case Cross:
		return dx == 0 || dy == 0
	default:
		return dx == 0 && dy == 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
