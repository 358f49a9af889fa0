// Package topology resolves grid coordinates under nine boundary
// topologies, including the non-orientable ones (Möbius bands, Klein
// bottles, the projective plane) that mirror the opposite axis on an odd
// number of edge crossings.
package topology

import "topolife/internal/core"

// Boundary identifies one of the nine supported boundary topologies.
type Boundary uint8

const (
	Plane Boundary = iota
	CylinderX
	CylinderY
	Torus
	MobiusX
	MobiusY
	KleinX
	KleinY
	ProjectivePlane
)

var boundaryIDs = []string{
	"plane", "cylinderX", "cylinderY", "torus",
	"mobiusX", "mobiusY", "kleinX", "kleinY", "projectivePlane",
}

// IDs returns the stable string ids in index order.
func IDs() []string { return boundaryIDs }

// String returns the stable string id for the boundary.
func (b Boundary) String() string { return core.MustID(boundaryIDs, int(b)) }

// FromID resolves a string id leniently, reporting whether it is known.
func FromID(id string) (Boundary, bool) {
	i, ok := core.LookupIndex(boundaryIDs, id)
	return Boundary(i), ok
}

// MustFromID resolves a string id, panicking on unknown ids.
func MustFromID(id string) Boundary {
	return Boundary(core.MustIndex(boundaryIDs, id))
}

// traits decomposes a boundary into its per-axis wrap and flip behavior.
type traits struct {
	wrapX, wrapY bool
	flipX, flipY bool // mirror the opposite axis on an odd crossing count
}

var boundaryTraits = [...]traits{
	Plane:           {},
	CylinderX:       {wrapX: true},
	CylinderY:       {wrapY: true},
	Torus:           {wrapX: true, wrapY: true},
	MobiusX:         {wrapX: true, flipX: true},
	MobiusY:         {wrapY: true, flipY: true},
	KleinX:          {wrapX: true, wrapY: true, flipX: true},
	KleinY:          {wrapX: true, wrapY: true, flipY: true},
	ProjectivePlane: {wrapX: true, wrapY: true, flipX: true, flipY: true},
}

// Transform maps an arbitrary integer coordinate to an in-grid coordinate
// under the boundary, or reports false when the coordinate falls off a
// non-wrapping axis. Offsets arbitrarily far outside the grid are valid:
// wrapping counts every edge crossing, and topologies that flip on a wrap
// mirror the opposite axis when that axis's own crossing count is odd. Both
// mirrors apply after both axes have been normalized.
func Transform(x, y, w, h int, b Boundary) (int, int, bool) {
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	t := boundaryTraits[b]

	crossX := 0
	if x < 0 || x >= w {
		if !t.wrapX {
			return 0, 0, false
		}
		if x < 0 {
			crossX = (-x-1)/w + 1
		} else {
			crossX = x / w
		}
		x = ((x % w) + w) % w
	}

	crossY := 0
	if y < 0 || y >= h {
		if !t.wrapY {
			return 0, 0, false
		}
		if y < 0 {
			crossY = (-y-1)/h + 1
		} else {
			crossY = y / h
		}
		y = ((y % h) + h) % h
	}

	if t.flipX && crossX%2 == 1 {
		y = h - 1 - y
	}
	if t.flipY && crossY%2 == 1 {
		x = w - 1 - x
	}
	return x, y, true
}
