package core

// Grid stores a 2D field of cell states in row-major order. Every stored
// value must stay below the state count of the active rule; the kernel
// enforces that on write.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// At returns the state stored at (x, y). Coordinates must be in range.
func (g *Grid) At(x, y int) uint8 { return g.data[y*g.W+x] }

// Set stores a state at (x, y). Coordinates must be in range.
func (g *Grid) Set(x, y int, v uint8) { g.data[y*g.W+x] = v }

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, data: make([]uint8, len(g.data))}
	copy(c.data, g.data)
	return c
}
