package render

import (
	"topolife/internal/neighborhood"
	"topolife/internal/topology"
)

// CrowdLevels counts the alive neighbors of every cell for crowding-based
// shading. It reuses the neighborhood enumerator and boundary transform
// read-only; it is not a step and writes nothing back to the grid.
func CrowdLevels(cells []uint8, w, h int, shape neighborhood.Shape, b topology.Boundary) []uint8 {
	levels := make([]uint8, len(cells))
	for y := 0; y < h; y++ {
		offsets := shape.Offsets(y)
		for x := 0; x < w; x++ {
			n := uint8(0)
			for _, off := range offsets {
				nx, ny, ok := topology.Transform(x+off.DX, y+off.DY, w, h, b)
				if ok && cells[ny*w+nx] == 1 {
					n++
				}
			}
			levels[y*w+x] = n
		}
	}
	return levels
}

// ApplyCrowdShade darkens each pixel in buf toward black as its crowding
// level approaches the neighborhood maximum.
func ApplyCrowdShade(buf []byte, levels []uint8, max int) {
	if max <= 0 {
		return
	}
	for i, n := range levels {
		// Keep at least half the brightness so shading never hides a cell.
		factor := 1 - float64(n)/float64(2*max)
		base := i * 4
		buf[base+0] = uint8(float64(buf[base+0]) * factor)
		buf[base+1] = uint8(float64(buf[base+1]) * factor)
		buf[base+2] = uint8(float64(buf[base+2]) * factor)
	}
}
