// Package kernel advances a grid of cell states by one generation. The
// transition formula is implemented twice, as a serial reference and as
// a band-parallel kernel, and the two must agree byte-for-byte.
// Agreement is enforced by the conformance harness, never by sharing
// the per-cell loop between them.
package kernel

import (
	"math"

	"topolife/internal/rule"
	"topolife/internal/topology"
	"topolife/internal/vitality"
)

// View bundles the step settings that are not part of the rule proper:
// the boundary topology and the vitality weighting. It is replaced
// wholesale when settings change and stays immutable during a step.
type View struct {
	Boundary topology.Boundary
	Vitality vitality.Spec
}

// DefaultView returns a torus with unweighted (none-mode) counting.
func DefaultView() View {
	return View{Boundary: topology.Torus, Vitality: vitality.DefaultSpec()}
}

// Engine advances cur into nxt by one generation. cur is read-only for the
// duration of the call and nxt is exclusively owned by it; the two must
// not alias.
type Engine interface {
	Name() string
	Step(cur, nxt []uint8, w, h int, r rule.Rule, view *View)
}

// SerialEngine is the single-goroutine reference implementation. Cell
// order is raster order, though the formula is order-independent by
// construction.
type SerialEngine struct{}

// Name returns the engine identifier.
func (SerialEngine) Name() string { return "serial" }

// Step computes the next generation cell by cell.
func (SerialEngine) Step(cur, nxt []uint8, w, h int, r rule.Rule, view *View) {
	r = r.Masked()
	maxN := float64(r.Neighborhood.MaxNeighbors())
	for y := 0; y < h; y++ {
		offsets := r.Neighborhood.Offsets(y)
		for x := 0; x < w; x++ {
			sum := 0.0
			for _, off := range offsets {
				nx, ny, ok := topology.Transform(x+off.DX, y+off.DY, w, h, view.Boundary)
				if !ok {
					// Off a non-wrapping edge: a dead neighbor, not an error.
					continue
				}
				sum += vitality.Contribution(uint32(cur[ny*w+nx]), &view.Vitality, r.States)
			}
			if sum < 0 {
				sum = 0
			} else if sum > maxN {
				sum = maxN
			}
			// Round half-up. Half-even would disagree with the parallel
			// kernel's integer conversion on exact .5 totals.
			n := uint32(math.Trunc(sum + 0.5))

			s := uint32(cur[y*w+x])
			var out uint32
			if r.States == 2 {
				if s == 0 {
					if r.Birth&(1<<n) != 0 {
						out = 1
					}
				} else if r.Survive&(1<<n) != 0 {
					out = 1
				}
			} else {
				switch {
				case s == 0:
					if r.Birth&(1<<n) != 0 {
						out = 1
					}
				case s == 1:
					if r.Survive&(1<<n) != 0 {
						out = 1
					} else {
						out = 2
					}
				default:
					out = s + 1
					if out >= r.States {
						out = 0
					}
				}
			}
			nxt[y*w+x] = uint8(out)
		}
	}
}
