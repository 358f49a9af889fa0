package kernel

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"topolife/internal/rule"
	"topolife/internal/topology"
	"topolife/internal/vitality"
)

// ParallelEngine splits the grid into row bands and runs one kernel
// goroutine per band. Cells have no intra-generation data dependency, so
// bands need no synchronization beyond joining at the end of the step.
type ParallelEngine struct {
	// Workers caps the number of bands; zero means runtime.NumCPU().
	Workers int
}

// Name returns the engine identifier.
func (e ParallelEngine) Name() string { return "parallel" }

// Step computes the next generation across worker goroutines. The step
// either completes entirely or not at all; there are no partial
// generations to observe because ownership of nxt only transfers after
// every band has joined.
func (e ParallelEngine) Step(cur, nxt []uint8, w, h int, r rule.Rule, view *View) {
	workers := e.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > h {
		workers = h
	}
	if workers < 1 {
		workers = 1
	}
	masked := r.Masked()

	var g errgroup.Group
	rows := h / workers
	extra := h % workers
	start := 0
	for i := 0; i < workers; i++ {
		band := rows
		if i < extra {
			band++
		}
		y0, y1 := start, start+band
		start = y1
		g.Go(func() error {
			stepBand(cur, nxt, w, h, y0, y1, masked, view)
			return nil
		})
	}
	_ = g.Wait() // band kernels are total, they cannot fail
}

// stepBand is the per-cell kernel for rows [y0, y1). It mirrors the
// transition formula independently of the serial reference; keep any
// change here in lockstep with the conformance harness.
func stepBand(cur, nxt []uint8, w, h, y0, y1 int, r rule.Rule, view *View) {
	maxTotal := float64(r.Neighborhood.MaxNeighbors())
	for y := y0; y < y1; y++ {
		base := y * w
		offs := r.Neighborhood.Offsets(y)
		for x := 0; x < w; x++ {
			total := 0.0
			for _, o := range offs {
				cx, cy, inside := topology.Transform(x+o.DX, y+o.DY, w, h, view.Boundary)
				if !inside {
					continue
				}
				total += vitality.Contribution(uint32(cur[cy*w+cx]), &view.Vitality, r.States)
			}
			if total < 0 {
				total = 0
			} else if total > maxTotal {
				total = maxTotal
			}
			// Conversion truncates toward zero, so +0.5 rounds half-up.
			count := uint32(total + 0.5)

			s := uint32(cur[base+x])
			next := uint32(0)
			switch {
			case s >= 2:
				next = s + 1
				if next >= r.States {
					next = 0
				}
			case s == 1:
				if r.Survive&(1<<count) != 0 {
					next = 1
				} else if r.States > 2 {
					next = 2
				}
			default:
				if r.Birth&(1<<count) != 0 {
					next = 1
				}
			}
			nxt[base+x] = uint8(next)
		}
	}
}
