package kernel

import (
	"fmt"

	"topolife/internal/neighborhood"
	"topolife/internal/rule"
	"topolife/internal/topology"
	"topolife/internal/vitality"
	pkgcore "topolife/pkg/core"
)

// Case identifies one combination of the conformance sweep.
type Case struct {
	Boundary     topology.Boundary
	Neighborhood neighborhood.Shape
	Mode         vitality.Mode
	States       uint32
}

// String renders the case with its public string ids.
func (c Case) String() string {
	return fmt.Sprintf("%s/%s/%s/C%d", c.Boundary, c.Neighborhood, c.Mode, c.States)
}

// Mismatch records the first cell where the two engines disagreed.
type Mismatch struct {
	Case     Case
	Index    int
	Serial   uint8
	Parallel uint8
}

// Report summarizes a conformance sweep.
type Report struct {
	Cases      int
	Cells      uint64
	Mismatches []Mismatch
}

// OK reports whether every case produced byte-identical generations.
func (r Report) OK() bool { return len(r.Mismatches) == 0 }

// conformanceStates lists the state counts the sweep exercises: the plain
// two-state path and a decay chain long enough to hit every vitality
// branch.
var conformanceStates = []uint32{2, 5}

// RunConformance steps the serial reference and the parallel kernel over
// every combination of the 9 boundaries, 5 neighborhoods and 6 vitality
// modes from the same seeded grid and byte-compares the results. The
// vitality parameters are deliberately non-trivial so fractional
// contributions and the half-up rounding actually fire.
func RunConformance(w, h int, seed int64) Report {
	report := Report{}
	serial := SerialEngine{}
	parallel := ParallelEngine{}

	seedCells := make([]uint8, w*h)
	serialNext := make([]uint8, w*h)
	parallelNext := make([]uint8, w*h)

	for _, states := range conformanceStates {
		rng := pkgcore.NewRNG(seed).Source()
		pkgcore.FillStates(rng, seedCells, uint8(states))

		for b := range topology.IDs() {
			for n := range neighborhood.IDs() {
				for m := range vitality.IDs() {
					c := Case{
						Boundary:     topology.Boundary(b),
						Neighborhood: neighborhood.Shape(n),
						Mode:         vitality.Mode(m),
						States:       states,
					}
					r := rule.Default()
					r.States = states
					r.Neighborhood = c.Neighborhood

					view := View{Boundary: c.Boundary, Vitality: sweepSpec(c.Mode)}

					serial.Step(seedCells, serialNext, w, h, r, &view)
					parallel.Step(seedCells, parallelNext, w, h, r, &view)

					report.Cases++
					report.Cells += uint64(w * h)
					for i := range serialNext {
						if serialNext[i] != parallelNext[i] {
							report.Mismatches = append(report.Mismatches, Mismatch{
								Case:     c,
								Index:    i,
								Serial:   serialNext[i],
								Parallel: parallelNext[i],
							})
							break
						}
					}
				}
			}
		}
	}
	return report
}

func sweepSpec(mode vitality.Mode) vitality.Spec {
	spec := vitality.DefaultSpec()
	spec.Mode = mode
	spec.Threshold = 0.45
	spec.GhostFactor = 0.7
	spec.SigmoidSharpness = 12
	spec.DecayPower = 1.5
	spec.CurveSamples = vitality.Sample([]vitality.Point{
		{X: 0, Y: 0.1},
		{X: 0.3, Y: 0.9},
		{X: 0.7, Y: 0.2},
		{X: 1, Y: 1},
	})
	return spec
}
