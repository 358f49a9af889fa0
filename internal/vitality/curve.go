package vitality

import (
	"math"
	"sort"
)

// SampleCount is the fixed resolution of a sampled vitality curve.
const SampleCount = 128

// Point is a sparse control point of a vitality curve, with X in [0, 1].
type Point struct {
	X, Y float64
}

const (
	sampleMin = -2
	sampleMax = 2
)

// Sample converts sparse control points into SampleCount evenly spaced
// samples over [0, 1] using Fritsch–Carlson monotone cubic Hermite
// interpolation, so the sampled curve never overshoots between control
// points. Each sample is clamped to [-2, 2]. Fewer than two points yield
// all zeros.
func Sample(points []Point) [SampleCount]float64 {
	var out [SampleCount]float64
	if len(points) < 2 {
		return out
	}

	pts := make([]Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })

	n := len(pts)
	seg := n - 1
	h := make([]float64, seg)
	delta := make([]float64, seg)
	for i := 0; i < seg; i++ {
		h[i] = pts[i+1].X - pts[i].X
		if h[i] > 0 {
			delta[i] = (pts[i+1].Y - pts[i].Y) / h[i]
		}
	}

	// Initial tangents: endpoint tangents copy the adjacent secant;
	// interior tangents are 0 across a local extremum, otherwise a
	// length-weighted harmonic mean of the adjacent secants.
	m := make([]float64, n)
	m[0] = delta[0]
	m[n-1] = delta[seg-1]
	for i := 1; i < n-1; i++ {
		if delta[i-1]*delta[i] <= 0 {
			m[i] = 0
			continue
		}
		w1 := 2*h[i] + h[i-1]
		w2 := h[i] + 2*h[i-1]
		m[i] = (w1 + w2) / (w1/delta[i-1] + w2/delta[i])
	}

	// Limit each tangent pair so alpha²+beta² ≤ 9, where alpha and beta
	// are the tangent-to-secant ratios of the segment.
	for i := 0; i < seg; i++ {
		if delta[i] == 0 {
			m[i] = 0
			m[i+1] = 0
			continue
		}
		alpha := m[i] / delta[i]
		beta := m[i+1] / delta[i]
		s := alpha*alpha + beta*beta
		if s > 9 {
			tau := 3 / math.Sqrt(s)
			m[i] = tau * alpha * delta[i]
			m[i+1] = tau * beta * delta[i]
		}
	}

	for k := 0; k < SampleCount; k++ {
		x := float64(k) / float64(SampleCount-1)
		out[k] = clampSample(evalHermite(pts, h, m, x))
	}
	return out
}

func evalHermite(pts []Point, h, m []float64, x float64) float64 {
	n := len(pts)
	if x <= pts[0].X {
		return pts[0].Y
	}
	if x >= pts[n-1].X {
		return pts[n-1].Y
	}
	i := sort.Search(n-1, func(j int) bool { return pts[j+1].X >= x }) // segment index
	if h[i] <= 0 {
		return pts[i].Y
	}
	t := (x - pts[i].X) / h[i]
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return h00*pts[i].Y + h10*h[i]*m[i] + h01*pts[i+1].Y + h11*h[i]*m[i+1]
}

func clampSample(v float64) float64 {
	if v < sampleMin {
		return sampleMin
	}
	if v > sampleMax {
		return sampleMax
	}
	return v
}
