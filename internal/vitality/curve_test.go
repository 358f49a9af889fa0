package vitality

import (
	"math"
	"testing"
)

func TestSampleTooFewPoints(t *testing.T) {
	for _, pts := range [][]Point{nil, {}, {{X: 0.5, Y: 1}}} {
		out := Sample(pts)
		for i, v := range out {
			if v != 0 {
				t.Fatalf("%d points: sample %d = %v, want 0", len(pts), i, v)
			}
		}
	}
}

func TestSampleTwoPointsIsLinear(t *testing.T) {
	out := Sample([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	for k := 0; k < SampleCount; k++ {
		want := float64(k) / float64(SampleCount-1)
		if math.Abs(out[k]-want) > 1e-9 {
			t.Fatalf("sample %d = %v, want %v", k, out[k], want)
		}
	}
}

func TestSampleClampsToRange(t *testing.T) {
	out := Sample([]Point{{X: 0, Y: -10}, {X: 0.5, Y: 10}, {X: 1, Y: -10}})
	for k, v := range out {
		if v < -2 || v > 2 {
			t.Fatalf("sample %d = %v, outside [-2,2]", k, v)
		}
	}
}

func TestSampleMonotoneDataDoesNotOvershoot(t *testing.T) {
	// Steep step data is where naive cubic interpolation rings; the
	// Fritsch–Carlson tangent limiting must keep samples inside the data
	// range and nondecreasing.
	out := Sample([]Point{{X: 0, Y: 0}, {X: 0.45, Y: 0.02}, {X: 0.55, Y: 0.98}, {X: 1, Y: 1}})
	prev := out[0]
	for k, v := range out {
		if v < 0 || v > 1 {
			t.Fatalf("sample %d = %v, overshoots [0,1]", k, v)
		}
		if v < prev-1e-9 {
			t.Fatalf("sample %d = %v decreases from %v on monotone data", k, v, prev)
		}
		prev = v
	}
}

func TestSampleHitsControlPoints(t *testing.T) {
	pts := []Point{{X: 0, Y: 0.2}, {X: 1, Y: 0.9}}
	out := Sample(pts)
	if math.Abs(out[0]-0.2) > 1e-9 {
		t.Errorf("first sample %v, want 0.2", out[0])
	}
	if math.Abs(out[SampleCount-1]-0.9) > 1e-9 {
		t.Errorf("last sample %v, want 0.9", out[SampleCount-1])
	}
}

func TestSampleUnsortedInput(t *testing.T) {
	sorted := Sample([]Point{{X: 0, Y: 0}, {X: 0.5, Y: 1}, {X: 1, Y: 0.5}})
	shuffled := Sample([]Point{{X: 1, Y: 0.5}, {X: 0, Y: 0}, {X: 0.5, Y: 1}})
	if sorted != shuffled {
		t.Errorf("sampling is sensitive to control point order")
	}
}
