package audio

import (
	"math"
	"testing"
)

func TestAggregateEmptyGrid(t *testing.T) {
	a := NewAggregator(8, Pure)
	out := a.Aggregate(make([]uint8, 16*8), 16, 8, 2)
	for i, v := range out {
		if v != 0 {
			t.Fatalf("bin %d = %v, want 0", i, v)
		}
	}
}

func TestAggregateColumnsIntoBins(t *testing.T) {
	const w, h = 8, 4
	cells := make([]uint8, w*h)
	// A fully alive column lands its whole height in one bin.
	for y := 0; y < h; y++ {
		cells[y*w+0] = 1
	}
	// A decaying half-vitality column in the right half.
	for y := 0; y < h; y++ {
		cells[y*w+6] = 3 // states=5 → vitality 0.5
	}

	a := NewAggregator(2, Organ)
	out := a.Aggregate(cells, w, h, 5)
	if math.Abs(out[0]-1) > 1e-12 {
		t.Errorf("bin 0 = %v, want 1", out[0])
	}
	if math.Abs(out[1]-0.5) > 1e-12 {
		t.Errorf("bin 1 = %v, want 0.5", out[1])
	}
}

func TestAggregateGain(t *testing.T) {
	const w, h = 4, 2
	cells := make([]uint8, w*h)
	cells[0] = 1
	a := NewAggregator(4, Bright)
	base := a.Aggregate(cells, w, h, 2)[0]
	a.Gain = 0.01
	scaled := a.Aggregate(cells, w, h, 2)[0]
	if math.Abs(scaled-base*0.01) > 1e-15 {
		t.Errorf("gain scaling: %v, want %v", scaled, base*0.01)
	}
}

func TestSpectrumModeIDs(t *testing.T) {
	if len(IDs()) != 6 {
		t.Fatalf("expected 6 spectrum mode ids, got %d", len(IDs()))
	}
	for i, id := range IDs() {
		m := MustFromID(id)
		if int(m) != i || m.String() != id {
			t.Errorf("id %q does not round-trip through index %d", id, i)
		}
	}
}
