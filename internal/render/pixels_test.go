package render

import (
	"image/color"
	"testing"

	"topolife/internal/neighborhood"
	"topolife/internal/topology"
)

func TestFillVitalityRGBA(t *testing.T) {
	alive := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	dying := color.RGBA{R: 255, A: 255}
	dead := color.RGBA{A: 255}

	cells := []uint8{0, 1, 2, 4}
	buf := make([]byte, 4*len(cells))
	FillVitalityRGBA(buf, cells, 5, alive, dying, dead)

	if buf[0] != 0 || buf[3] != 255 {
		t.Errorf("dead cell pixel = %v", buf[0:4])
	}
	if buf[4] != 255 || buf[5] != 255 {
		t.Errorf("alive cell pixel = %v", buf[4:8])
	}
	// State 2 has higher vitality than state 4, so it sits closer to the
	// dying color.
	if buf[8] <= buf[12] {
		t.Errorf("state 2 red %d should exceed state 4 red %d", buf[8], buf[12])
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	cells := []uint8{0, 1}
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	FillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0", i, b)
		}
	}
}

func TestFillPaletteRGBAClampsIndex(t *testing.T) {
	palette := []color.RGBA{{A: 255}, {R: 255, A: 255}}
	cells := []uint8{0, 1, 7}
	buf := make([]byte, 12)
	FillPaletteRGBA(buf, cells, palette)
	if buf[8] != 255 {
		t.Errorf("out-of-palette state did not clamp to last entry: %v", buf[8:12])
	}
}

func TestCrowdLevels(t *testing.T) {
	const w, h = 4, 4
	cells := make([]uint8, w*h)
	cells[1*w+1] = 1
	cells[1*w+2] = 1

	levels := CrowdLevels(cells, w, h, neighborhood.Moore, topology.Plane)
	if levels[1*w+1] != 1 || levels[1*w+2] != 1 {
		t.Errorf("adjacent alive pair should see one neighbor each, got %d and %d",
			levels[1*w+1], levels[1*w+2])
	}
	if levels[0] != 1 {
		t.Errorf("corner sees %d neighbors, want 1", levels[0])
	}
	// Plane boundary: nothing leaks around the edges.
	if levels[3*w+3] != 0 {
		t.Errorf("far corner sees %d neighbors, want 0", levels[3*w+3])
	}
}
