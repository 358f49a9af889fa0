package core

import "testing"

func TestGridIndexing(t *testing.T) {
	g := NewGrid(4, 3)
	if g.Index(1, 2) != 9 {
		t.Fatalf("Index(1,2)=%d, want 9", g.Index(1, 2))
	}
	g.Set(1, 2, 7)
	if g.At(1, 2) != 7 || g.Cells()[9] != 7 {
		t.Fatalf("Set/At disagree with the backing slice")
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, 5)
	c := g.Clone()
	c.Set(0, 0, 9)
	if g.At(0, 0) != 5 {
		t.Errorf("mutating the clone changed the original")
	}
	g.Clear()
	if c.At(0, 0) != 9 {
		t.Errorf("clearing the original changed the clone")
	}
}

func TestGridClampsDegenerateSizes(t *testing.T) {
	g := NewGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Errorf("degenerate grid: %dx%d with %d cells", g.W, g.H, len(g.Cells()))
	}
}
