package brush

import "testing"

func TestZeroRadiusIsCenterOnly(t *testing.T) {
	for _, s := range []Shape{Circle, Square, Diamond, Cross} {
		offs := s.Offsets(0)
		if len(offs) != 1 || offs[0] != (Offset{0, 0}) {
			t.Errorf("%s radius 0: %v, want just the center", s, offs)
		}
	}
}

func TestFootprintSizes(t *testing.T) {
	cases := []struct {
		shape  Shape
		radius int
		want   int
	}{
		{Square, 1, 9},
		{Square, 2, 25},
		{Diamond, 1, 5},
		{Diamond, 2, 13},
		{Cross, 2, 9},
		{Circle, 1, 5},
	}
	for _, c := range cases {
		if got := len(c.shape.Offsets(c.radius)); got != c.want {
			t.Errorf("%s radius %d: %d offsets, want %d", c.shape, c.radius, got, c.want)
		}
	}
}

func TestOffsetsStayWithinRadius(t *testing.T) {
	for _, s := range []Shape{Circle, Square, Diamond, Cross} {
		for _, o := range s.Offsets(3) {
			if o.DX < -3 || o.DX > 3 || o.DY < -3 || o.DY > 3 {
				t.Errorf("%s offset %v escapes radius 3", s, o)
			}
		}
	}
}

func TestBrushShapeIDs(t *testing.T) {
	if len(IDs()) != 4 {
		t.Fatalf("expected 4 brush shape ids, got %d", len(IDs()))
	}
	for i, id := range IDs() {
		s := MustFromID(id)
		if int(s) != i || s.String() != id {
			t.Errorf("id %q does not round-trip through index %d", id, i)
		}
	}
}
