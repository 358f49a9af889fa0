package neighborhood

import "testing"

func offsetSet(offs []Offset) map[Offset]bool {
	set := make(map[Offset]bool, len(offs))
	for _, o := range offs {
		set[o] = true
	}
	return set
}

func TestShapeSizes(t *testing.T) {
	cases := []struct {
		shape Shape
		max   int
	}{
		{Moore, 8},
		{VonNeumann, 4},
		{ExtendedMoore, 24},
		{Hexagonal, 6},
		{ExtendedHexagonal, 18},
	}
	for _, c := range cases {
		if got := c.shape.MaxNeighbors(); got != c.max {
			t.Errorf("%s: MaxNeighbors=%d, want %d", c.shape, got, c.max)
		}
		for _, y := range []int{0, 1, 2, 3} {
			offs := c.shape.Offsets(y)
			if len(offs) != c.max {
				t.Errorf("%s y=%d: %d offsets, want %d", c.shape, y, len(offs), c.max)
			}
			set := offsetSet(offs)
			if len(set) != len(offs) {
				t.Errorf("%s y=%d: duplicate offsets", c.shape, y)
			}
			if set[Offset{0, 0}] {
				t.Errorf("%s y=%d: includes the center cell", c.shape, y)
			}
		}
	}
}

func TestMooreIsThreeByThreeMinusCenter(t *testing.T) {
	set := offsetSet(Moore.Offsets(0))
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			want := !(dx == 0 && dy == 0)
			if set[Offset{dx, dy}] != want {
				t.Errorf("moore offset (%d,%d): present=%v, want %v", dx, dy, set[Offset{dx, dy}], want)
			}
		}
	}
}

func TestExtendedMooreIsFiveByFiveMinusCenter(t *testing.T) {
	set := offsetSet(ExtendedMoore.Offsets(5))
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			want := !(dx == 0 && dy == 0)
			if set[Offset{dx, dy}] != want {
				t.Errorf("extendedMoore offset (%d,%d): present=%v, want %v", dx, dy, set[Offset{dx, dy}], want)
			}
		}
	}
}

func TestHexagonalRowParity(t *testing.T) {
	even := offsetSet(Hexagonal.Offsets(0))
	odd := offsetSet(Hexagonal.Offsets(1))

	wantEven := []Offset{{-1, -1}, {0, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}}
	wantOdd := []Offset{{0, -1}, {1, -1}, {-1, 0}, {1, 0}, {0, 1}, {1, 1}}
	for _, o := range wantEven {
		if !even[o] {
			t.Errorf("hexagonal even row missing %v", o)
		}
	}
	for _, o := range wantOdd {
		if !odd[o] {
			t.Errorf("hexagonal odd row missing %v", o)
		}
	}
	// Negative rows follow the same parity convention.
	if got := offsetSet(Hexagonal.Offsets(-1)); !got[Offset{1, 1}] {
		t.Errorf("hexagonal row -1 should use odd-row offsets")
	}
}

// The ring-2 offsets on the dy=±1 rows follow the parity of the row one
// step away, which is the easiest place for a regression to hide. These
// literal tables pin the exact expected sets.
func TestExtendedHexagonalOffsetTables(t *testing.T) {
	wantEven := []Offset{
		{-1, -1}, {0, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1},
		{-1, -2}, {0, -2}, {1, -2},
		{-2, -1}, {1, -1},
		{-2, 0}, {2, 0},
		{-2, 1}, {1, 1},
		{-1, 2}, {0, 2}, {1, 2},
	}
	wantOdd := []Offset{
		{0, -1}, {1, -1}, {-1, 0}, {1, 0}, {0, 1}, {1, 1},
		{-1, -2}, {0, -2}, {1, -2},
		{-1, -1}, {2, -1},
		{-2, 0}, {2, 0},
		{-1, 1}, {2, 1},
		{-1, 2}, {0, 2}, {1, 2},
	}

	for _, c := range []struct {
		y    int
		want []Offset
	}{{0, wantEven}, {1, wantOdd}} {
		got := ExtendedHexagonal.Offsets(c.y)
		if len(got) != len(c.want) {
			t.Fatalf("y=%d: %d offsets, want %d", c.y, len(got), len(c.want))
		}
		set := offsetSet(got)
		for _, o := range c.want {
			if !set[o] {
				t.Errorf("y=%d: missing offset %v", c.y, o)
			}
		}
	}
}

func TestShapeIDs(t *testing.T) {
	if len(IDs()) != 5 {
		t.Fatalf("expected 5 neighborhood ids, got %d", len(IDs()))
	}
	for i, id := range IDs() {
		s := MustFromID(id)
		if int(s) != i || s.String() != id {
			t.Errorf("id %q does not round-trip through index %d", id, i)
		}
	}
	defer func() {
		if recover() == nil {
			t.Errorf("MustFromID did not panic on an unknown id")
		}
	}()
	MustFromID("octagonal")
}
