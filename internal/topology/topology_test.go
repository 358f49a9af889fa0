package topology

import "testing"

func TestTorusPeriodicity(t *testing.T) {
	const w, h = 8, 6
	for _, k := range []int{-100, -3, -1, 0, 1, 2, 5, 100} {
		for y := -2; y < h+2; y++ {
			for x := 0; x < w; x++ {
				bx, by, bok := Transform(x, y, w, h, Torus)
				sx, sy, sok := Transform(x+k*w, y, w, h, Torus)
				if bok != sok || bx != sx || by != sy {
					t.Fatalf("torus (%d,%d) shifted by %d widths: got (%d,%d,%v), want (%d,%d,%v)",
						x, y, k, sx, sy, sok, bx, by, bok)
				}
			}
		}
	}
}

func TestMobiusXFlipParity(t *testing.T) {
	const w, h = 8, 6
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			for k := -4; k <= 4; k++ {
				gx, gy, ok := Transform(x+k*w, y, w, h, MobiusX)
				if !ok {
					t.Fatalf("mobiusX rejected x=%d", x+k*w)
				}
				if gx != x {
					t.Fatalf("mobiusX x=%d+%d*w: got x'=%d, want %d", x, k, gx, x)
				}
				wantY := y
				if k%2 != 0 {
					wantY = h - 1 - y
				}
				if gy != wantY {
					t.Fatalf("mobiusX (%d,%d) crossings=%d: got y'=%d, want %d", x, y, k, gy, wantY)
				}
			}
		}
	}
}

func TestPlaneRejectsOutOfRange(t *testing.T) {
	const w, h = 8, 6
	cases := [][2]int{{-1, 0}, {w, 0}, {0, -1}, {0, h}, {-100, 3}, {3, 100}, {w, h}}
	for _, c := range cases {
		if _, _, ok := Transform(c[0], c[1], w, h, Plane); ok {
			t.Errorf("plane accepted out-of-range (%d,%d)", c[0], c[1])
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx, gy, ok := Transform(x, y, w, h, Plane)
			if !ok || gx != x || gy != y {
				t.Fatalf("plane altered in-range (%d,%d): got (%d,%d,%v)", x, y, gx, gy, ok)
			}
		}
	}
}

func TestCylinderAxes(t *testing.T) {
	const w, h = 8, 6
	if _, _, ok := Transform(3, -1, w, h, CylinderX); ok {
		t.Errorf("cylinderX wrapped the y axis")
	}
	if gx, gy, ok := Transform(-1, 3, w, h, CylinderX); !ok || gx != w-1 || gy != 3 {
		t.Errorf("cylinderX (-1,3): got (%d,%d,%v), want (%d,3,true)", gx, gy, ok, w-1)
	}
	if _, _, ok := Transform(-1, 3, w, h, CylinderY); ok {
		t.Errorf("cylinderY wrapped the x axis")
	}
	if gx, gy, ok := Transform(3, h+1, w, h, CylinderY); !ok || gx != 3 || gy != 1 {
		t.Errorf("cylinderY (3,%d): got (%d,%d,%v), want (3,1,true)", h+1, gx, gy, ok)
	}
}

func TestKleinFlips(t *testing.T) {
	const w, h = 8, 6
	// kleinX: one x crossing mirrors y, y crossings do not mirror x.
	if gx, gy, ok := Transform(w+2, 1, w, h, KleinX); !ok || gx != 2 || gy != h-1-1 {
		t.Errorf("kleinX x-wrap: got (%d,%d,%v), want (2,%d,true)", gx, gy, ok, h-2)
	}
	if gx, gy, ok := Transform(2, h+1, w, h, KleinX); !ok || gx != 2 || gy != 1 {
		t.Errorf("kleinX y-wrap: got (%d,%d,%v), want (2,1,true)", gx, gy, ok)
	}
	// kleinY is the mirror-image case.
	if gx, gy, ok := Transform(2, h+1, w, h, KleinY); !ok || gx != w-1-2 || gy != 1 {
		t.Errorf("kleinY y-wrap: got (%d,%d,%v), want (%d,1,true)", gx, gy, ok, w-3)
	}
	if gx, gy, ok := Transform(w+2, 1, w, h, KleinY); !ok || gx != 2 || gy != 1 {
		t.Errorf("kleinY x-wrap: got (%d,%d,%v), want (2,1,true)", gx, gy, ok)
	}
}

func TestProjectivePlaneDoubleFlip(t *testing.T) {
	const w, h = 8, 6
	// One crossing on each axis mirrors both opposite axes, each driven by
	// its own crossing count.
	gx, gy, ok := Transform(2+w, 1+h, w, h, ProjectivePlane)
	if !ok || gx != w-1-2 || gy != h-1-1 {
		t.Fatalf("projectivePlane (+w,+h): got (%d,%d,%v), want (%d,%d,true)", gx, gy, ok, w-3, h-2)
	}
	// Two crossings on x cancel the y mirror.
	gx, gy, ok = Transform(2+2*w, 1, w, h, ProjectivePlane)
	if !ok || gx != 2 || gy != 1 {
		t.Fatalf("projectivePlane (+2w,0): got (%d,%d,%v), want (2,1,true)", gx, gy, ok)
	}
}

func TestFarNegativeOffsets(t *testing.T) {
	const w, h = 5, 7
	gx, gy, ok := Transform(-1-3*w, 2, w, h, Torus)
	if !ok || gx != w-1 || gy != 2 {
		t.Fatalf("torus far negative: got (%d,%d,%v), want (%d,2,true)", gx, gy, ok, w-1)
	}
	// -1-3w crosses the left edge 4 times; even-ness decides the mirror.
	gx, gy, ok = Transform(-1-3*w, 2, w, h, MobiusX)
	if !ok || gx != w-1 || gy != 2 {
		t.Fatalf("mobiusX 4 crossings: got (%d,%d,%v), want (%d,2,true)", gx, gy, ok, w-1)
	}
	gx, gy, ok = Transform(-1-2*w, 2, w, h, MobiusX)
	if !ok || gx != w-1 || gy != h-1-2 {
		t.Fatalf("mobiusX 3 crossings: got (%d,%d,%v), want (%d,%d,true)", gx, gy, ok, w-1, h-3)
	}
}

func TestBoundaryIDs(t *testing.T) {
	if len(IDs()) != 9 {
		t.Fatalf("expected 9 boundary ids, got %d", len(IDs()))
	}
	for i, id := range IDs() {
		b := MustFromID(id)
		if int(b) != i || b.String() != id {
			t.Errorf("id %q does not round-trip through index %d", id, i)
		}
	}
	if _, ok := FromID("doughnut"); ok {
		t.Errorf("FromID accepted an unknown id")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("MustFromID did not panic on an unknown id")
		}
	}()
	MustFromID("doughnut")
}
