package core

import "testing"

func TestNewByteGridClampsDimensions(t *testing.T) {
	cases := []struct {
		w, h         int
		wantW, wantH int
	}{
		{0, 0, 1, 1},
		{-3, 5, 1, 5},
		{8, -1, 8, 1},
		{4, 4, 4, 4},
	}
	for _, c := range cases {
		g := NewByteGrid(c.w, c.h)
		if g.W != c.wantW || g.H != c.wantH {
			t.Fatalf("NewByteGrid(%d,%d) = %dx%d, want %dx%d", c.w, c.h, g.W, g.H, c.wantW, c.wantH)
		}
		if g.Len() != c.wantW*c.wantH {
			t.Fatalf("NewByteGrid(%d,%d).Len() = %d, want %d", c.w, c.h, g.Len(), c.wantW*c.wantH)
		}
	}
}

func TestByteGridWrapsCoordinates(t *testing.T) {
	g := NewByteGrid(4, 3)

	g.Set(-1, -1, 7)
	if got := g.Get(2, 3); got != 7 {
		t.Fatalf("Set(-1,-1) did not land on (2,3): got %d", got)
	}
	if got := g.Get(-1, -1); got != 7 {
		t.Fatalf("Get(-1,-1) = %d, want 7", got)
	}

	g.Set(3, 4, 9)
	if got := g.Get(0, 0); got != 9 {
		t.Fatalf("Set(3,4) did not wrap to (0,0): got %d", got)
	}

	g.Set(1, 2, 5)
	if got := g.Get(1+3*10, 2+4*10); got != 5 {
		t.Fatalf("multi-revolution wrap failed: got %d", got)
	}
}

func TestByteGridSetTouchesOneCell(t *testing.T) {
	g := NewByteGrid(5, 5)
	g.Set(2, 2, 1)
	for i, v := range g.Cells() {
		want := uint8(0)
		if i == g.Index(2, 2) {
			want = 1
		}
		if v != want {
			t.Fatalf("cell %d = %d, want %d", i, v, want)
		}
	}
}

func TestByteGridClear(t *testing.T) {
	g := NewByteGrid(3, 3)
	for i := range g.Cells() {
		g.Cells()[i] = 1
	}
	g.Clear()
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %d after Clear", i, v)
		}
	}
}
