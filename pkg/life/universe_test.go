package life

import (
	"bytes"
	"strings"
	"testing"
)

func TestCellsLengthInvariant(t *testing.T) {
	dims := []struct{ w, h int }{{1, 1}, {5, 3}, {64, 64}, {0, 10}, {-2, -2}}
	for _, d := range dims {
		u := New(d.w, d.h)
		want := u.Width() * u.Height()
		if len(u.Cells()) != want {
			t.Fatalf("New(%d,%d): len(Cells()) = %d, want %d", d.w, d.h, len(u.Cells()), want)
		}
		u.Tick()
		if len(u.Cells()) != want {
			t.Fatalf("after Tick: len(Cells()) = %d, want %d", len(u.Cells()), want)
		}
		u.Resize(7, 9)
		if len(u.Cells()) != 7*9 {
			t.Fatalf("after Resize(7,9): len(Cells()) = %d, want 63", len(u.Cells()))
		}
	}
}

func TestDefaultSeedPattern(t *testing.T) {
	u := New(8, 8)
	for i, c := range u.Cells() {
		want := Dead
		if i%2 == 0 || i%7 == 0 {
			want = Alive
		}
		if c != want {
			t.Fatalf("default seed cell %d = %d, want %d", i, c, want)
		}
	}
}

func TestToggleCellFlipsExactlyOne(t *testing.T) {
	u := New(6, 6)
	before := append([]uint8(nil), u.Cells()...)

	u.ToggleCell(2, 3)

	idx := 2*u.Width() + 3
	for i, c := range u.Cells() {
		if i == idx {
			if c == before[i] {
				t.Fatalf("cell (2,3) did not flip")
			}
			continue
		}
		if c != before[i] {
			t.Fatalf("cell %d changed from %d to %d", i, before[i], c)
		}
	}

	// flipping back restores the board byte for byte
	u.ToggleCell(2, 3)
	if !bytes.Equal(u.Cells(), before) {
		t.Fatalf("double toggle did not restore the board")
	}
}

func TestToggleCellWrapsCoordinates(t *testing.T) {
	u := New(4, 4)
	u.Clear()
	u.ToggleCell(-1, -1)
	if u.Get(3, 3) != Alive {
		t.Fatalf("ToggleCell(-1,-1) did not wrap to (3,3)")
	}
	u.ToggleCell(4, 4)
	if u.Get(0, 0) != Alive {
		t.Fatalf("ToggleCell(4,4) did not wrap to (0,0)")
	}
}

func TestToggleCellDoesNotAdvanceGeneration(t *testing.T) {
	u := New(4, 4)
	u.Tick()
	u.Tick()
	u.ToggleCell(1, 1)
	if u.Generation() != 2 {
		t.Fatalf("generation = %d after toggle, want 2", u.Generation())
	}
}

func TestCellsViewAliasesLiveStorage(t *testing.T) {
	u := New(4, 4)
	u.Clear()
	view := u.Cells()
	u.ToggleCell(0, 0)
	if view[0] != Alive {
		t.Fatalf("exported view did not observe the toggle")
	}

	// Tick installs a different buffer, so a fresh fetch is required.
	u.Tick()
	fresh := u.Cells()
	if &view[0] == &fresh[0] {
		t.Fatalf("Tick did not install a new buffer")
	}
}

func TestResizeReplacesUniverse(t *testing.T) {
	u := New(5, 5)
	u.Tick()
	u.Tick()
	u.Resize(10, 12)

	if u.Width() != 10 || u.Height() != 12 {
		t.Fatalf("dimensions = %dx%d, want 10x12", u.Width(), u.Height())
	}
	if u.Generation() != 0 {
		t.Fatalf("generation = %d after resize, want 0", u.Generation())
	}
	for i, c := range u.Cells() {
		want := Dead
		if i%2 == 0 || i%7 == 0 {
			want = Alive
		}
		if c != want {
			t.Fatalf("resize did not apply the default seed at cell %d", i)
		}
	}
}

func TestResetIsDeterministic(t *testing.T) {
	a := New(16, 16)
	b := New(16, 16)
	a.Reset(1337)
	b.Reset(1337)
	if !bytes.Equal(a.Cells(), b.Cells()) {
		t.Fatalf("same seed produced different boards")
	}
	b.Reset(7331)
	if bytes.Equal(a.Cells(), b.Cells()) {
		t.Fatalf("different seeds produced identical boards")
	}
}

func TestPopulation(t *testing.T) {
	u := New(5, 5)
	u.Clear()
	if u.Population() != 0 {
		t.Fatalf("population = %d after Clear, want 0", u.Population())
	}
	u.SetCells([]Point{{0, 0}, {1, 1}, {2, 2}})
	if u.Population() != 3 {
		t.Fatalf("population = %d, want 3", u.Population())
	}
}

func TestStringRendersBoard(t *testing.T) {
	u := New(3, 2)
	u.Clear()
	u.ToggleCell(0, 0)

	lines := strings.Split(strings.TrimRight(u.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, want 2", len(lines))
	}
	if lines[0] != "◼◻◻" || lines[1] != "◻◻◻" {
		t.Fatalf("unexpected render:\n%s", u.String())
	}
}
