// Package life implements Conway's Game of Life on a toroidal byte grid.
//
// A Universe is an independently owned instance: there is no shared state
// between universes, and none of the operations spawn goroutines. The host
// drives evolution one Tick at a time and reads the board through the
// zero-copy Cells view.
package life

import (
	"strings"

	"torlife/pkg/core"
)

// Cell states. One byte per cell, so a host can index the exported view
// directly without decoding. Any nonzero value counts as alive.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Point addresses a single cell by row and column.
type Point struct {
	Row, Col int
}

// Universe owns the current generation of a Game of Life board plus a spare
// buffer for computing the next one.
type Universe struct {
	cur *core.ByteGrid
	nxt *core.ByteGrid
	gen int
}

// New returns a Universe seeded with the default pattern. Dimensions below
// one are clamped to one, so construction never fails.
func New(w, h int) *Universe {
	u := &Universe{cur: core.NewByteGrid(w, h), nxt: core.NewByteGrid(w, h)}
	seedDefault(u.cur)
	return u
}

// NewFromConfig builds a Universe and applies the configured seed pattern.
func NewFromConfig(c Config) *Universe {
	u := New(c.Width, c.Height)
	u.Seed(c.Pattern, c.Seed)
	return u
}

// Width returns the number of columns.
func (u *Universe) Width() int { return u.cur.W }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.cur.H }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: u.cur.W, H: u.cur.H} }

// Cells exposes the current generation's backing storage without copying.
// The returned slice aliases live memory: it holds exactly Width*Height
// bytes in row-major order and stays valid only until the next Tick or
// Resize, so hosts re-fetch it after every mutation instead of caching it.
// Treat the view as read-only.
func (u *Universe) Cells() []uint8 { return u.cur.Cells() }

// Generation returns the number of ticks applied since the last seed.
func (u *Universe) Generation() int { return u.gen }

// Population counts the alive cells in the current generation.
func (u *Universe) Population() int {
	n := 0
	for _, c := range u.cur.Cells() {
		if c != Dead {
			n++
		}
	}
	return n
}

// Get returns the state of the cell at (row, col), wrapping coordinates.
func (u *Universe) Get(row, col int) uint8 { return u.cur.Get(row, col) }

// Set writes the cell at (row, col), wrapping coordinates.
func (u *Universe) Set(row, col int, v uint8) { u.cur.Set(row, col, v) }

// ToggleCell flips a single cell in the current generation. Coordinates wrap
// like every other access. Editing does not advance the generation counter.
func (u *Universe) ToggleCell(row, col int) {
	if u.cur.Get(row, col) == Dead {
		u.cur.Set(row, col, Alive)
		return
	}
	u.cur.Set(row, col, Dead)
}

// SetCells marks the given points alive.
func (u *Universe) SetCells(points []Point) {
	for _, p := range points {
		u.cur.Set(p.Row, p.Col, Alive)
	}
}

// Clear kills every cell and restarts the generation counter.
func (u *Universe) Clear() {
	u.cur.Clear()
	u.gen = 0
}

// Reset randomizes the board using the provided seed and restarts the
// generation counter. The same seed always produces the same board.
func (u *Universe) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillBinary(rng, u.cur.Cells())
	u.gen = 0
}

// Resize replaces the storage wholesale with fresh default-seeded buffers of
// the given dimensions. Views exported before the call are invalid after it.
func (u *Universe) Resize(w, h int) {
	u.cur = core.NewByteGrid(w, h)
	u.nxt = core.NewByteGrid(w, h)
	seedDefault(u.cur)
	u.gen = 0
}

// String renders the board one glyph per cell, one line per row.
func (u *Universe) String() string {
	var b strings.Builder
	cells := u.cur.Cells()
	w := u.cur.W
	for row := 0; row < u.cur.H; row++ {
		for col := 0; col < w; col++ {
			if cells[row*w+col] == Dead {
				b.WriteRune('◻')
			} else {
				b.WriteRune('◼')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
