package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// The backing slice holds exactly W*H cells at all times.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions. Dimensions below
// one are clamped to one so the grid never ends up empty.
func NewByteGrid(w, h int) *ByteGrid {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Len returns the number of cells in the grid.
func (g *ByteGrid) Len() int { return len(g.data) }

// Index returns the linear slice index for (row, col).
func (g *ByteGrid) Index(row, col int) int { return row*g.W + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(row, col int) (int, int) {
	row = (row%g.H + g.H) % g.H
	col = (col%g.W + g.W) % g.W
	return row, col
}

// Get returns the cell at (row, col). Out-of-range coordinates wrap.
func (g *ByteGrid) Get(row, col int) uint8 {
	row, col = g.Wrap(row, col)
	return g.data[row*g.W+col]
}

// Set writes the cell at (row, col). Out-of-range coordinates wrap.
func (g *ByteGrid) Set(row, col int, v uint8) {
	row, col = g.Wrap(row, col)
	g.data[row*g.W+col] = v
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
