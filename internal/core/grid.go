package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
	rows [][]uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
	g.rows = make([][]uint8, h)
	for y := range g.rows {
		g.rows[y] = g.data[y*w : (y+1)*w : (y+1)*w]
	}
	return g
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Rows returns one slice per row. The rows alias the backing slice, so writes
// through either view are visible in the other.
func (g *ByteGrid) Rows() [][]uint8 { return g.rows }

// CopyTo copies the cell values into dst and returns the number of cells copied.
func (g *ByteGrid) CopyTo(dst []uint8) int { return copy(dst, g.data) }
