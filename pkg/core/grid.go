package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Marked reports whether the value at linear index i is non-zero.
func (g *ByteGrid) Marked(i int) bool { return g.data[i] != 0 }

// Mark sets the value at linear index i to 1.
func (g *ByteGrid) Mark(i int) { g.data[i] = 1 }

// Swap exchanges the values stored at linear indices i and j.
func (g *ByteGrid) Swap(i, j int) {
	g.data[i], g.data[j] = g.data[j], g.data[i]
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	clear(g.data)
}
