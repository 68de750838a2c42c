package core

// Grid stores a 2D grid of cell values in row-major order. Every read outside
// the grid yields the fill value and every write outside it is dropped, so
// callers can probe x±1, y±1 without checking bounds first.
type Grid[T comparable] struct {
	w, h int
	fill T
	data []T
}

// NewGrid allocates a w*h grid with every cell set to fill.
func NewGrid[T comparable](w, h int, fill T) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &Grid[T]{w: w, h: h, fill: fill, data: make([]T, w*h)}
	g.Reset()
	return g
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.h }

// Fill returns the value used for empty and out-of-bounds cells.
func (g *Grid[T]) Fill() T { return g.fill }

// Cells exposes the backing slice. Its length is always Width()*Height().
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Get returns the value at (x, y), or the fill value when out of bounds.
func (g *Grid[T]) Get(x, y int) T {
	if !g.InBounds(x, y) {
		return g.fill
	}
	return g.data[y*g.w+x]
}

// Set overwrites the cell at (x, y). Out-of-bounds writes are ignored.
func (g *Grid[T]) Set(x, y int, v T) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[y*g.w+x] = v
}

// Move transfers the value at (sx, sy) to (dx, dy) and leaves the fill value
// behind. Moving a cell onto itself therefore clears it.
func (g *Grid[T]) Move(sx, sy, dx, dy int) {
	v := g.Get(sx, sy)
	g.Set(dx, dy, v)
	g.Set(sx, sy, g.fill)
}

// Swap exchanges the values at (ax, ay) and (bx, by).
func (g *Grid[T]) Swap(ax, ay, bx, by int) {
	a := g.Get(ax, ay)
	b := g.Get(bx, by)
	g.Set(ax, ay, b)
	g.Set(bx, by, a)
}

// Reset fills every cell with the fill value.
func (g *Grid[T]) Reset() {
	for i := range g.data {
		g.data[i] = g.fill
	}
}
