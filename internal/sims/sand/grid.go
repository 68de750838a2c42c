package sand

import "falling-sand/internal/core"

// Grid is the cell store of a world. Out-of-bounds reads yield Nothing and
// out-of-bounds writes are dropped.
type Grid = core.Grid[Element]

// NewGrid returns a w*h grid filled with Nothing.
func NewGrid(w, h int) *Grid {
	return core.NewGrid(w, h, Nothing)
}
