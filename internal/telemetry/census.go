// Package telemetry counts elements on a grid, summarizes the counts over a
// run and writes them to CSV.
package telemetry

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"falling-sand/internal/sims/sand"
)

// Census holds the number of cells of each element type.
type Census [sand.NumElementTypes]int

// Count tallies every cell of g.
func Count(g *sand.Grid) Census {
	var c Census
	for _, e := range g.Cells() {
		if int(e.Type) < len(c) {
			c[e.Type]++
		}
	}
	return c
}

// Of returns the count for one type.
func (c Census) Of(t sand.ElementType) int {
	if int(t) >= len(c) {
		return 0
	}
	return c[t]
}

// Total returns the number of non-Nothing cells.
func (c Census) Total() int {
	n := 0
	for t, v := range c {
		if sand.ElementType(t) != sand.TypeNothing {
			n += v
		}
	}
	return n
}

// Row is one census line of census.csv.
type Row struct {
	Tick      uint64 `csv:"tick"`
	Immovable int    `csv:"immovable_solid"`
	Moveable  int    `csv:"moveable_solid"`
	Liquid    int    `csv:"liquid"`
	Gas       int    `csv:"gas"`
	Generator int    `csv:"pixel_generator"`
	Nothing   int    `csv:"nothing"`
	Magic     int    `csv:"magic"`
	Fire      int    `csv:"fire"`
	Maze      int    `csv:"maze"`
}

// Row flattens the census for CSV output.
func (c Census) Row(tick uint64) Row {
	return Row{
		Tick:      tick,
		Immovable: c[sand.TypeImmovableSolid],
		Moveable:  c[sand.TypeMoveableSolid],
		Liquid:    c[sand.TypeLiquid],
		Gas:       c[sand.TypeGas],
		Generator: c[sand.TypePixelGenerator],
		Nothing:   c[sand.TypeNothing],
		Magic:     c[sand.TypeMagic],
		Fire:      c[sand.TypeFire],
		Maze:      c[sand.TypeMaze],
	}
}

// CenterOfMass returns the mean position of all cells of type t. ok is false
// when there are none.
func CenterOfMass(g *sand.Grid, t sand.ElementType) (x, y float64, ok bool) {
	var xs, ys []float64
	w := g.Width()
	for i, e := range g.Cells() {
		if e.Type == t {
			xs = append(xs, float64(i%w))
			ys = append(ys, float64(i/w))
		}
	}
	if len(xs) == 0 {
		return math.NaN(), math.NaN(), false
	}
	return stat.Mean(xs, nil), stat.Mean(ys, nil), true
}
