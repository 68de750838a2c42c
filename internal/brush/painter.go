package brush

import (
	"image"

	"falling-sand/internal/sims/sand"
)

// Canvas is the cell store a Painter writes to. *sand.Grid satisfies it.
type Canvas interface {
	Get(x, y int) sand.Element
	Set(x, y int, e sand.Element)
}

// Painter holds the selected element, the brush size and the last painted
// point so consecutive drags join into a continuous stroke.
type Painter struct {
	selected sand.Element
	size     int

	anchor    image.Point
	hasAnchor bool
}

// NewPainter returns a painter with Water selected at the largest brush size.
func NewPainter() *Painter {
	return &Painter{selected: sand.Water, size: MaxSize}
}

// Selected returns the element painted by DrawTo.
func (p *Painter) Selected() sand.Element { return p.selected }

// Select changes the painted element.
func (p *Painter) Select(e sand.Element) { p.selected = e }

// Size returns the brush size.
func (p *Painter) Size() int { return p.size }

// SetSize clamps and stores the brush size.
func (p *Painter) SetSize(size int) { p.size = ClampSize(size) }

// Grow increases the brush size, saturating at MaxSize.
func (p *Painter) Grow() { p.SetSize(p.size + 1) }

// Shrink decreases the brush size, saturating at MinSize.
func (p *Painter) Shrink() { p.SetSize(p.size - 1) }

// SetAnchor records the start of a new stroke.
func (p *Painter) SetAnchor(x, y int) {
	p.anchor = image.Pt(x, y)
	p.hasAnchor = true
}

// Anchor returns the stroke start and whether one is set.
func (p *Painter) Anchor() (image.Point, bool) { return p.anchor, p.hasAnchor }

// Release ends the current stroke.
func (p *Painter) Release() { p.hasAnchor = false }

// DrawTo paints the selected element along the line from the anchor to
// (x, y) and moves the anchor there. Without an anchor the stroke starts at
// (x, y). Existing elements are only replaced when the brush is Nothing.
func (p *Painter) DrawTo(c Canvas, x, y int) {
	if !p.hasAnchor {
		p.SetAnchor(x, y)
	}
	p.Stroke(c, p.anchor.X, p.anchor.Y, x, y)
	p.anchor = image.Pt(x, y)
}

// Stroke paints a line between two points without touching the anchor.
func (p *Painter) Stroke(c Canvas, x0, y0, x1, y1 int) {
	offsets := Offsets(p.size)
	erase := p.selected.Is(sand.TypeNothing)
	for _, pt := range Line(x0, y0, x1, y1) {
		for _, o := range offsets {
			cx, cy := pt.X+o.X, pt.Y+o.Y
			if erase || c.Get(cx, cy).Is(sand.TypeNothing) {
				c.Set(cx, cy, p.selected)
			}
		}
	}
}

// Fill paints every cell of the rectangle spanned by two corners, inclusive.
// The same overwrite policy as Stroke applies.
func (p *Painter) Fill(c Canvas, x0, y0, x1, y1 int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	erase := p.selected.Is(sand.TypeNothing)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if erase || c.Get(x, y).Is(sand.TypeNothing) {
				c.Set(x, y, p.selected)
			}
		}
	}
}
