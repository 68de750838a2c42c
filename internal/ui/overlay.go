//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"falling-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay draws the brush footprint under the cursor on top of the grid.
type Overlay struct {
	size  core.Size
	scale int
	show  bool

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for a grid of the given size.
func NewOverlay(size core.Size, scale int) *Overlay {
	o := &Overlay{size: size, scale: max(scale, 1), show: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetVisible shows or hides the cursor.
func (o *Overlay) SetVisible(show bool) { o.show = show }

// Draw tints every in-grid cell covered by offsets around (cx, cy).
func (o *Overlay) Draw(screen *ebiten.Image, cx, cy int, offsets []image.Point, tint color.RGBA) {
	if !o.show || o.pixel == nil {
		return
	}
	tint.A = 110
	s := float64(o.scale)
	for _, off := range offsets {
		x, y := cx+off.X, cy+off.Y
		if x < 0 || y < 0 || x >= o.size.W || y >= o.size.H {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s, s)
		op.GeoM.Translate(float64(x)*s, float64(y)*s)
		op.ColorM.Scale(float64(tint.R)/255.0, float64(tint.G)/255.0, float64(tint.B)/255.0, float64(tint.A)/255.0)
		screen.DrawImage(o.pixel, op)
	}
}
