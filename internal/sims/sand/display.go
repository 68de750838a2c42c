package sand

import (
	"image/color"

	"github.com/crazy3lf/colorconv"
)

const (
	displayShadeBits = 2
	displayShades    = 1 << displayShadeBits
	displayShadeMask = displayShades - 1

	// shadeStep is the fraction of HSV value removed per shade level.
	shadeStep = 0.07
)

var sandPalette = buildPalette()

// Palette exposes the color palette indexed by the codes returned from Cells.
func (w *World) Palette() []color.RGBA {
	return sandPalette
}

// DisplayType recovers the element type from a display code.
func DisplayType(code uint8) ElementType {
	return ElementType(code >> displayShadeBits)
}

func displayCode(e Element, x, y int) uint8 {
	shade := 0
	if e.Type == TypeMoveableSolid || e.Type == TypeImmovableSolid {
		shade = grain(x, y)
	}
	return uint8(e.Type)<<displayShadeBits | uint8(shade)
}

// grain gives each cell position a stable shade so piles read as texture.
func grain(x, y int) int {
	h := uint32(x)*73856093 ^ uint32(y)*19349663
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	return int(h & displayShadeMask)
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, NumElementTypes<<displayShadeBits)
	for t := 0; t < NumElementTypes; t++ {
		base := Of(ElementType(t)).Color
		for s := 0; s < displayShades; s++ {
			palette[t<<displayShadeBits|s] = shadeColor(base, s)
		}
	}
	return palette
}

func shadeColor(c Color, shade int) color.RGBA {
	r, g, b := channel(c.R), channel(c.G), channel(c.B)
	base := color.RGBA{R: r, G: g, B: b, A: 255}
	if shade == 0 {
		return base
	}
	h, s, v := colorconv.RGBToHSV(r, g, b)
	v *= 1 - shadeStep*float64(shade)
	nr, ng, nb, err := colorconv.HSVToRGB(h, s, v)
	if err != nil {
		return base
	}
	return color.RGBA{R: nr, G: ng, B: nb, A: 255}
}

func channel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}

// Swatch returns the unshaded display color of e.
func Swatch(e Element) color.RGBA {
	return shadeColor(e.Color, 0)
}
