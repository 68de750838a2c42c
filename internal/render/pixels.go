package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := min(int(c), last)
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Snapshot renders cells of a w×h grid into a new image, one pixel per cell
// scaled by scale.
func Snapshot(w, h int, cells []uint8, palette []color.RGBA, scale int) (*image.RGBA, error) {
	if len(cells) != w*h {
		return nil, fmt.Errorf("snapshot: %d cells for a %dx%d grid", len(cells), w, h)
	}
	scale = max(scale, 1)
	base := image.NewRGBA(image.Rect(0, 0, w, h))
	fillPaletteRGBA(base.Pix, cells, palette)
	if scale == 1 {
		return base, nil
	}
	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h*scale; y++ {
		src := base.Pix[(y/scale)*base.Stride:]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < w*scale; x++ {
			copy(dst[4*x:4*x+4], src[4*(x/scale):4*(x/scale)+4])
		}
	}
	return img, nil
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
