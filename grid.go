package unigreet

import (
	"image"
	"image/color"
)

// PixelGrid is an immutable row-major raster with one (gray) or three (RGB)
// channels per pixel.
type PixelGrid struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// NewPixelGrid copies an image into a grid. *image.Gray and *image.Gray16
// sources produce a single channel, everything else RGB with alpha dropped.
func NewPixelGrid(img image.Image) *PixelGrid {
	bounds := img.Bounds()
	g := &PixelGrid{Width: bounds.Dx(), Height: bounds.Dy()}

	switch src := img.(type) {
	case *image.Gray:
		g.Channels = 1
		g.Pix = make([]uint8, 0, g.Width*g.Height)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			off := src.PixOffset(bounds.Min.X, y)
			g.Pix = append(g.Pix, src.Pix[off:off+g.Width]...)
		}
		return g
	case *image.Gray16:
		g.Channels = 1
		g.Pix = make([]uint8, 0, g.Width*g.Height)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				g.Pix = append(g.Pix, uint8(src.Gray16At(x, y).Y>>8))
			}
		}
		return g
	}

	g.Channels = 3
	g.Pix = make([]uint8, 0, 3*g.Width*g.Height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			g.Pix = append(g.Pix, c.R, c.G, c.B)
		}
	}
	return g
}

// Gray reports whether the grid holds single-channel samples
func (g *PixelGrid) Gray() bool {
	return g.Channels == 1
}

// In reports whether (x, y) is inside the grid
func (g *PixelGrid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// Luma returns the first channel at (x, y), the brightness of a gray grid
func (g *PixelGrid) Luma(x, y int) uint8 {
	return g.Pix[(y*g.Width+x)*g.Channels]
}

// RGB returns the color at (x, y); gray samples are replicated
func (g *PixelGrid) RGB(x, y int) RGB {
	i := (y*g.Width + x) * g.Channels
	if g.Channels == 1 {
		return Gray(g.Pix[i])
	}
	return RGB{g.Pix[i], g.Pix[i+1], g.Pix[i+2]}
}
