package unigreet

import (
	"image"
	"image/color"

	"github.com/disintegration/gift"
	"github.com/makeworld-the-better-one/dither/v2"
	"github.com/nfnt/resize"
	"github.com/soniakeys/quant/median"
)

// MaxColors is the largest palette accepted by Quantize
const MaxColors = 256

// ResizeImage resizes img to exactly width x height pixels
func ResizeImage(img image.Image, width, height int) image.Image {
	bounds := img.Bounds()

	// Skip resize if already correct size
	if bounds.Dx() == width && bounds.Dy() == height {
		return img
	}

	// Bilinear for large downscales, nearest neighbor keeps small sources
	// and upscales crisp
	var interp resize.InterpolationFunction
	if bounds.Dx()*bounds.Dy() > width*height*4 {
		interp = resize.Bilinear
	} else {
		interp = resize.NearestNeighbor
	}

	return resize.Resize(uint(width), uint(height), img, interp)
}

// Trim crops away the border whose color matches the top-left pixel.
// An image of a single color is returned unchanged.
func Trim(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Empty() {
		return img
	}

	br, bg, bb, ba := img.At(bounds.Min.X, bounds.Min.Y).RGBA()
	box := image.Rectangle{Min: bounds.Max, Max: bounds.Min}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if r == br && g == bg && b == bb && a == ba {
				continue
			}
			box.Min.X = min(box.Min.X, x)
			box.Min.Y = min(box.Min.Y, y)
			box.Max.X = max(box.Max.X, x+1)
			box.Max.Y = max(box.Max.Y, y+1)
		}
	}
	if box.Empty() || box == bounds {
		return img
	}

	g := newFilter(gift.Crop(box))
	return g.apply(img)
}

// Flatten returns an opaque copy of img holding its un-premultiplied colors,
// so that transparency never changes the brightness of a pixel. Gray images
// carry no alpha and are returned unchanged.
func Flatten(img image.Image) image.Image {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return img
	}
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			c.A = 0xff
			dst.SetNRGBA(x-bounds.Min.X, y-bounds.Min.Y, c)
		}
	}
	return dst
}

// Quantize reduces img to at most colors colors using a median-cut palette
// and Floyd-Steinberg dithering. colors <= 0 leaves the image untouched.
func Quantize(img image.Image, colors int) image.Image {
	if colors <= 0 {
		return img
	}
	colors = min(colors, MaxColors)

	palette := median.Quantizer(colors).Palette(img).ColorPalette()
	d := dither.NewDitherer(palette)
	if d == nil {
		return img
	}
	d.Matrix = dither.FloydSteinberg

	// Dither would modify RGBA sources in place
	return d.DitherCopy(img)
}

// Grayscale returns the luma plane of img, inverted when invert is set
func Grayscale(img image.Image, invert bool) *image.Gray {
	g := newFilter(gift.Grayscale())
	if invert {
		g.Add(gift.Invert())
	}
	dst := image.NewGray(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}

type filter struct {
	*gift.GIFT
}

// newFilter creates a sequential gift filter chain
func newFilter(filters ...gift.Filter) filter {
	g := gift.New(filters...)
	g.SetParallelization(false)
	return filter{g}
}

// apply draws img through the chain, keeping gray sources gray
func (f filter) apply(img image.Image) image.Image {
	bounds := f.Bounds(img.Bounds())
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		dst := image.NewGray(bounds)
		f.Draw(dst, img)
		return dst
	}
	dst := image.NewNRGBA(bounds)
	f.Draw(dst, img)
	return dst
}
