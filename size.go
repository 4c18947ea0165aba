package unigreet

import (
	"errors"
	"fmt"
	"image"
)

// ErrNoFit is returned by Autofit when no height fits the terminal
var ErrNoFit = errors.New("image does not fit the terminal")

// BaseSize returns the pixel dimensions an image of srcW x srcH is resized
// to so that it prints as the given number of lines. Height drives the aspect
// ratio; degenerate dimensions are clamped to 1 before the charset scale.
func BaseSize(srcW, srcH, lines int, cs Charset) image.Point {
	w, h := 0, lines
	if srcH > 0 {
		w = int(float64(srcW) * (float64(lines) / float64(srcH)))
	}
	if h <= 0 {
		h = 1
	}
	if w <= 0 {
		w = 1
	}
	sx, sy := cs.scale()
	return image.Pt(w*sx, h*sy)
}

// Autofit searches downwards from the full terminal height for the largest
// size whose pixel grid fits cols x rows. Braille packs two pixel columns per
// cell so its candidate width counts double. The returned value is the
// candidate's pixel height, to be passed back to BaseSize as the line count.
func Autofit(srcW, srcH int, cs Charset, cols, rows int) (int, error) {
	if cols <= 0 || rows <= 0 {
		return 0, fmt.Errorf("%w: %dx%d terminal", ErrNoFit, cols, rows)
	}
	widthFactor := 1
	if cs == Braille {
		widthFactor = 2
	}
	for lines := rows; lines > 0; lines-- {
		p := BaseSize(srcW, srcH, lines, cs)
		if p.X*widthFactor <= cols && p.Y <= rows {
			return p.Y, nil
		}
	}
	return 0, fmt.Errorf("%w: %dx%d image in %dx%d terminal", ErrNoFit, srcW, srcH, cols, rows)
}
