package unigreet

import "math"

// HorizontalPadding returns the number of leading spaces that place a print
// of printW cells on a screen of screenW cells. It is never negative; a print
// wider than the screen is not cropped.
func HorizontalPadding(a HAlign, screenW int, printW float64) int {
	var pad float64
	switch a {
	case AlignCenter:
		pad = math.Round(float64(screenW)/2 - printW/2)
	case AlignRight:
		pad = float64(screenW) - printW
	}
	return max(int(pad), 0)
}

// VerticalPadding splits padding-printH blank lines above and below the
// print. Nothing is added unless padding exceeds the print height.
func VerticalPadding(a VAlign, padding, printH int) (top, bottom int) {
	d := padding - printH
	if d <= 0 {
		return 0, 0
	}
	switch a {
	case AlignTop:
		return 0, d
	case AlignBottom:
		return d, 0
	default:
		return (d + 1) / 2, d / 2
	}
}
