package unigreet

import "strconv"

// SGR sequences written around colored output
const (
	ESC   = "\x1b"
	Reset = ESC + "[0m"
)

// RGB is a 24-bit terminal color
type RGB struct {
	R, G, B uint8
}

// Gray returns the color with luma replicated into every channel
func Gray(y uint8) RGB {
	return RGB{y, y, y}
}

// SGR returns the true-color foreground escape sequence for the color
func (c RGB) SGR() string {
	buf := make([]byte, 0, 19)
	buf = append(buf, ESC+"[38;2;"...)
	buf = strconv.AppendUint(buf, uint64(c.R), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(c.G), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(c.B), 10)
	buf = append(buf, 'm')
	return string(buf)
}

// AverageColor returns the truncated mean of the lit samples. An all-unlit
// window is black. samples and lit must be the same length.
func AverageColor(samples []RGB, lit []bool) RGB {
	var r, g, b, n int
	for i, c := range samples {
		if !lit[i] {
			continue
		}
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
		n++
	}
	if n == 0 {
		return RGB{}
	}
	return RGB{uint8(r / n), uint8(g / n), uint8(b / n)}
}
