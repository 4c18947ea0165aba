package unigreet

import (
	"fmt"
	"strings"
)

// Charset selects the glyph alphabet used to render an image
type Charset int

const (
	// Block renders 2x2 pixel windows as Unicode quadrant blocks
	Block Charset = iota
	// Braille renders 2x4 pixel windows as eight-dot braille cells
	Braille
)

func (c Charset) String() string {
	switch c {
	case Block:
		return "BLOCK"
	case Braille:
		return "BRAILLE"
	default:
		return fmt.Sprintf("Charset(%d)", int(c))
	}
}

// Window returns the pixel width and height collapsed into one glyph
func (c Charset) Window() (width, height int) {
	if c == Braille {
		return 2, 4
	}
	return 2, 2
}

// scale returns the pixel factor applied per line of requested height.
// Characters are about twice as tall as they are wide, hence 4 columns.
func (c Charset) scale() (x, y int) {
	if c == Braille {
		return 4, 4
	}
	return 4, 2
}

// ParseCharset parses a charset name (case-insensitive)
func ParseCharset(s string) (Charset, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BLOCK":
		return Block, nil
	case "BRAILLE":
		return Braille, nil
	}
	return 0, fmt.Errorf("invalid charset %q (choose from BLOCK, BRAILLE)", s)
}

// HAlign is the horizontal placement of the rendered image on screen
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

func (a HAlign) String() string {
	switch a {
	case AlignLeft:
		return "LEFT"
	case AlignCenter:
		return "CENTER"
	case AlignRight:
		return "RIGHT"
	default:
		return fmt.Sprintf("HAlign(%d)", int(a))
	}
}

// ParseHAlign parses a horizontal alignment name (case-insensitive)
func ParseHAlign(s string) (HAlign, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LEFT":
		return AlignLeft, nil
	case "CENTER":
		return AlignCenter, nil
	case "RIGHT":
		return AlignRight, nil
	}
	return 0, fmt.Errorf("invalid horizontal alignment %q (choose from LEFT, CENTER, RIGHT)", s)
}

// VAlign is the vertical placement of the image inside the padded area
type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

func (a VAlign) String() string {
	switch a {
	case AlignTop:
		return "TOP"
	case AlignMiddle:
		return "CENTER"
	case AlignBottom:
		return "BOTTOM"
	default:
		return fmt.Sprintf("VAlign(%d)", int(a))
	}
}

// ParseVAlign parses a vertical alignment name (case-insensitive)
func ParseVAlign(s string) (VAlign, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TOP":
		return AlignTop, nil
	case "CENTER", "MIDDLE":
		return AlignMiddle, nil
	case "BOTTOM":
		return AlignBottom, nil
	}
	return 0, fmt.Errorf("invalid vertical alignment %q (choose from TOP, CENTER, BOTTOM)", s)
}

// Threshold is the brightness band used to decide whether a pixel is lit
type Threshold struct {
	Lower int
	Upper int
}

// DefaultThreshold lights every pixel brighter than black
var DefaultThreshold = Threshold{Lower: 0, Upper: 256}

// Validate checks that both bounds are within 0-256
func (t Threshold) Validate() error {
	if t.Lower < 0 || t.Lower > 256 {
		return fmt.Errorf("invalid threshold %d: value needs to be in range [0, 256]", t.Lower)
	}
	if t.Upper < 0 || t.Upper > 256 {
		return fmt.Errorf("invalid upper threshold %d: value needs to be in range [0, 256]", t.Upper)
	}
	return nil
}

// blockLit is the Block lit test, which only honours the lower bound
func (t Threshold) blockLit(v uint8) bool {
	return int(v) > t.Lower
}

// brailleLit is the Braille lit test, strictly inside the band
func (t Threshold) brailleLit(v uint8) bool {
	return int(v) > t.Lower && int(v) < t.Upper
}

// Lit reports whether a luma value is lit under the charset's test
func (t Threshold) Lit(cs Charset, v uint8) bool {
	if cs == Braille {
		return t.brailleLit(v)
	}
	return t.blockLit(v)
}

// RenderOptions contains all options for rendering a pixel grid
type RenderOptions struct {
	Charset   Charset
	Threshold Threshold
	Color     bool

	HAlign  HAlign
	VAlign  VAlign
	Padding int // total output height in lines, ignored when not above the print height

	// Screen width in character cells used for horizontal alignment
	ScreenWidth int
}
