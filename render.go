package unigreet

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/blacktop/go-unigreet/pkg/asgi"
)

// Cell is one rendered glyph and the color aggregated from its window
type Cell struct {
	Glyph rune
	Color RGB
}

// Frame is a fully rendered image, ready to be written to a sink
type Frame struct {
	Rows   [][]Cell
	Top    int // blank lines before the first row
	Bottom int // blank lines after the last row
	Left   int // leading spaces on every row
	Color  bool
}

// Renderer turns pixel grids into frames
type Renderer struct {
	opts RenderOptions
}

// NewRenderer creates a renderer for the given options
func NewRenderer(opts RenderOptions) *Renderer {
	return &Renderer{opts: opts}
}

// Render walks the grid window by window, left to right and top to bottom.
// luma holds the brightness used for the lit tests; when nil, a gray color
// grid is used directly. Neither grid is modified.
func (r *Renderer) Render(color, luma *PixelGrid) (*Frame, error) {
	if color == nil {
		return nil, fmt.Errorf("pixel grid cannot be nil")
	}
	if luma == nil {
		luma = color
	}
	if !luma.Gray() {
		return nil, fmt.Errorf("luma grid must have 1 channel, got %d", luma.Channels)
	}
	if luma.Width != color.Width || luma.Height != color.Height {
		return nil, fmt.Errorf("luma grid is %dx%d, color grid is %dx%d",
			luma.Width, luma.Height, color.Width, color.Height)
	}

	ww, wh := r.opts.Charset.Window()
	cols := (color.Width + ww - 1) / ww
	rows := (color.Height + wh - 1) / wh

	f := &Frame{
		Rows:  make([][]Cell, 0, rows),
		Left:  HorizontalPadding(r.opts.HAlign, r.opts.ScreenWidth, float64(color.Width)/float64(ww)),
		Color: r.opts.Color,
	}
	f.Top, f.Bottom = VerticalPadding(r.opts.VAlign, r.opts.Padding, rows)

	for y := 0; y < color.Height; y += wh {
		row := make([]Cell, 0, cols)
		for x := 0; x < color.Width; x += ww {
			row = append(row, r.cell(color, luma, x, y))
		}
		f.Rows = append(f.Rows, row)
	}
	return f, nil
}

// cell renders the window whose top-left pixel is (x0, y0). Window samples
// are indexed column-major; samples outside the grid stay unlit.
func (r *Renderer) cell(color, luma *PixelGrid, x0, y0 int) Cell {
	cs := r.opts.Charset
	th := r.opts.Threshold
	ww, wh := cs.Window()

	var (
		lit      [8]bool
		colorLit [8]bool
		samples  [8]RGB
	)
	for dx := range ww {
		for dy := range wh {
			x, y := x0+dx, y0+dy
			if !luma.In(x, y) {
				continue
			}
			i := dx*wh + dy
			lit[i] = th.Lit(cs, luma.Luma(x, y))
			if !r.opts.Color {
				continue
			}
			samples[i] = color.RGB(x, y)
			if color.Gray() {
				colorLit[i] = lit[i]
			} else {
				c := samples[i]
				colorLit[i] = int(c.R) > th.Lower || int(c.G) > th.Lower || int(c.B) > th.Lower
			}
		}
	}

	var c Cell
	if cs == Braille {
		c.Glyph = BrailleGlyph(lit)
	} else {
		c.Glyph = BlockGlyph(lit[0], lit[2], lit[1], lit[3])
	}
	if r.opts.Color {
		n := ww * wh
		c.Color = AverageColor(samples[:n], colorLit[:n])
	}
	return c
}

// Width returns the width of the widest row in cells, without padding
func (f *Frame) Width() int {
	w := 0
	for _, row := range f.Rows {
		w = max(w, len(row))
	}
	return w
}

// Height returns the number of output lines including vertical padding
func (f *Frame) Height() int {
	return f.Top + len(f.Rows) + f.Bottom
}

// Runs returns the frame as the sequence of runs that Emit writes. A color
// escape only starts a new run when the color differs from the previous one;
// it carries across line breaks until the reset that closes a colored frame.
func (f *Frame) Runs() []asgi.Run {
	var (
		runs    []asgi.Run
		text    strings.Builder
		prev    RGB
		hasPrev bool
	)
	flush := func() {
		if text.Len() == 0 {
			return
		}
		runs = append(runs, asgi.TextRun(text.String()))
		text.Reset()
	}

	text.WriteString(strings.Repeat("\n", f.Top))
	pad := strings.Repeat(" ", f.Left)
	for _, row := range f.Rows {
		text.WriteString(pad)
		for _, c := range row {
			if f.Color && (!hasPrev || c.Color != prev) {
				flush()
				runs = append(runs, asgi.EscapeRun(c.Color.SGR()))
				prev, hasPrev = c.Color, true
			}
			text.WriteRune(c.Glyph)
		}
		text.WriteByte('\n')
	}
	flush()

	if f.Color {
		runs = append(runs, asgi.EscapeRun(Reset))
	}
	text.WriteString(strings.Repeat("\n", f.Bottom))
	flush()
	return runs
}

// Emit streams the frame into s run by run
func (f *Frame) Emit(s asgi.Sink) error {
	for _, r := range f.Runs() {
		if err := asgi.WriteRun(s, r); err != nil {
			return err
		}
	}
	return nil
}

// Print writes the frame to w as terminal output
func (f *Frame) Print(w io.Writer) error {
	s := asgi.NewTerminalSink(w)
	if err := f.Emit(s); err != nil {
		return err
	}
	return s.Flush()
}

// String returns the terminal output of the frame
func (f *Frame) String() string {
	var buf bytes.Buffer
	// a terminal sink over a bytes.Buffer never fails
	if err := f.Print(&buf); err != nil {
		return ""
	}
	return buf.String()
}
