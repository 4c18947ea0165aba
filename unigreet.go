package unigreet

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/blacktop/go-unigreet/pkg/asgi"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultSize is the default output height in lines
const DefaultSize = 30

// ErrNoSource is returned when an Image has nothing to decode
var ErrNoSource = errors.New("no image source configured")

// Image represents a source image with a fluent API for configuration
type Image struct {
	source image.Image
	reader io.Reader
	path   string

	// Configuration
	size      int
	charset   Charset
	threshold Threshold
	invert    bool
	hAlign    HAlign
	vAlign    VAlign
	padding   int
	color     bool
	limit     int
	crop      bool
	fit       bool
	debugDir  string

	// Screen size in cells, detected when zero
	cols, rows int
}

func defaults() Image {
	return Image{
		size:      DefaultSize,
		charset:   Block,
		threshold: DefaultThreshold,
		hAlign:    AlignCenter,
		vAlign:    AlignMiddle,
		color:     true,
	}
}

// New creates a new Image from an image.Image
func New(img image.Image) *Image {
	if img == nil {
		return nil
	}
	i := defaults()
	i.source = img
	return &i
}

// Open creates a new Image from a file path. The file is decoded lazily.
func Open(path string) (*Image, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}
	i := defaults()
	i.path = path
	return &i, nil
}

// From creates a new Image from an io.Reader
func From(r io.Reader) *Image {
	if r == nil {
		return nil
	}
	i := defaults()
	i.reader = r
	return &i
}

// Size sets the output height in lines
func (i *Image) Size(lines int) *Image {
	if lines < 0 {
		lines = 0
	}
	i.size = lines
	return i
}

// Charset sets the glyph alphabet
func (i *Image) Charset(cs Charset) *Image {
	i.charset = cs
	return i
}

// Threshold sets the lower and upper brightness bounds
func (i *Image) Threshold(lower, upper int) *Image {
	i.threshold = Threshold{Lower: lower, Upper: upper}
	return i
}

// Invert inverts the grayscale used for the lit tests, useful to cut out
// white backgrounds
func (i *Image) Invert(v bool) *Image {
	i.invert = v
	return i
}

// Align sets the horizontal and vertical alignment
func (i *Image) Align(h HAlign, v VAlign) *Image {
	i.hAlign = h
	i.vAlign = v
	return i
}

// Padding sets the total output height in lines; it has no effect unless
// larger than the printed image
func (i *Image) Padding(lines int) *Image {
	i.padding = max(lines, 0)
	return i
}

// Color enables or disables 24-bit color output
func (i *Image) Color(v bool) *Image {
	i.color = v
	return i
}

// Limit restricts the palette to n colors before rendering, 0 means unlimited
func (i *Image) Limit(n int) *Image {
	i.limit = n
	return i
}

// Crop trims the uniform border before rendering
func (i *Image) Crop(v bool) *Image {
	i.crop = v
	return i
}

// Fit sizes the output to fill the terminal, overriding Size
func (i *Image) Fit(v bool) *Image {
	i.fit = v
	return i
}

// Screen overrides the detected terminal size in character cells
func (i *Image) Screen(cols, rows int) *Image {
	i.cols = cols
	i.rows = rows
	return i
}

// Debug writes the intermediate images of the pipeline into dir
func (i *Image) Debug(dir string) *Image {
	i.debugDir = dir
	return i
}

// Validate checks the configuration before any rendering happens
func (i *Image) Validate() error {
	if err := i.threshold.Validate(); err != nil {
		return err
	}
	if i.limit < 0 || i.limit > MaxColors {
		return fmt.Errorf("invalid limit %d: value needs to be in range [0, %d]", i.limit, MaxColors)
	}
	return nil
}

// Frame runs the full pipeline and returns the rendered frame
func (i *Image) Frame() (*Frame, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}

	img, err := i.loadImage()
	if err != nil {
		return nil, err
	}

	if i.crop {
		img = Trim(img)
	}

	cols, rows := i.screen()
	bounds := img.Bounds()

	lines := i.size
	if i.fit {
		if lines, err = Autofit(bounds.Dx(), bounds.Dy(), i.charset, cols, rows); err != nil {
			return nil, err
		}
	}

	target := BaseSize(bounds.Dx(), bounds.Dy(), lines, i.charset)
	img = Flatten(ResizeImage(img, target.X, target.Y))
	if err := i.debugSave("tmp.png", img); err != nil {
		return nil, err
	}

	if i.limit > 0 {
		img = Quantize(img, i.limit)
		if err := i.debugSave("tmp_limit.png", img); err != nil {
			return nil, err
		}
	}

	gray := Grayscale(img, i.invert)
	if err := i.debugSave("tmp_gray.png", gray); err != nil {
		return nil, err
	}

	return NewRenderer(i.buildRenderOptions(cols)).Render(NewPixelGrid(img), NewPixelGrid(gray))
}

// Render returns the terminal output for the image
func (i *Image) Render() (string, error) {
	f, err := i.Frame()
	if err != nil {
		return "", err
	}
	return f.String(), nil
}

// Print outputs the image to stdout
func (i *Image) Print() error {
	return i.PrintTo(asgi.NewTerminalSink(os.Stdout))
}

// PrintTo renders the image into s and flushes it
func (i *Image) PrintTo(s asgi.Sink) error {
	f, err := i.Frame()
	if err != nil {
		return err
	}
	if err := f.Emit(s); err != nil {
		return err
	}
	return s.Flush()
}

// Info returns a short description of the source image
func (i *Image) Info() string {
	img, err := i.loadImage()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	b := img.Bounds()
	name := i.path
	if name == "" {
		name = "<memory>"
	}
	return fmt.Sprintf("%s: %dx%d %T", name, b.Dx(), b.Dy(), img)
}

// Close releases the decoded source image
func (i *Image) Close() error {
	if i.path != "" || i.reader != nil {
		i.source = nil
	}
	return nil
}

// loadImage loads the image from the configured source
func (i *Image) loadImage() (image.Image, error) {
	if i.source != nil {
		return i.source, nil
	}

	if i.path != "" {
		file, err := os.Open(i.path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer file.Close()

		img, _, err := image.Decode(file)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}

		i.source = img
		return img, nil
	}

	if i.reader != nil {
		img, _, err := image.Decode(i.reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}

		i.source = img
		i.reader = nil
		return img, nil
	}

	return nil, ErrNoSource
}

func (i *Image) screen() (cols, rows int) {
	if i.cols > 0 && i.rows > 0 {
		return i.cols, i.rows
	}
	return TerminalSize()
}

func (i *Image) buildRenderOptions(cols int) RenderOptions {
	return RenderOptions{
		Charset:      i.charset,
		Threshold:    i.threshold,
		Color:        i.color,
		HAlign:       i.hAlign,
		VAlign:       i.vAlign,
		Padding:      i.padding,
		ScreenWidth: cols,
	}
}

func (i *Image) debugSave(name string, img image.Image) error {
	if i.debugDir == "" {
		return nil
	}
	f, err := os.Create(filepath.Join(i.debugDir, name))
	if err != nil {
		return fmt.Errorf("failed to create debug image: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to write debug image: %w", err)
	}
	return nil
}

// Convenience functions for quick rendering

// Render renders an image with default settings
func Render(img image.Image) (string, error) {
	if img == nil {
		return "", fmt.Errorf("image cannot be nil")
	}
	return New(img).Render()
}

// PrintFile prints an image file with default settings
func PrintFile(path string) error {
	img, err := Open(path)
	if err != nil {
		return err
	}
	return img.Print()
}
