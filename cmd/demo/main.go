package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/blacktop/go-unigreet"
	"github.com/blacktop/go-unigreet/pkg/asgi"
)

func main() {
	if len(os.Args) > 1 {
		// If a file is provided, render it
		renderFile(os.Args[1])
	} else {
		// Otherwise, create a test pattern
		renderTestPattern()
	}
}

func renderFile(path string) {
	fmt.Printf("Rendering image: %s\n\n", path)

	// Simple one-liner to render a file
	err := unigreet.PrintFile(path)
	if err != nil {
		log.Fatalf("Error rendering file: %v", err)
	}

	fmt.Println("\n\nUsing fluent API with custom settings:")

	// More complex example with configuration
	img, err := unigreet.Open(path)
	if err != nil {
		log.Fatalf("Error opening file: %v", err)
	}

	err = img.
		Size(20).
		Charset(unigreet.Braille).
		Threshold(30, 240).
		Align(unigreet.AlignLeft, unigreet.AlignTop).
		Print()

	if err != nil {
		log.Fatalf("Error rendering with fluent API: %v", err)
	}
}

func renderTestPattern() {
	fmt.Print("Creating test pattern...\n\n")

	// Create a colorful test pattern
	img := createTestPattern()

	// Test both charsets
	charsets := []unigreet.Charset{unigreet.Block, unigreet.Braille}

	for _, cs := range charsets {
		fmt.Printf("\n=== %s ===\n", cs)
		err := unigreet.New(img).
			Size(15).
			Charset(cs).
			Print()

		if err != nil {
			fmt.Printf("Error with %s: %v\n", cs, err)
		} else {
			fmt.Printf("\n%s rendering completed\n", cs)
		}

		fmt.Print(strings.Repeat("-", 50) + "\n")
	}

	// Test with different configurations
	fmt.Println("\n=== Configuration Examples ===")

	// Test with palette limit
	fmt.Println("\nLimited to 8 colors:")
	err := unigreet.New(img).
		Size(12).
		Limit(8).
		Print()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
	}

	// Test inverted without colors
	fmt.Println("\n\nInverted, no color:")
	err = unigreet.New(img).
		Size(12).
		Invert(true).
		Color(false).
		Print()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
	}

	// Save a frame and replay it
	fmt.Println("\n\nSaved and replayed:")
	if err := saveAndReplay(img); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

func saveAndReplay(img image.Image) error {
	dir, err := os.MkdirTemp("", "unigreet-demo")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "pattern"+asgi.Ext)
	fs, err := asgi.Create(path)
	if err != nil {
		return err
	}
	if err := unigreet.New(img).Size(10).PrintTo(fs); err != nil {
		fs.Close()
		return err
	}
	if err := fs.Close(); err != nil {
		return err
	}

	sink := asgi.NewTerminalSink(os.Stdout)
	if err := asgi.Load(path, sink); err != nil {
		return err
	}
	return sink.Flush()
}

func createTestPattern() image.Image {
	const size = 200
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	// Create a gradient pattern
	for y := range size {
		for x := range size {
			r := uint8((x * 255) / size)
			g := uint8((y * 255) / size)
			b := uint8(((x + y) * 255) / (2 * size))
			img.Set(x, y, color.RGBA{r, g, b, 255})
		}
	}

	// Add some shapes
	// Red square
	draw.Draw(img, image.Rect(20, 20, 60, 60),
		&image.Uniform{color.RGBA{255, 0, 0, 255}},
		image.Point{}, draw.Src)

	// Green square
	draw.Draw(img, image.Rect(140, 20, 180, 60),
		&image.Uniform{color.RGBA{0, 255, 0, 255}},
		image.Point{}, draw.Src)

	// Blue square
	draw.Draw(img, image.Rect(20, 140, 60, 180),
		&image.Uniform{color.RGBA{0, 0, 255, 255}},
		image.Point{}, draw.Src)

	// White square
	draw.Draw(img, image.Rect(140, 140, 180, 180),
		&image.Uniform{color.RGBA{255, 255, 255, 255}},
		image.Point{}, draw.Src)

	return img
}
