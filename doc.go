/*
Package unigreet renders images as Unicode art in the terminal, using either
quadrant block glyphs or eight-dot braille cells, optionally in 24-bit color.

Rendered output can be saved to an .asgi frame file (see package asgi) and
replayed later without decoding or rendering the image again.

Main features:

  - Block (2x2 pixels per glyph) and Braille (2x4 pixels per glyph) charsets
  - Lower/upper brightness threshold and grayscale inversion
  - True-color output with run-length compressed color escapes
  - Horizontal and vertical alignment with padding
  - Autofit to the current terminal size
  - Optional palette limit (median cut + Floyd-Steinberg) and border trim

Basic Usage:

	img, err := unigreet.Open("image.png")
	if err != nil {
	    log.Fatal(err)
	}

	err = img.Size(20).Charset(unigreet.Braille).Print()
	if err != nil {
	    log.Fatal(err)
	}

Saving a frame:

	f, _ := asgi.Create("image.asgi")
	defer f.Close()
	img.PrintTo(asgi.NewTeeSink(asgi.NewTerminalSink(os.Stdout), f))

Replaying a frame:

	out := asgi.NewTerminalSink(os.Stdout)
	err := asgi.Load("image.asgi", out)
	out.Flush()

Low level:

	grid := unigreet.NewPixelGrid(src)
	frame, err := unigreet.NewRenderer(unigreet.RenderOptions{
	    Charset:   unigreet.Block,
	    Threshold: unigreet.Threshold{Lower: 10, Upper: 256},
	}).Render(grid, unigreet.NewPixelGrid(unigreet.Grayscale(src, false)))
*/
package unigreet
