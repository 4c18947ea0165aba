package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/blacktop/go-unigreet"
	"github.com/blacktop/go-unigreet/pkg/asgi"
)

// run dispatches to frame replay or image rendering
func run(out io.Writer, o *options) error {
	switch {
	case o.load != "":
		return replay(out, o.load)
	case o.loadRandom != "":
		path, err := asgi.Random(o.loadRandom)
		if err != nil {
			return err
		}
		log.Debugf("Picked %s", path)
		return replay(out, path)
	default:
		return render(out, o)
	}
}

// replay decodes a frame file straight to out
func replay(out io.Writer, path string) error {
	sink := asgi.NewTerminalSink(out)
	err := asgi.Load(path, sink)
	if ferr := sink.Flush(); err == nil {
		err = ferr
	}

	var cerr *asgi.CorruptedError
	if errors.As(err, &cerr) {
		fmt.Fprintln(out)
		return fmt.Errorf("corrupted %s file %s, exiting (pos: %d)", asgi.Ext, path, cerr.Offset)
	}
	return err
}

// render converts the image file and prints it, teeing into a frame file
// when --save is set
func render(out io.Writer, o *options) error {
	img, err := unigreet.Open(o.file)
	if err != nil {
		return err
	}
	defer img.Close()

	img.Size(o.size).
		Charset(o.cs).
		Threshold(o.threshold, o.upperThreshold).
		Invert(o.invert).
		Align(o.ha, o.va).
		Padding(o.padding).
		Color(!o.noColor).
		Limit(o.limit).
		Crop(o.crop).
		Fit(o.fill)

	if o.debug {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		img.Debug(wd)
	}

	log.Debugf("Image Info: %s", img.Info())

	var path string
	if o.doSave {
		if path, err = savePath(o.save, o.file); err != nil {
			return err
		}
	}

	f, err := img.Frame()
	if err != nil {
		return fmt.Errorf("failed to render image: %w", err)
	}
	log.WithFields(log.Fields{
		"width":  f.Width(),
		"height": f.Height(),
		"color":  f.Color,
	}).Debug("Rendered frame")

	term := asgi.NewTerminalSink(out)
	if path == "" {
		return emit(f, term)
	}

	// the frame file is only created once the image rendered
	log.WithField("path", path).Info("Saving")
	fs, err := asgi.Create(path)
	if err != nil {
		return err
	}
	if err := emit(f, asgi.NewTeeSink(term, fs)); err != nil {
		fs.Close()
		os.Remove(path)
		return err
	}
	return fs.Close()
}

// emit writes the frame into s and flushes it
func emit(f *unigreet.Frame, s asgi.Sink) error {
	if err := f.Emit(s); err != nil {
		return fmt.Errorf("failed to print image: %w", err)
	}
	return s.Flush()
}

// savePath resolves the --save value into a frame file path. A bare
// directory (or no value) saves under the source name with the frame
// extension; the directory must exist.
func savePath(save, source string) (string, error) {
	dir, file := filepath.Split(save)
	if file == saveHere || file == ".." {
		dir, file = filepath.Join(dir, file), ""
	}
	if dir == "" {
		dir = "."
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return "", fmt.Errorf("directory for provided '--save' path not found: %s", dir)
	}

	if file == "" {
		if source == "" {
			return "", errors.New("cannot derive a save name without a source file")
		}
		base := filepath.Base(source)
		file = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if !asgi.IsFrameFile(file) {
		file += asgi.Ext
	}
	return filepath.Join(dir, file), nil
}
