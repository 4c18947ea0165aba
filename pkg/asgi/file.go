package asgi

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoFrames is returned when a directory holds no frame files
var ErrNoFrames = errors.New("no " + Ext + " files found")

// IsFrameFile reports whether path carries the frame file extension
func IsFrameFile(path string) bool {
	return strings.HasSuffix(path, Ext)
}

// FileSink encodes output into a frame file on disk
type FileSink struct {
	*Encoder
	f *os.File
}

// Create creates (or truncates) the frame file at path
func Create(path string) (*FileSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create frame file: %w", err)
	}
	return &FileSink{Encoder: NewEncoder(f), f: f}, nil
}

// Close flushes the encoder and closes the file
func (fs *FileSink) Close() error {
	if err := fs.Flush(); err != nil {
		fs.f.Close()
		return err
	}
	return fs.f.Close()
}

// Load decodes the frame file at path into s
func Load(path string, s Sink) error {
	if !IsFrameFile(path) {
		return fmt.Errorf("invalid file %q: file must have %s extension", path, Ext)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open frame file: %w", err)
	}
	defer f.Close()

	return Decode(f, s)
}

// List returns the frame files directly inside dir, sorted by name
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && IsFrameFile(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Random picks one frame file from dir uniformly at random
func Random(dir string) (string, error) {
	files, err := List(dir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("%w in %s", ErrNoFrames, dir)
	}
	return files[rand.IntN(len(files))], nil
}
