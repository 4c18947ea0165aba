/*
Package asgi implements the .asgi frame file format used to save and replay
rendered images without re-rendering them.

A frame file is a stream of 2-byte units with no header. Text is stored as
UTF-16LE code units. An SGR escape sequence is stored as the marker 0x1B 0x00
followed by each remaining byte of the sequence paired with a zero byte; the
sequence ends at the first 'm'.
*/
package asgi

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf16"
)

const (
	// Ext is the frame file extension
	Ext = ".asgi"

	escByte = 0x1b
	bom     = 0xfeff

	// maxEscapeReads bounds the units read after an escape marker before
	// the stream is declared corrupted
	maxEscapeReads = 20
)

// Run is one element of a persisted stream: a TextRun or an EscapeRun
type Run interface {
	run()
}

// TextRun is a sequence of printable characters, never containing ESC
type TextRun string

// EscapeRun is a complete SGR sequence from ESC up to and including 'm'
type EscapeRun string

func (TextRun) run()   {}
func (EscapeRun) run() {}

// CorruptedError reports an escape run with no terminating 'm'
type CorruptedError struct {
	Offset int64 // bytes consumed when the corruption was detected
}

func (e *CorruptedError) Error() string {
	return fmt.Sprintf("corrupted %s file (pos: %d)", Ext, e.Offset)
}

var (
	ErrEscapeInText  = errors.New("text run contains an escape character")
	ErrInvalidEscape = errors.New("escape run must start with ESC and end with 'm'")
	ErrEscapeTooLong = fmt.Errorf("escape run longer than %d bytes after ESC", maxEscapeReads)
)

// Encoder is a Sink that writes the frame file encoding to an io.Writer
type Encoder struct {
	w *bufio.Writer
}

// NewEncoder creates an encoder writing to w
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// WriteText appends s as UTF-16LE code units
func (e *Encoder) WriteText(s string) error {
	if strings.IndexByte(s, escByte) >= 0 {
		return ErrEscapeInText
	}
	for _, u := range utf16.Encode([]rune(s)) {
		if err := e.unit(byte(u), byte(u>>8)); err != nil {
			return err
		}
	}
	return nil
}

// WriteEscape appends the escape marker followed by the sequence bytes
func (e *Encoder) WriteEscape(seq string) error {
	if len(seq) < 2 || seq[0] != escByte || seq[len(seq)-1] != 'm' {
		return ErrInvalidEscape
	}
	if len(seq)-1 > maxEscapeReads {
		return ErrEscapeTooLong
	}
	for i := 0; i < len(seq); i++ {
		if err := e.unit(seq[i], 0); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered data to the underlying writer
func (e *Encoder) Flush() error {
	return e.w.Flush()
}

func (e *Encoder) unit(lo, hi byte) error {
	if err := e.w.WriteByte(lo); err != nil {
		return err
	}
	return e.w.WriteByte(hi)
}

// Decode reads a frame file from r and streams its runs into s as they are
// decoded. On a malformed escape run it writes a color reset to s and returns
// a *CorruptedError; everything decoded before that point has been written.
// A trailing odd byte is ignored.
func Decode(r io.Reader, s Sink) error {
	br := bufio.NewReader(r)
	var (
		pair    [2]byte
		offset  int64
		pending rune = -1 // unpaired high surrogate
	)

	flushPending := func() error {
		if pending < 0 {
			return nil
		}
		pending = -1
		return s.WriteText("\uFFFD")
	}

	for {
		n, err := io.ReadFull(br, pair[:])
		offset += int64(n)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return flushPending()
		}
		if err != nil {
			return fmt.Errorf("failed to read frame: %w", err)
		}

		if pair[0] == escByte && pair[1] == 0 {
			if err := flushPending(); err != nil {
				return err
			}
			seq, err := readEscape(br, &offset)
			if err != nil {
				var cerr *CorruptedError
				if errors.As(err, &cerr) {
					if werr := s.WriteEscape("\x1b[0m"); werr != nil {
						return werr
					}
				}
				return err
			}
			if err := s.WriteEscape(seq); err != nil {
				return err
			}
			continue
		}

		u := rune(pair[0]) | rune(pair[1])<<8
		switch {
		case u == bom:
			continue
		case u >= 0xd800 && u < 0xdc00:
			if err := flushPending(); err != nil {
				return err
			}
			pending = u
			continue
		case u >= 0xdc00 && u < 0xe000:
			if pending >= 0 {
				cp := utf16.DecodeRune(pending, u)
				pending = -1
				if err := s.WriteText(string(cp)); err != nil {
					return err
				}
				continue
			}
			u = 0xfffd
		}
		if err := flushPending(); err != nil {
			return err
		}
		if err := s.WriteText(string(u)); err != nil {
			return err
		}
	}
}

// readEscape collects an escape run after its marker has been consumed
func readEscape(br *bufio.Reader, offset *int64) (string, error) {
	var pair [2]byte
	seq := make([]byte, 1, maxEscapeReads+1)
	seq[0] = escByte
	for range maxEscapeReads {
		n, err := io.ReadFull(br, pair[:])
		*offset += int64(n)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return "", &CorruptedError{Offset: *offset}
		}
		if err != nil {
			return "", fmt.Errorf("failed to read frame: %w", err)
		}
		// the second byte of an escape unit is always zero
		seq = append(seq, pair[0])
		if pair[0] == 'm' {
			return string(seq), nil
		}
	}
	return "", &CorruptedError{Offset: *offset}
}
