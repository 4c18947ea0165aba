package asgi

import (
	"bufio"
	"io"
)

// Sink receives rendered output one unit at a time
type Sink interface {
	// WriteText writes printable characters (never ESC)
	WriteText(s string) error
	// WriteEscape writes one complete SGR sequence
	WriteEscape(seq string) error
	// Flush pushes buffered output to the underlying writer
	Flush() error
}

// TerminalSink writes output bytes unchanged, as a terminal expects them
type TerminalSink struct {
	w *bufio.Writer
}

// NewTerminalSink creates a sink writing raw UTF-8 and escape bytes to w
func NewTerminalSink(w io.Writer) *TerminalSink {
	return &TerminalSink{w: bufio.NewWriter(w)}
}

// WriteText writes s as UTF-8
func (t *TerminalSink) WriteText(s string) error {
	_, err := t.w.WriteString(s)
	return err
}

// WriteEscape writes the escape sequence bytes
func (t *TerminalSink) WriteEscape(seq string) error {
	_, err := t.w.WriteString(seq)
	return err
}

// Flush flushes the buffered output
func (t *TerminalSink) Flush() error {
	return t.w.Flush()
}

// TeeSink duplicates every unit to all of its sinks before returning
type TeeSink struct {
	sinks []Sink
}

// NewTeeSink creates a sink that forwards to each of sinks in order
func NewTeeSink(sinks ...Sink) *TeeSink {
	return &TeeSink{sinks: sinks}
}

func (t *TeeSink) WriteText(s string) error {
	for _, s2 := range t.sinks {
		if err := s2.WriteText(s); err != nil {
			return err
		}
	}
	return nil
}

func (t *TeeSink) WriteEscape(seq string) error {
	for _, s := range t.sinks {
		if err := s.WriteEscape(seq); err != nil {
			return err
		}
	}
	return nil
}

func (t *TeeSink) Flush() error {
	for _, s := range t.sinks {
		if err := s.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// WriteRun sends a run to the matching sink method
func WriteRun(s Sink, r Run) error {
	switch r := r.(type) {
	case TextRun:
		return s.WriteText(string(r))
	case EscapeRun:
		return s.WriteEscape(string(r))
	}
	return nil
}
