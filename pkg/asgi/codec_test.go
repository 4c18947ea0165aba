package asgi

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// units builds a little-endian byte stream from 16-bit values
func units(us ...uint16) []byte {
	b := make([]byte, 0, len(us)*2)
	for _, u := range us {
		b = append(b, byte(u), byte(u>>8))
	}
	return b
}

// escUnits encodes an escape sequence the way the encoder does
func escUnits(seq string) []byte {
	b := make([]byte, 0, len(seq)*2)
	for i := 0; i < len(seq); i++ {
		b = append(b, seq[i], 0)
	}
	return b
}

func encode(t *testing.T, runs ...Run) []byte {
	t.Helper()
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for _, r := range runs {
		require.NoError(t, WriteRun(enc, r))
	}
	require.NoError(t, enc.Flush())
	return buf.Bytes()
}

func TestEncoderByteLayout(t *testing.T) {
	got := encode(t, TextRun("A█\n"), EscapeRun("\x1b[0m"))

	want := []byte{
		0x41, 0x00, // A
		0x88, 0x25, // U+2588
		0x0a, 0x00, // \n
		0x1b, 0x00, '[', 0x00, '0', 0x00, 'm', 0x00,
	}
	assert.Equal(t, want, got)
}

func TestEncoderSupplementaryPlane(t *testing.T) {
	got := encode(t, TextRun("😀"))
	assert.Equal(t, units(0xd83d, 0xde00), got)
}

func TestEncoderErrors(t *testing.T) {
	tests := []struct {
		name string
		run  Run
		want error
	}{
		{name: "escape in text", run: TextRun("a\x1bb"), want: ErrEscapeInText},
		{name: "missing ESC", run: EscapeRun("[0m"), want: ErrInvalidEscape},
		{name: "missing terminator", run: EscapeRun("\x1b[0"), want: ErrInvalidEscape},
		{name: "bare ESC", run: EscapeRun("\x1b"), want: ErrInvalidEscape},
		{name: "too long", run: EscapeRun("\x1b[" + strings.Repeat("1;", 10) + "m"), want: ErrEscapeTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := NewEncoder(&bytes.Buffer{})
			assert.ErrorIs(t, WriteRun(enc, tt.run), tt.want)
		})
	}
}

func TestEncoderLongestEscape(t *testing.T) {
	// the longest truecolor SGR is 19 bytes after ESC
	seq := "\x1b[38;2;255;255;255m"
	got := encode(t, EscapeRun(seq))
	assert.Equal(t, escUnits(seq), got)

	var rec Recorder
	require.NoError(t, Decode(bytes.NewReader(got), &rec))
	assert.Equal(t, []Run{EscapeRun(seq)}, rec.Runs)
}

func TestRoundTrip(t *testing.T) {
	runs := []Run{
		TextRun("\n\n   "),
		EscapeRun("\x1b[38;2;255;0;0m"),
		TextRun("▗▖▄"),
		EscapeRun("\x1b[38;2;0;0;255m"),
		TextRun("⠁⣿\n   "),
		EscapeRun("\x1b[38;2;0;0;0m"),
		TextRun("█\n"),
		EscapeRun("\x1b[0m"),
		TextRun("\n"),
	}

	var rec Recorder
	require.NoError(t, Decode(bytes.NewReader(encode(t, runs...)), &rec))
	assert.Equal(t, runs, rec.Runs)
}

func TestDecodeTerminalBytes(t *testing.T) {
	data := encode(t, EscapeRun("\x1b[38;2;1;2;3m"), TextRun("██\n"), EscapeRun("\x1b[0m"))

	var out bytes.Buffer
	sink := NewTerminalSink(&out)
	require.NoError(t, Decode(bytes.NewReader(data), sink))
	require.NoError(t, sink.Flush())
	assert.Equal(t, "\x1b[38;2;1;2;3m██\n\x1b[0m", out.String())
}

func TestDecodeEmpty(t *testing.T) {
	var rec Recorder
	require.NoError(t, Decode(bytes.NewReader(nil), &rec))
	assert.Empty(t, rec.Runs)
}

func TestDecodeSkipsBOM(t *testing.T) {
	data := append(units(0xfeff), units('h', 'i')...)

	var rec Recorder
	require.NoError(t, Decode(bytes.NewReader(data), &rec))
	assert.Equal(t, []Run{TextRun("hi")}, rec.Runs)
}

func TestDecodeSurrogates(t *testing.T) {
	t.Run("pair", func(t *testing.T) {
		var rec Recorder
		require.NoError(t, Decode(bytes.NewReader(units(0xd83d, 0xde00)), &rec))
		assert.Equal(t, []Run{TextRun("😀")}, rec.Runs)
	})

	t.Run("lone high surrogate", func(t *testing.T) {
		var rec Recorder
		require.NoError(t, Decode(bytes.NewReader(units(0xd83d, 'x')), &rec))
		assert.Equal(t, []Run{TextRun("\uFFFDx")}, rec.Runs)
	})

	t.Run("lone low surrogate", func(t *testing.T) {
		var rec Recorder
		require.NoError(t, Decode(bytes.NewReader(units(0xde00)), &rec))
		assert.Equal(t, []Run{TextRun("\uFFFD")}, rec.Runs)
	})

	t.Run("high surrogate at end", func(t *testing.T) {
		var rec Recorder
		require.NoError(t, Decode(bytes.NewReader(units('a', 0xd83d)), &rec))
		assert.Equal(t, []Run{TextRun("a\uFFFD")}, rec.Runs)
	})
}

func TestDecodeOddTrailingByte(t *testing.T) {
	data := append(units('o', 'k'), 0x41)

	var rec Recorder
	require.NoError(t, Decode(bytes.NewReader(data), &rec))
	assert.Equal(t, []Run{TextRun("ok")}, rec.Runs)
}

func TestDecodeCorrupted(t *testing.T) {
	tests := []struct {
		name       string
		data       []byte
		wantOffset int64
		wantRuns   []Run
	}{
		{
			name:       "no terminator within 20 units",
			data:       append(units('a'), append(escUnits("\x1b"), bytes.Repeat([]byte{'1', 0}, 25)...)...),
			wantOffset: 2 + 2 + 40,
			wantRuns:   []Run{TextRun("a"), EscapeRun("\x1b[0m")},
		},
		{
			name:       "file ends after marker",
			data:       escUnits("\x1b"),
			wantOffset: 2,
			wantRuns:   []Run{EscapeRun("\x1b[0m")},
		},
		{
			name:       "file ends inside escape",
			data:       append(escUnits("\x1b[38;2"), ';'),
			wantOffset: 13,
			wantRuns:   []Run{EscapeRun("\x1b[0m")},
		},
		{
			name: "earlier runs are kept",
			data: append(
				encode(t, EscapeRun("\x1b[38;2;9;9;9m"), TextRun("█\n")),
				escUnits("\x1b[38")...,
			),
			wantOffset: int64(len(escUnits("\x1b[38;2;9;9;9m")) + 4 + 8),
			wantRuns: []Run{
				EscapeRun("\x1b[38;2;9;9;9m"),
				TextRun("█\n"),
				EscapeRun("\x1b[0m"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec Recorder
			err := Decode(bytes.NewReader(tt.data), &rec)

			var cerr *CorruptedError
			require.True(t, errors.As(err, &cerr), "want *CorruptedError, got %v", err)
			assert.Equal(t, tt.wantOffset, cerr.Offset)
			assert.Equal(t, tt.wantRuns, rec.Runs)
		})
	}
}

func TestCorruptedErrorMessage(t *testing.T) {
	err := &CorruptedError{Offset: 42}
	assert.Equal(t, "corrupted .asgi file (pos: 42)", err.Error())
}

func TestTeeSink(t *testing.T) {
	var a, b Recorder
	tee := NewTeeSink(&a, &b)
	require.NoError(t, tee.WriteText("x"))
	require.NoError(t, tee.WriteEscape("\x1b[0m"))
	require.NoError(t, tee.Flush())

	want := []Run{TextRun("x"), EscapeRun("\x1b[0m")}
	assert.Equal(t, want, a.Runs)
	assert.Equal(t, want, b.Runs)
}

func TestTeeSinkStopsOnError(t *testing.T) {
	var rec Recorder
	tee := NewTeeSink(NewEncoder(&bytes.Buffer{}), &rec)
	assert.ErrorIs(t, tee.WriteText("\x1b"), ErrEscapeInText)
	assert.Empty(t, rec.Runs)
}
