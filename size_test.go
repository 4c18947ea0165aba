package unigreet

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseSize(t *testing.T) {
	tests := []struct {
		name    string
		srcW    int
		srcH    int
		lines   int
		charset Charset
		want    image.Point
	}{
		{name: "square block", srcW: 4, srcH: 4, lines: 1, charset: Block, want: image.Pt(4, 2)},
		{name: "landscape block", srcW: 300, srcH: 200, lines: 30, charset: Block, want: image.Pt(180, 60)},
		{name: "braille", srcW: 640, srcH: 480, lines: 20, charset: Braille, want: image.Pt(104, 80)},
		{name: "narrow clamps width", srcW: 1, srcH: 100, lines: 1, charset: Block, want: image.Pt(4, 2)},
		{name: "zero lines clamps", srcW: 100, srcH: 50, lines: 0, charset: Braille, want: image.Pt(4, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BaseSize(tt.srcW, tt.srcH, tt.lines, tt.charset)
			assert.Equal(t, tt.want, got)

			ww, wh := tt.charset.Window()
			assert.Zero(t, got.X%ww, "width must be a multiple of the window")
			assert.Zero(t, got.Y%wh, "height must be a multiple of the window")
		})
	}
}

func TestAutofit(t *testing.T) {
	tests := []struct {
		name    string
		srcW    int
		srcH    int
		charset Charset
		cols    int
		rows    int
		want    int
	}{
		{name: "block", srcW: 100, srcH: 50, charset: Block, cols: 80, rows: 24, want: 20},
		{name: "braille counts double width", srcW: 100, srcH: 50, charset: Braille, cols: 80, rows: 24, want: 20},
		{name: "tall image limited by rows", srcW: 10, srcH: 100, charset: Block, cols: 200, rows: 50, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Autofit(tt.srcW, tt.srcH, tt.charset, tt.cols, tt.rows)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAutofitNoFit(t *testing.T) {
	tests := []struct {
		name string
		srcW int
		srcH int
		cols int
		rows int
	}{
		{name: "extreme aspect ratio", srcW: 10000, srcH: 1, cols: 80, rows: 24},
		{name: "no columns", srcW: 10, srcH: 10, cols: 0, rows: 24},
		{name: "no rows", srcW: 10, srcH: 10, cols: 80, rows: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Autofit(tt.srcW, tt.srcH, Block, tt.cols, tt.rows)
			assert.ErrorIs(t, err, ErrNoFit)
		})
	}
}
