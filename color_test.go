package unigreet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageColor(t *testing.T) {
	red := RGB{255, 0, 0}
	tests := []struct {
		name    string
		samples []RGB
		lit     []bool
		want    RGB
	}{
		{
			name:    "all unlit is black",
			samples: []RGB{red, red, red, red},
			lit:     []bool{false, false, false, false},
			want:    RGB{},
		},
		{
			name:    "single lit pixel is unchanged",
			samples: []RGB{{1, 2, 3}, {200, 100, 50}, {9, 9, 9}, {7, 7, 7}},
			lit:     []bool{false, true, false, false},
			want:    RGB{200, 100, 50},
		},
		{
			name:    "averages only lit pixels",
			samples: []RGB{{100, 0, 0}, {200, 0, 0}, {0, 0, 0}, {0, 0, 0}},
			lit:     []bool{true, true, false, false},
			want:    RGB{150, 0, 0},
		},
		{
			name:    "mean truncates",
			samples: []RGB{{1, 2, 255}, {2, 2, 254}, {2, 3, 254}},
			lit:     []bool{true, true, true},
			want:    RGB{1, 2, 254},
		},
		{
			name:    "eight samples",
			samples: []RGB{{8, 8, 8}, {8, 8, 8}, {8, 8, 8}, {8, 8, 8}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
			lit:     []bool{true, true, true, true, true, true, true, true},
			want:    RGB{4, 4, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AverageColor(tt.samples, tt.lit))
		})
	}
}

func TestSGR(t *testing.T) {
	assert.Equal(t, "\x1b[38;2;0;0;0m", RGB{}.SGR())
	assert.Equal(t, "\x1b[38;2;255;128;7m", RGB{255, 128, 7}.SGR())
	assert.Equal(t, RGB{9, 9, 9}, Gray(9))
}
