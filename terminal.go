package unigreet

import (
	"os"
	"strconv"

	"github.com/blacktop/go-unigreet/pkg/csi"
	"github.com/muesli/termenv"
)

// Fallback terminal size when nothing can be detected
const (
	DefaultColumns = 80
	DefaultRows    = 24
)

// TerminalSize returns the current terminal size in character cells.
// It tries the tty ioctl, then a CSI 18t query, then COLUMNS/LINES and
// finally falls back to 80x24.
func TerminalSize() (cols, rows int) {
	if c, r, err := csi.QueryWindowSize(); err == nil && c > 0 && r > 0 {
		return c, r
	}
	if c, r, ok := csi.QueryWindowSizeChars(); ok {
		return c, r
	}
	if c, r, ok := envSize(); ok {
		return c, r
	}
	return DefaultColumns, DefaultRows
}

func envSize() (cols, rows int, ok bool) {
	c, err := strconv.Atoi(os.Getenv("COLUMNS"))
	if err != nil || c <= 0 {
		return 0, 0, false
	}
	r, err := strconv.Atoi(os.Getenv("LINES"))
	if err != nil || r <= 0 {
		return 0, 0, false
	}
	return c, r, true
}

// ColorDefault reports whether colored output should be on by default.
// Setting NO_COLOR turns it off.
func ColorDefault() bool {
	return !termenv.EnvNoColor()
}
