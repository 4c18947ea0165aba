/*
Package csi provides CSI (Control Sequence Introducer) queries for terminal geometry
*/
package csi

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// QueryTimeout is the default timeout for CSI queries
const QueryTimeout = 100 * time.Millisecond

// QueryWindowSizeChars queries the text area size in characters using CSI 18t
// returns: columns and rows, or 0,0,false if query fails
func QueryWindowSizeChars() (cols, rows int, ok bool) {
	if !QuerySupported() {
		return 0, 0, false
	}

	// Open controlling terminal
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return 0, 0, false
	}
	defer tty.Close()

	oldState, err := term.MakeRaw(int(tty.Fd()))
	if err != nil {
		return 0, 0, false
	}
	defer term.Restore(int(tty.Fd()), oldState)

	if _, err := tty.WriteString("\x1b[18t"); err != nil {
		return 0, 0, false
	}

	responseChan := make(chan [2]int, 1)
	go func() {
		buf := make([]byte, 64)
		n, err := tty.Read(buf)
		if err == nil && n > 0 {
			c, r, ok := ParseWindowSizeChars(string(buf[:n]))
			if ok {
				responseChan <- [2]int{c, r}
				return
			}
		}
		responseChan <- [2]int{0, 0}
	}()

	select {
	case result := <-responseChan:
		return result[0], result[1], result[0] > 0 && result[1] > 0
	case <-time.After(QueryTimeout):
		return 0, 0, false
	}
}

// ParseWindowSizeChars parses a CSI 18t reply: CSI 8 ; rows ; cols t
func ParseWindowSizeChars(response string) (cols, rows int, ok bool) {
	i := strings.Index(response, "[8;")
	if i < 0 {
		return 0, 0, false
	}
	parts := strings.Split(response[i+1:], ";")
	if len(parts) < 3 {
		return 0, 0, false
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &rows); err != nil {
		return 0, 0, false
	}
	if _, err := fmt.Sscanf(parts[2], "%dt", &cols); err != nil {
		return 0, 0, false
	}
	if cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	return cols, rows, true
}

// QueryWindowSize queries the terminal for its current window size
func QueryWindowSize() (cols, rows int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// QuerySupported checks if a terminal likely supports CSI queries
// This is a heuristic based on terminal type and environment
func QuerySupported() bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}
	// Some terminals are known to not support or have disabled CSI queries
	switch os.Getenv("TERM_PROGRAM") {
	case "Apple_Terminal":
		// Apple Terminal often has CSI queries disabled for security
		return false
	case "vscode":
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}
