package unigreet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvSize(t *testing.T) {
	t.Setenv("COLUMNS", "132")
	t.Setenv("LINES", "43")
	cols, rows, ok := envSize()
	assert.True(t, ok)
	assert.Equal(t, 132, cols)
	assert.Equal(t, 43, rows)

	t.Setenv("LINES", "tall")
	_, _, ok = envSize()
	assert.False(t, ok)
}

func TestTerminalSizeIsPositive(t *testing.T) {
	cols, rows := TerminalSize()
	assert.Positive(t, cols)
	assert.Positive(t, rows)
}

func TestColorDefault(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "")
	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorDefault())

	t.Setenv("NO_COLOR", "")
	assert.True(t, ColorDefault())
}
