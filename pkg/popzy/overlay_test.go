package popzy

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposite(t *testing.T) {
	background := "abcdefgh\nijklmnop\nqrstuvwx"
	fg := "12\n34"

	out := ansi.Strip(composite(background, fg, 3, 1, 8, 3, lipgloss.NewStyle()))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "abcdefgh", lines[0])
	assert.Equal(t, "ijk12nop", lines[1])
	assert.Equal(t, "qrs34vwx", lines[2])
}

func TestComposite_PadsShortBackground(t *testing.T) {
	out := ansi.Strip(composite("ab", "XY", 4, 2, 8, 3, lipgloss.NewStyle()))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "ab", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "    XY", lines[2])
}

func TestComposite_PadsRaggedForeground(t *testing.T) {
	out := ansi.Strip(composite("abcdefgh\nijklmnop", "1234\n5", 1, 0, 8, 2, lipgloss.NewStyle()))
	lines := strings.Split(out, "\n")

	assert.Equal(t, "a1234fgh", lines[0])
	assert.Equal(t, "i5   nop", lines[1])
}
