package popzy

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// composite draws fg over background with its top-left corner at (x, y). Every
// background cell outside fg is dimmed with dim. ANSI codes are stripped from
// the background first so the dim color applies uniformly.
func composite(background, fg string, x, y, width, height int, dim lipgloss.Style) string {
	bgLines := strings.Split(background, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}
	fgLines := strings.Split(fg, "\n")
	fgWidth := lipgloss.Width(fg)

	out := make([]string, len(bgLines))
	for i, line := range bgLines {
		row := i - y
		if row < 0 || row >= len(fgLines) {
			out[i] = dimLine(line, dim)
			continue
		}
		out[i] = compositeRow(line, fgLines[row], x, fgWidth, width, dim)
	}
	return strings.Join(out, "\n")
}

func dimLine(s string, dim lipgloss.Style) string {
	stripped := ansi.Strip(s)
	if stripped == "" {
		return ""
	}
	return dim.Render(stripped)
}

// compositeRow returns the dimmed background left of x, the foreground line
// padded to fgWidth, then the dimmed background right of it.
func compositeRow(bgLine, fgLine string, x, fgWidth, totalWidth int, dim lipgloss.Style) string {
	var b strings.Builder

	stripped := ansi.Strip(bgLine)
	bgWidth := ansi.StringWidth(stripped)

	if x > 0 {
		left := ansi.Truncate(stripped, x, "")
		b.WriteString(dimLine(left, dim))
		if w := ansi.StringWidth(left); w < x {
			b.WriteString(strings.Repeat(" ", x-w))
		}
	}

	b.WriteString(fgLine)
	if w := ansi.StringWidth(fgLine); w < fgWidth {
		b.WriteString(strings.Repeat(" ", fgWidth-w))
	}

	right := x + fgWidth
	if right < bgWidth && (totalWidth <= 0 || right < totalWidth) {
		b.WriteString(dimLine(ansi.Cut(stripped, right, bgWidth), dim))
	}
	return b.String()
}
