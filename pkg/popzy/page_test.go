package popzy

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func tallContent(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "line"
	}
	return strings.Join(lines, "\n")
}

func TestPage_Scrollbar(t *testing.T) {
	p := NewPage(20, 3)
	p.SetContent(tallContent(10))

	view := p.View()
	assert.True(t, p.Overflows())
	assert.Equal(t, 20, lipgloss.Width(view))
	assert.Contains(t, view, "┃")
}

func TestPage_NoScrollbarWhenContentFits(t *testing.T) {
	p := NewPage(20, 3)
	p.SetContent(tallContent(2))

	view := p.View()
	assert.False(t, p.Overflows())
	assert.NotContains(t, view, "│")
	assert.NotContains(t, view, "┃")
}

func TestPage_LockKeepsWidth(t *testing.T) {
	p := NewPage(20, 3)
	p.SetContent(tallContent(10))

	p.SetScrollLocked(true, p.MeasureScrollbar())
	view := p.View()

	assert.True(t, p.Locked())
	assert.NotContains(t, view, "┃")
	assert.NotContains(t, view, "│")
	assert.Equal(t, 20, lipgloss.Width(view))
}

func TestPage_LockIgnoresScrollInput(t *testing.T) {
	p := NewPage(20, 3)
	p.SetContent(tallContent(10))
	down := tea.KeyMsg{Type: tea.KeyDown}

	p.SetScrollLocked(true, 1)
	p.Update(down)
	assert.Equal(t, 0, p.YOffset())

	p.SetScrollLocked(false, 1)
	p.Update(down)
	assert.Equal(t, 1, p.YOffset())
}

func TestPage_MeasureScrollbar(t *testing.T) {
	assert.Equal(t, 1, NewPage(10, 5).MeasureScrollbar())
}

func TestPage_WithManager(t *testing.T) {
	p := NewPage(40, 5)
	p.SetContent(tallContent(20))
	mgr := NewManager(testRegistry(),
		WithTransition(TransitionConfig{ReducedMotion: true}),
		WithScrollTarget(p),
	)

	a := mgr.New("a")
	open(t, mgr, a)
	assert.True(t, p.Locked())

	run(mgr, a.Close())
	assert.False(t, p.Locked())
}
