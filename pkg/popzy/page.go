package popzy

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Page is a scrollable document with a one column scrollbar. It implements
// ScrollTarget: while locked it ignores scroll input and replaces the
// scrollbar with blank gutter columns so the content keeps its position.
type Page struct {
	vp     viewport.Model
	locked bool
	gutter int

	Track lipgloss.Style
	Thumb lipgloss.Style
}

// NewPage creates a page of the given outer size, scrollbar included.
func NewPage(width, height int) *Page {
	p := &Page{
		vp:    viewport.New(max(0, width-1), height),
		Track: lipgloss.NewStyle().Foreground(lipgloss.Color("#3b4261")),
		Thumb: lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89")),
	}
	return p
}

// SetSize resizes the page, scrollbar included.
func (p *Page) SetSize(width, height int) {
	p.vp.Width = max(0, width-1)
	p.vp.Height = height
}

// SetContent replaces the page text.
func (p *Page) SetContent(s string) { p.vp.SetContent(s) }

// Locked reports whether scrolling is suppressed.
func (p *Page) Locked() bool { return p.locked }

// YOffset returns the scroll position in rows.
func (p *Page) YOffset() int { return p.vp.YOffset }

// Overflows reports whether the content is taller than the page.
func (p *Page) Overflows() bool {
	return p.vp.TotalLineCount() > p.vp.Height
}

// SetScrollLocked implements ScrollTarget.
func (p *Page) SetScrollLocked(locked bool, gutter int) {
	p.locked = locked
	p.gutter = gutter
}

// MeasureScrollbar implements ScrollTarget. It renders an overflowing probe
// and returns the difference between its width with and without the scrollbar.
func (p *Page) MeasureScrollbar() int {
	probe := viewport.New(4, 2)
	probe.SetContent(strings.Repeat("x\n", 4))
	with := lipgloss.Width(p.frame(probe, false, 0))
	return with - lipgloss.Width(probe.View())
}

// Update handles scroll input. Key and mouse messages are dropped while the
// page is locked.
func (p *Page) Update(msg tea.Msg) tea.Cmd {
	if p.locked {
		switch msg.(type) {
		case tea.KeyMsg, tea.MouseMsg:
			return nil
		}
	}
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return cmd
}

// View renders the page.
func (p *Page) View() string {
	return p.frame(p.vp, p.locked, p.gutter)
}

func (p *Page) frame(vp viewport.Model, locked bool, gutter int) string {
	body := vp.View()
	if vp.TotalLineCount() <= vp.Height {
		return body
	}
	if locked {
		if gutter <= 0 {
			return body
		}
		col := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", gutter)+"\n", vp.Height), "\n")
		return lipgloss.JoinHorizontal(lipgloss.Top, body, col)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, body, p.scrollbar(vp))
}

func (p *Page) scrollbar(vp viewport.Model) string {
	h := vp.Height
	if h < 1 {
		return ""
	}
	total := max(1, vp.TotalLineCount())

	thumb := min(h, max(1, h*h/total))
	maxOffset := max(1, total-h)
	pos := min(h-thumb, max(0, vp.YOffset*(h-thumb)/maxOffset))

	track := p.Track.Render("│")
	bar := p.Thumb.Render("┃")
	lines := make([]string, h)
	for i := range h {
		if i >= pos && i < pos+thumb {
			lines[i] = bar
		} else {
			lines[i] = track
		}
	}
	return strings.Join(lines, "\n")
}
