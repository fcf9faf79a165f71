package popzy

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// countModel records the messages it receives.
type countModel struct {
	inits   int
	updates []tea.Msg
}

func (m *countModel) Init() tea.Cmd { m.inits++; return nil }

func (m *countModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.updates = append(m.updates, msg)
	return m, nil
}

func (m *countModel) View() string { return "[form]" }

func testRegistry() *Registry {
	return NewRegistry(
		Template{ID: "a", Title: "Alpha", Body: "alpha body"},
		Template{ID: "b", Body: "beta body"},
		Template{ID: "form", Body: "before\n{{ slot \"login-form\" }}\nafter"},
	)
}

// newTestManager returns a manager whose transitions complete on the next turn.
func newTestManager(t *testing.T, opts ...ManagerOption) (*Manager, *fakeTarget) {
	t.Helper()
	target := &fakeTarget{width: 1}
	base := []ManagerOption{
		WithTransition(TransitionConfig{ReducedMotion: true}),
		WithScrollTarget(target),
	}
	mgr := NewManager(testRegistry(), append(base, opts...)...)
	mgr.SetSize(80, 24)
	return mgr, target
}

func run(mgr *Manager, cmd tea.Cmd) []tea.Msg {
	return mgr.Settle(cmd)
}

func open(t *testing.T, mgr *Manager, d *Modal) *Node {
	t.Helper()
	root, cmd := d.Open()
	run(mgr, cmd)
	return root
}

func press(mgr *Manager, msg tea.Msg) bool {
	handled, cmd := mgr.Update(msg)
	run(mgr, cmd)
	return handled
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}
