package popzy

import (
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/hay-kot/popzy/pkg/randid"
)

// Manager owns the dialog stack, the scroll lock, and input routing for every
// dialog it creates. Embed it in a Bubble Tea model: pass messages to Update
// before the page sees them and wrap the page view with View.
type Manager struct {
	registry *Registry
	logger   zerolog.Logger
	styles   StyleSheet
	keys     KeyMap
	trans    TransitionConfig
	clock    func() time.Time
	markdown *markdownRenderer

	stack     *Stack[*Modal]
	lock      *ScrollLock
	modals    map[string]*Modal
	layers    []*Modal // render order, bottom first
	listeners []*Modal // escape listeners in registration order
	gen       uint64

	width  int
	height int
}

// ManagerOption configures a Manager.
type ManagerOption func(*managerConfig)

type managerConfig struct {
	logger        zerolog.Logger
	styles        StyleSheet
	keys          KeyMap
	trans         TransitionConfig
	target        ScrollTarget
	clock         func() time.Time
	markdownStyle string
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) ManagerOption {
	return func(c *managerConfig) { c.logger = l }
}

// WithStyleSheet merges sheet over the default style sheet.
func WithStyleSheet(sheet StyleSheet) ManagerOption {
	return func(c *managerConfig) { c.styles = c.styles.Merge(sheet) }
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) ManagerOption {
	return func(c *managerConfig) { c.keys = k }
}

// WithTransition sets the animation timing.
func WithTransition(t TransitionConfig) ManagerOption {
	return func(c *managerConfig) { c.trans = t }
}

// WithScrollTarget sets the page locked while dialogs are open.
func WithScrollTarget(t ScrollTarget) ManagerOption {
	return func(c *managerConfig) { c.target = t }
}

// WithClock overrides time.Now for animation progress.
func WithClock(now func() time.Time) ManagerOption {
	return func(c *managerConfig) { c.clock = now }
}

// WithMarkdownStyle sets the glamour style used for markdown templates.
func WithMarkdownStyle(style string) ManagerOption {
	return func(c *managerConfig) { c.markdownStyle = style }
}

// NewManager creates a Manager that builds dialogs from registry.
func NewManager(registry *Registry, opts ...ManagerOption) *Manager {
	cfg := managerConfig{
		logger:        zerolog.Nop(),
		styles:        DefaultStyleSheet(),
		keys:          DefaultKeyMap(),
		trans:         DefaultTransition(),
		clock:         time.Now,
		markdownStyle: DefaultMarkdownStyle,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if registry == nil {
		registry = NewRegistry()
	}

	logger := cfg.logger.With().Str("component", "popzy").Logger()
	return &Manager{
		registry: registry,
		logger:   logger,
		styles:   cfg.styles,
		keys:     cfg.keys,
		trans:    cfg.trans,
		clock:    cfg.clock,
		markdown: newMarkdownRenderer(cfg.markdownStyle),
		stack:    NewStack[*Modal](),
		lock:     NewScrollLock(cfg.target, logger),
		modals:   make(map[string]*Modal),
	}
}

// Registry returns the template registry.
func (m *Manager) Registry() *Registry { return m.registry }

// KeyMap returns the key bindings.
func (m *Manager) KeyMap() KeyMap { return m.keys }

// New creates a dialog from the template registered under templateID. When no
// such template exists the error is logged and the returned dialog is inert:
// Err reports ErrTemplateNotFound and every operation on it is a no-op.
func (m *Manager) New(templateID string, opts ...Option) *Modal {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &Modal{
		id:         randid.New("popzy"),
		templateID: templateID,
		mgr:        m,
		opts:       o,
		state:      StateUnbuilt,
	}
	d.logger = m.logger.With().Str("dialog", d.id).Str("template", templateID).Logger()

	if _, ok := m.registry.Get(templateID); !ok {
		d.err = fmt.Errorf("%w: %q", ErrTemplateNotFound, templateID)
		d.logger.Error().Err(d.err).Msg("cannot create dialog")
		return d
	}

	m.modals[d.id] = d
	return d
}

// Top returns the topmost open dialog.
func (m *Manager) Top() (*Modal, bool) { return m.stack.Peek() }

// Depth returns the number of open dialogs.
func (m *Manager) Depth() int { return m.stack.Len() }

// Open returns the open dialogs, bottom first.
func (m *Manager) Open() []*Modal { return m.stack.Items() }

// Locked reports whether the page scroll lock is held.
func (m *Manager) Locked() bool { return m.lock.Locked() }

// Modal looks up a dialog by ID.
func (m *Manager) Modal(id string) (*Modal, bool) {
	d, ok := m.modals[id]
	return d, ok
}

// SetSize records the screen size dialogs are centered in.
func (m *Manager) SetSize(width, height int) {
	m.width, m.height = width, height
}

// Update routes msg to the dialogs. handled is true when the message was
// consumed and should not reach the page: transition messages, mouse input
// while a dialog is open, and the keys the topmost dialog uses (see
// handleKey). Other messages are forwarded to the
// topmost dialog's slot models and left for the page as well.
func (m *Manager) Update(msg tea.Msg) (handled bool, cmd tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return false, m.forward(msg)
	case showMsg:
		return true, m.handleShow(msg)
	case frameMsg:
		return true, m.handleFrame(msg)
	case transitionEndMsg:
		return true, m.handleEnd(msg)
	case tea.KeyMsg:
		if m.stack.IsEmpty() {
			return false, nil
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.stack.IsEmpty() {
			return false, nil
		}
		return true, m.handleMouse(msg)
	}
	return false, m.forward(msg)
}

func (m *Manager) forward(msg tea.Msg) tea.Cmd {
	top, ok := m.stack.Peek()
	if !ok {
		return nil
	}
	return top.updateModels(msg)
}

// handleKey consumes the dialog keys and every key the topmost dialog's slot
// models could use. Other keys are left unhandled so the host can bind them,
// for example to open another dialog on top.
func (m *Manager) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	top, _ := m.stack.Peek()
	switch {
	case key.Matches(msg, m.keys.Escape):
		return true, m.escape()
	case key.Matches(msg, m.keys.Close):
		if top.Allows(CloseButton) {
			return true, top.Close()
		}
		return true, nil
	}

	for i, b := range top.buttons {
		if key.Matches(msg, b.Key) {
			return true, top.pressButton(i)
		}
	}
	if top.hasModels() {
		return true, top.updateModels(msg)
	}
	return false, nil
}

// escape delivers the escape key to every listener. The topmost dialog is
// captured once so a listener closing it cannot promote the next dialog into
// also closing on the same key press.
func (m *Manager) escape() tea.Cmd {
	top, ok := m.stack.Peek()
	if !ok {
		return nil
	}
	var cmds []tea.Cmd
	for _, l := range slices.Clone(m.listeners) {
		cmds = append(cmds, l.handleEscape(top))
	}
	return tea.Batch(cmds...)
}

func (m *Manager) handleMouse(msg tea.MouseMsg) tea.Cmd {
	top, _ := m.stack.Peek()
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || top.root == nil {
		return top.updateModels(msg)
	}

	w, h := m.screen("")
	l := top.layout(w, h)
	switch {
	case l.close.contains(msg.X, msg.Y):
		return top.Close()
	case !l.container.contains(msg.X, msg.Y):
		if top.Allows(CloseOverlay) {
			return top.Close()
		}
		return nil
	}
	for _, b := range l.buttons {
		if b.rect.contains(msg.X, msg.Y) {
			return top.pressButton(b.index)
		}
	}
	return top.updateModels(msg)
}

// View renders the open dialogs over background.
func (m *Manager) View(background string) string {
	if len(m.layers) == 0 {
		return background
	}

	w, h := m.screen(background)
	dim := m.styles.Style(ClassBackdrop)
	out := background
	for _, d := range m.layers {
		if !m.rendered(d) {
			continue
		}
		l := d.layout(w, h)
		out = composite(out, l.view, l.container.x, l.container.y, w, h, dim)
	}
	return out
}

// rendered reports whether d is drawn this frame. A dialog is drawn once its
// show class is applied and while its hide animation runs.
func (m *Manager) rendered(d *Modal) bool {
	if d.root == nil {
		return false
	}
	if d.visible {
		return true
	}
	return d.state == StateClosing && d.trans != nil && d.trans.running && !d.trans.done
}

func (m *Manager) screen(background string) (int, int) {
	if m.width > 0 && m.height > 0 {
		return m.width, m.height
	}
	return lipgloss.Width(background), lipgloss.Height(background)
}

func (m *Manager) addLayer(d *Modal) {
	m.removeLayer(d)
	m.layers = append(m.layers, d)
}

func (m *Manager) removeLayer(d *Modal) {
	m.layers = slices.DeleteFunc(m.layers, func(x *Modal) bool { return x == d })
}

func (m *Manager) listen(d *Modal) {
	if !slices.Contains(m.listeners, d) {
		m.listeners = append(m.listeners, d)
	}
}

func (m *Manager) unlisten(d *Modal) {
	m.listeners = slices.DeleteFunc(m.listeners, func(x *Modal) bool { return x == d })
}

// Settle runs cmd and every command it produces, feeding dialog messages back
// into the manager, and returns the other messages produced. Commands run
// synchronously, so timers block: use it with instant transitions, for example
// to render a static preview.
func (m *Manager) Settle(cmd tea.Cmd) []tea.Msg {
	var out []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case showMsg, frameMsg, transitionEndMsg:
			_, next := m.Update(msg)
			queue = append(queue, next)
		default:
			out = append(out, msg)
		}
	}
	return out
}
