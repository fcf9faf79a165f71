package popzy

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// State is a dialog's lifecycle state.
type State int

const (
	StateUnbuilt State = iota // no subtree
	StateOpen                 // on the stack, shown or about to be
	StateClosing              // off the stack, hide transition pending
	StateHidden               // closed with its subtree kept for reuse
)

func (s State) String() string {
	switch s {
	case StateUnbuilt:
		return "unbuilt"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	case StateHidden:
		return "hidden"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

const closeGlyph = "×"

// FooterButton is a button rendered in a dialog footer.
type FooterButton struct {
	Label    string
	Class    string // space separated class names
	Callback Callback
	Key      key.Binding // optional shortcut, active while the dialog is topmost
}

// ButtonOption configures a footer button.
type ButtonOption func(*FooterButton)

// ButtonKey binds keyboard shortcuts to a footer button.
func ButtonKey(keys ...string) ButtonOption {
	return func(b *FooterButton) {
		if len(keys) == 0 {
			return
		}
		b.Key = key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], b.Label))
	}
}

// Modal is one configured dialog. It is created by a Manager and may be opened
// and closed any number of times.
type Modal struct {
	id         string
	templateID string
	mgr        *Manager
	opts       options
	logger     zerolog.Logger
	err        error

	state     State
	root      *Node
	footer    *Node
	visible   bool
	holdsLock bool
	trans     *transition
	builds    int

	footerContent string
	buttons       []FooterButton
}

// ID returns the dialog's unique ID, also the ID of its backdrop node.
func (m *Modal) ID() string { return m.id }

// TemplateID returns the ID of the template the dialog is built from.
func (m *Modal) TemplateID() string { return m.templateID }

// State returns the lifecycle state.
func (m *Modal) State() State { return m.state }

// Root returns the backdrop node, nil while unbuilt.
func (m *Modal) Root() *Node { return m.root }

// Err reports why the dialog is unusable, nil for a working dialog.
func (m *Modal) Err() error { return m.err }

// Visible reports whether the show class is applied.
func (m *Modal) Visible() bool { return m.visible }

// FooterContent returns the footer text.
func (m *Modal) FooterContent() string { return m.footerContent }

// FooterButtons returns the footer buttons in order.
func (m *Modal) FooterButtons() []FooterButton {
	out := make([]FooterButton, len(m.buttons))
	copy(out, m.buttons)
	return out
}

// Allows reports whether the close method is enabled.
func (m *Modal) Allows(method CloseMethod) bool { return m.opts.closeMethods[method] }

// Open shows the dialog, building its subtree from the template if needed, and
// returns the subtree root so callers can query into it. Opening an open dialog
// is a no-op that returns the current root.
func (m *Modal) Open() (*Node, tea.Cmd) {
	if m.err != nil {
		m.logger.Error().Err(m.err).Msg("open ignored on unusable dialog")
		return nil, nil
	}
	if m.state == StateOpen {
		m.logger.Debug().Msg("dialog already open")
		return m.root, nil
	}

	if m.root == nil {
		m.build()
	}

	m.mgr.stack.Push(m)
	if !m.holdsLock {
		m.mgr.lock.Acquire()
		m.holdsLock = true
	}

	m.state = StateOpen
	m.visible = false
	m.root.RemoveClass(ClassVisible)
	m.mgr.addLayer(m)
	if m.Allows(CloseEscape) {
		m.mgr.listen(m)
	}

	gen := m.mgr.beginTransition(m, transitionOpening, func() tea.Cmd {
		m.logger.Debug().Msg("dialog opened")
		return invoke(m.opts.onOpen)
	})

	m.logger.Debug().Int("depth", m.mgr.stack.Len()).Msg("opening dialog")

	id := m.id
	return m.root, func() tea.Msg { return showMsg{id: id, gen: gen} }
}

// Close hides the dialog, dropping its subtree if it was configured to
// destroy on close.
func (m *Modal) Close() tea.Cmd {
	return m.CloseWith(m.opts.destroyOnClose)
}

// Destroy hides the dialog and drops its subtree.
func (m *Modal) Destroy() tea.Cmd {
	return m.CloseWith(true)
}

// CloseWith hides the dialog. When destroy is true the subtree is dropped once
// the hide transition finishes and the next Open rebuilds it. Closing a dialog
// that is not open is a no-op.
func (m *Modal) CloseWith(destroy bool) tea.Cmd {
	if m.err != nil {
		m.logger.Error().Err(m.err).Msg("close ignored on unusable dialog")
		return nil
	}
	if m.state != StateOpen {
		m.logger.Debug().Stringer("state", m.state).Msg("close ignored, dialog not open")
		return nil
	}

	if !m.mgr.stack.IsTop(m) {
		m.logger.Debug().Msg("closing dialog below the top of the stack")
	}
	m.mgr.stack.Remove(m)

	m.state = StateClosing
	m.visible = false
	m.root.RemoveClass(ClassVisible)
	m.mgr.unlisten(m)

	m.mgr.beginTransition(m, transitionClosing, func() tea.Cmd {
		return m.finishClose(destroy)
	})
	return m.mgr.startTransition(m)
}

func (m *Modal) finishClose(destroy bool) tea.Cmd {
	if destroy {
		m.root = nil
		m.footer = nil
		m.state = StateUnbuilt
	} else {
		m.state = StateHidden
	}
	m.mgr.removeLayer(m)

	cmd := invoke(m.opts.onClose)

	if m.holdsLock {
		m.holdsLock = false
		m.mgr.lock.Release()
	}

	m.logger.Debug().Bool("destroyed", destroy).Msg("dialog closed")
	return cmd
}

// SetFooterContent sets the footer text. A built footer updates immediately;
// otherwise the text is applied when the dialog is built.
func (m *Modal) SetFooterContent(text string) {
	m.footerContent = text
	m.renderFooter()
}

// AddFooterButton appends a footer button. A built footer updates immediately.
func (m *Modal) AddFooterButton(label, class string, cb Callback, opts ...ButtonOption) {
	b := FooterButton{Label: label, Class: class, Callback: cb}
	for _, opt := range opts {
		opt(&b)
	}
	m.buttons = append(m.buttons, b)
	m.renderFooter()
}

// build creates the subtree from the current template.
func (m *Modal) build() {
	t, ok := m.mgr.registry.Get(m.templateID)
	if !ok {
		m.logger.Error().Msg("template missing at build, rendering empty content")
		t = Template{ID: m.templateID}
	}

	backdrop := newNode(KindBackdrop, m.id, ClassBackdrop)
	container := newNode(KindContainer, m.id+"-container", append([]string{ClassContainer}, m.opts.classes...)...)

	title := m.opts.title
	if title == "" {
		title = t.Title
	}
	if title != "" {
		n := newNode(KindTitle, m.id+"-title", ClassTitle)
		n.Text = title
		container.Append(n)
	}

	if m.Allows(CloseButton) {
		n := newNode(KindCloseButton, m.id+"-close", ClassClose)
		n.Text = closeGlyph
		container.Append(n)
	}

	content := newNode(KindContent, m.id+"-content", ClassContent)
	nodes, err := buildContent(t, m.opts.data)
	if err != nil {
		m.logger.Error().Err(err).Msg("template render failed, showing source")
		raw := newNode(KindText, "")
		raw.Text = t.Body
		nodes = []*Node{raw}
	}
	content.Append(nodes...)
	container.Append(content)

	if m.opts.footer {
		m.footer = newNode(KindFooter, m.id+"-footer", ClassFooter)
		m.renderFooter()
		container.Append(m.footer)
	}

	backdrop.Append(container)
	m.root = backdrop
	m.builds++
}

// renderFooter rebuilds the footer node's children from the footer state.
func (m *Modal) renderFooter() {
	if m.footer == nil {
		return
	}

	m.footer.clear()
	if m.footerContent != "" {
		n := newNode(KindFooterText, m.id+"-footer-text")
		n.Text = m.footerContent
		m.footer.Append(n)
	}
	for i, b := range m.buttons {
		classes := append([]string{ClassButton}, strings.Fields(b.Class)...)
		n := newNode(KindButton, fmt.Sprintf("%s-button-%d", m.id, i), classes...)
		n.Text = b.Label
		n.button = i
		m.footer.Append(n)
	}
}

// handleEscape closes the dialog if it is the topmost one.
func (m *Modal) handleEscape(top *Modal) tea.Cmd {
	if m != top {
		return nil
	}
	return m.Close()
}

// pressButton runs the callback of the footer button at index i.
func (m *Modal) pressButton(i int) tea.Cmd {
	if i < 0 || i >= len(m.buttons) {
		return nil
	}
	m.logger.Debug().Str("button", m.buttons[i].Label).Msg("footer button pressed")
	return invoke(m.buttons[i].Callback)
}

// initModels runs Init on slot models attached since the last call.
func (m *Modal) initModels() tea.Cmd {
	if m.root == nil {
		return nil
	}
	var cmds []tea.Cmd
	m.root.Walk(func(n *Node) bool {
		if n.model != nil && !n.inited {
			n.inited = true
			cmds = append(cmds, n.model.Init())
		}
		return true
	})
	return tea.Batch(cmds...)
}

// hasModels reports whether any slot in the subtree hosts a model.
func (m *Modal) hasModels() bool {
	if m.root == nil {
		return false
	}
	return !m.root.Walk(func(n *Node) bool { return n.model == nil })
}

// updateModels forwards msg to every slot model in the subtree.
func (m *Modal) updateModels(msg tea.Msg) tea.Cmd {
	if m.root == nil {
		return nil
	}
	var cmds []tea.Cmd
	m.root.Walk(func(n *Node) bool {
		if n.model != nil {
			var cmd tea.Cmd
			n.model, cmd = n.model.Update(msg)
			cmds = append(cmds, cmd)
		}
		return true
	})
	return tea.Batch(cmds...)
}

func invoke(cb Callback) tea.Cmd {
	if cb == nil {
		return nil
	}
	return cb()
}
