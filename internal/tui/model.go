package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hay-kot/popzy/internal/core/config"
	"github.com/hay-kot/popzy/internal/styles"
	"github.com/hay-kot/popzy/pkg/popzy"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options configures the TUI behavior.
type Options struct {
	Watcher *popzy.Watcher // reloads file backed templates (optional)
	Open    string         // dialog opened on start (optional)
	Logger  *zerolog.Logger
}

// Model is the main Bubble Tea model for the demo page.
type Model struct {
	cfg      *config.Config
	mgr      *popzy.Manager
	page     *popzy.Page
	dialogs  *dialogSet
	watcher  *popzy.Watcher
	keys     keyMap
	help     help.Model
	logger   zerolog.Logger
	startID  string
	status   string
	width    int
	height   int
	quitting bool
}

// New creates the demo model for the configured dialogs.
func New(cfg *config.Config, reg *popzy.Registry, opts Options) (Model, error) {
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	logger = logger.With().Str("component", "tui").Logger()

	page := popzy.NewPage(defaultWidth, defaultHeight-chromeHeight())
	mgr := popzy.NewManager(reg,
		popzy.WithLogger(logger),
		popzy.WithStyleSheet(cfg.Styles),
		popzy.WithKeyMap(cfg.KeyMap()),
		popzy.WithTransition(cfg.TransitionConfig()),
		popzy.WithMarkdownStyle(cfg.MarkdownStyle),
		popzy.WithScrollTarget(page),
	)

	dialogs, err := buildDialogs(mgr, cfg.Dialogs, logger)
	if err != nil {
		return Model{}, fmt.Errorf("build dialogs: %w", err)
	}

	m := Model{
		cfg:     cfg,
		mgr:     mgr,
		page:    page,
		dialogs: dialogs,
		watcher: opts.Watcher,
		keys:    defaultKeyMap(),
		help:    help.New(),
		logger:  logger,
		startID: opts.Open,
	}
	m.page.SetContent(m.pageContent())
	m = m.resize(defaultWidth, defaultHeight)
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.Listen())
	}
	if m.startID != "" {
		cmds = append(cmds, m.dialogs.open(m.startID))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.resize(msg.Width, msg.Height)
		_, cmd := m.mgr.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	case statusMsg:
		m.status = string(msg)
		return m, nil
	case loginSubmittedMsg:
		m.logger.Info().Str("email", msg.Email).Int("password_len", len(msg.Password)).Msg("login submitted")
		m.status = "Signed in as " + msg.Email
		if dlg, ok := m.dialogs.hosting(LoginSlot); ok {
			return m, dlg.Close()
		}
		return m, nil
	case popzy.TemplatesReloadedMsg:
		switch {
		case msg.Err != nil:
			m.status = "Template reload failed: " + msg.Err.Error()
		case len(msg.IDs) > 0:
			m.status = "Reloaded " + strings.Join(msg.IDs, ", ")
		case len(msg.Removed) > 0:
			m.status = "Removed " + strings.Join(msg.Removed, ", ")
		}
		return m, m.watcher.Listen()
	}

	handled, cmd := m.mgr.Update(msg)
	if handled {
		return m, cmd
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Quit) && m.mgr.Depth() == 0:
			m.quitting = true
			return m, tea.Quit
		case key.Matches(k, m.keys.Open):
			m.status = ""
			idx := int(k.String()[0] - '1')
			return m, tea.Batch(cmd, m.dialogs.openAt(idx))
		}
	}

	return m, tea.Batch(cmd, m.page.Update(msg))
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := styles.HelpStyle.Render(m.help.View(m.keys))
	if m.status != "" {
		footer = styles.StatusStyle.Render(m.status)
	}

	base := lipgloss.JoinVertical(lipgloss.Left,
		styles.BannerStyle.Render(styles.Banner),
		"",
		m.page.View(),
		footer,
	)
	return m.mgr.View(base)
}

func (m Model) resize(width, height int) Model {
	m.width, m.height = width, height
	m.page.SetSize(width, max(1, height-chromeHeight()))
	m.mgr.SetSize(width, height)
	m.help.Width = width
	return m
}

// chromeHeight is the number of rows around the page: banner, spacer, footer.
func chromeHeight() int {
	return lipgloss.Height(styles.Banner) + 2
}

func (m Model) pageContent() string {
	var b strings.Builder
	b.WriteString(styles.HeadingStyle.Render("Dialogs"))
	b.WriteString("\n\n")
	for _, line := range m.dialogs.describe() {
		b.WriteString(styles.TextStyle.Render("  " + line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.TextStyle.Render("Press a number to open a dialog. Dialogs stack; escape closes the topmost one."))
	b.WriteString("\n")
	b.WriteString(styles.TextStyle.Render("The page stops scrolling while any dialog is open."))
	b.WriteString("\n\n")
	b.WriteString(styles.HeadingStyle.Render("Filler"))
	b.WriteString("\n\n")
	for i := range 40 {
		fmt.Fprintf(&b, "%2d  Lorem ipsum dolor sit amet, consectetur adipiscing elit.\n", i+1)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Preview renders the page with one dialog open, as a static frame of the
// given size.
func Preview(cfg *config.Config, reg *popzy.Registry, dialogID string, width, height int) (string, error) {
	c := *cfg
	c.Transition.ReducedMotion = true

	nop := zerolog.Nop()
	m, err := New(&c, reg, Options{Logger: &nop})
	if err != nil {
		return "", err
	}
	m = m.resize(width, height)

	dlg, ok := m.dialogs.byID[dialogID]
	if !ok {
		return "", fmt.Errorf("dialog %q not found", dialogID)
	}
	if err := dlg.Err(); err != nil {
		return "", fmt.Errorf("dialog %q: %w", dialogID, err)
	}

	m.mgr.Settle(m.dialogs.open(dialogID))
	return m.View(), nil
}
