package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/hay-kot/popzy/internal/core/config"
	"github.com/hay-kot/popzy/pkg/popzy"
)

// statusMsg replaces the status line.
type statusMsg string

// dialogSet holds the configured dialogs in config order.
type dialogSet struct {
	order  []string
	byID   map[string]*popzy.Modal
	logger zerolog.Logger
}

// buildDialogs creates a dialog for every configured dialog. Dialogs whose
// template is missing are kept; they are inert and log when used.
func buildDialogs(mgr *popzy.Manager, dialogs []config.Dialog, logger zerolog.Logger) (*dialogSet, error) {
	s := &dialogSet{
		byID:   make(map[string]*popzy.Modal, len(dialogs)),
		logger: logger,
	}

	for _, d := range dialogs {
		opts, err := d.Options()
		if err != nil {
			return nil, err
		}

		id := d.ID
		opts = append(opts,
			popzy.OnOpen(func() tea.Cmd {
				logger.Info().Str("dialog", id).Msgf("%s opened", id)
				return nil
			}),
			popzy.OnClose(func() tea.Cmd {
				logger.Info().Str("dialog", id).Msgf("%s closed", id)
				return nil
			}),
		)

		dlg := mgr.New(d.Template, opts...)
		if d.FooterContent != "" {
			dlg.SetFooterContent(d.FooterContent)
		}
		for _, b := range d.Buttons {
			var bopts []popzy.ButtonOption
			if b.Key != "" {
				bopts = append(bopts, popzy.ButtonKey(b.Key))
			}
			dlg.AddFooterButton(b.Label, b.Class, s.action(dlg, b.Action), bopts...)
		}

		s.order = append(s.order, d.ID)
		s.byID[d.ID] = dlg
	}

	return s, nil
}

// action resolves a configured button action against dlg.
func (s *dialogSet) action(dlg *popzy.Modal, action string) popzy.Callback {
	switch {
	case action == config.ActionClose:
		return dlg.Close
	case action == config.ActionDestroy:
		return dlg.Destroy
	case strings.HasPrefix(action, config.ActionOpenPrefix):
		target := strings.TrimPrefix(action, config.ActionOpenPrefix)
		return func() tea.Cmd { return s.open(target) }
	case strings.HasPrefix(action, config.ActionNotifyPrefix):
		text := strings.TrimPrefix(action, config.ActionNotifyPrefix)
		return func() tea.Cmd {
			return func() tea.Msg { return statusMsg(text) }
		}
	default:
		return nil
	}
}

// open opens the dialog with the given config ID and attaches the login form
// to its login slot if the template declares one.
func (s *dialogSet) open(id string) tea.Cmd {
	dlg, ok := s.byID[id]
	if !ok {
		s.logger.Warn().Str("dialog", id).Msg("unknown dialog")
		return nil
	}

	root, cmd := dlg.Open()
	if root == nil {
		return cmd
	}
	if slot := root.Find(LoginSlot); slot != nil && slot.Model() == nil {
		slot.SetModel(NewLoginForm())
	}
	return cmd
}

// openAt opens the i-th configured dialog.
func (s *dialogSet) openAt(i int) tea.Cmd {
	if i < 0 || i >= len(s.order) {
		return nil
	}
	return s.open(s.order[i])
}

// hosting returns the open dialog whose subtree contains the slot.
func (s *dialogSet) hosting(slot string) (*popzy.Modal, bool) {
	for _, id := range s.order {
		dlg := s.byID[id]
		if dlg.State() != popzy.StateOpen || dlg.Root() == nil {
			continue
		}
		if dlg.Root().Find(slot) != nil {
			return dlg, true
		}
	}
	return nil, false
}

// describe lists the dialogs for the page text.
func (s *dialogSet) describe() []string {
	lines := make([]string, 0, len(s.order))
	for i, id := range s.order {
		dlg := s.byID[id]
		line := fmt.Sprintf("%d  %s", i+1, id)
		if dlg.Err() != nil {
			line += "  (unavailable: " + dlg.Err().Error() + ")"
		}
		lines = append(lines, line)
	}
	return lines
}
