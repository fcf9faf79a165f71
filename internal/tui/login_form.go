package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/hay-kot/popzy/internal/styles"
)

// LoginSlot is the slot the sign-in dialog template declares for the form.
const LoginSlot = "login-form"

// loginSubmittedMsg is sent once when the login form completes.
type loginSubmittedMsg struct {
	Email    string
	Password string
}

// LoginForm wraps a huh.Form for the sign-in demo dialog. It is attached to a
// dialog slot and implements tea.Model so the dialog manager can forward input.
type LoginForm struct {
	form      *huh.Form
	email     string
	password  string
	submitted bool
}

// NewLoginForm creates an empty login form.
func NewLoginForm() *LoginForm {
	f := &LoginForm{}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&f.email).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return errors.New("email is required")
					}
					if !strings.Contains(s, "@") {
						return errors.New("email must contain @")
					}
					return nil
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&f.password).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("password is required")
					}
					return nil
				}),
		),
	).WithTheme(styles.FormTheme()).WithWidth(48).WithShowHelp(false)

	f.form.SubmitCmd = nil
	f.form.CancelCmd = nil

	return f
}

// Init implements tea.Model.
func (f *LoginForm) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model.
func (f *LoginForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := f.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		f.form = form
	}

	if f.form.State == huh.StateCompleted && !f.submitted {
		f.submitted = true
		submitted := loginSubmittedMsg{
			Email:    strings.TrimSpace(f.email),
			Password: strings.TrimSpace(f.password),
		}
		return f, tea.Batch(cmd, func() tea.Msg { return submitted })
	}

	return f, cmd
}

// View implements tea.Model.
func (f *LoginForm) View() string {
	return f.form.View()
}

// Submitted returns true if the form was submitted.
func (f *LoginForm) Submitted() bool {
	return f.submitted
}
