// Package config handles configuration loading and validation for popzy.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/popzy/pkg/popzy"
)

// Built-in footer button actions. A button may also use "open:<dialog>" or
// "notify:<text>".
const (
	ActionClose   = "close"
	ActionDestroy = "destroy"

	ActionOpenPrefix   = "open:"
	ActionNotifyPrefix = "notify:"
)

// Config holds the application configuration.
type Config struct {
	TemplatePaths []string         `yaml:"template_paths"` // doublestar globs, relative to the config file
	Templates     []Template       `yaml:"templates"`
	Dialogs       []Dialog         `yaml:"dialogs"`
	Styles        popzy.StyleSheet `yaml:"styles"`
	Transition    Transition       `yaml:"transition"`
	MarkdownStyle string           `yaml:"markdown_style"`
	Keys          Keys             `yaml:"keys"`
	Watch         bool             `yaml:"watch"`
}

// Template is a dialog template defined inline in the config file.
type Template struct {
	ID     string `yaml:"id"`
	Title  string `yaml:"title"`
	Body   string `yaml:"body"`
	Format string `yaml:"format"` // text or markdown
}

// Dialog configures one dialog shown by the TUI.
type Dialog struct {
	ID             string         `yaml:"id"`
	Template       string         `yaml:"template"`
	Title          string         `yaml:"title"`
	DestroyOnClose *bool          `yaml:"destroy_on_close"` // nil = true
	Footer         bool           `yaml:"footer"`
	CloseMethods   []string       `yaml:"close_methods"` // nil = all, empty = none
	Classes        []any          `yaml:"classes"`
	Data           map[string]any `yaml:"data"`
	FooterContent  string         `yaml:"footer_content"`
	Buttons        []Button       `yaml:"buttons"`
}

// Button is a footer button.
type Button struct {
	Label  string `yaml:"label"`
	Class  string `yaml:"class"`
	Action string `yaml:"action"`
	Key    string `yaml:"key"`
}

// Transition holds dialog animation settings.
type Transition struct {
	Duration      time.Duration `yaml:"duration"`
	ReducedMotion bool          `yaml:"reduced_motion"`
}

// Keys overrides the dialog key bindings.
type Keys struct {
	Escape []string `yaml:"escape"`
	Close  []string `yaml:"close"`
}

// DefaultConfig returns a Config with sensible defaults, including the demo
// dialogs.
func DefaultConfig() Config {
	keep := false
	return Config{
		TemplatePaths: []string{},
		Templates: []Template{
			{
				ID:     "modal-1",
				Title:  "Modal 1",
				Format: string(popzy.FormatMarkdown),
				Body: `Lorem ipsum dolor sit amet, consectetur adipiscing elit.

This dialog keeps its content when closed and reuses it on the next open.

Press **2** to stack another dialog on top.`,
			},
			{
				ID:     "modal-2",
				Title:  "Sign in",
				Format: string(popzy.FormatText),
				Body:   "Enter your credentials.\n{{ slot \"login-form\" }}",
			},
			{
				ID:     "modal-3",
				Title:  "Terms of Service",
				Format: string(popzy.FormatMarkdown),
				Body: `Please read the terms carefully.

1. You agree to the terms.
2. The terms may change.
3. This dialog can only be closed with its buttons.`,
			},
		},
		Dialogs: []Dialog{
			{ID: "modal-1", Template: "modal-1", DestroyOnClose: &keep},
			{ID: "modal-2", Template: "modal-2", Classes: []any{"class1", "class2", "classN", 123}},
			{
				ID:           "modal-3",
				Template:     "modal-3",
				CloseMethods: []string{},
				Footer:       true,
				Buttons: []Button{
					{Label: "Danger", Class: "danger pull-left", Action: ActionNotifyPrefix + "Danger clicked!", Key: "d"},
					{Label: "Cancel", Class: "", Action: ActionClose, Key: "c"},
					{Label: "Agree", Class: "primary", Action: ActionClose, Key: "enter"},
				},
			},
		},
		Styles: popzy.StyleSheet{
			"danger":  {Background: "#f7768e", Foreground: "#1a1b26", Bold: true},
			"primary": {Background: "#7aa2f7", Foreground: "#1a1b26", Bold: true},
		},
		Transition: Transition{
			Duration: popzy.DefaultTransition().Duration,
		},
		MarkdownStyle: popzy.DefaultMarkdownStyle,
		Keys: Keys{
			Escape: []string{"esc"},
			Close:  []string{"ctrl+w"},
		},
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			cfg.TemplatePaths = resolvePaths(filepath.Dir(configPath), cfg.TemplatePaths)
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.MarkdownStyle == "" {
		c.MarkdownStyle = defaults.MarkdownStyle
	}
	if len(c.Keys.Escape) == 0 {
		c.Keys.Escape = defaults.Keys.Escape
	}
	if len(c.Keys.Close) == 0 {
		c.Keys.Close = defaults.Keys.Close
	}
	for i := range c.Templates {
		if c.Templates[i].Format == "" {
			c.Templates[i].Format = string(popzy.FormatText)
		}
	}
}

// resolvePaths makes relative globs relative to dir.
func resolvePaths(dir string, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) || strings.HasPrefix(p, "~/") {
			out[i] = p
			continue
		}
		out[i] = filepath.Join(dir, p)
	}
	return out
}

// Dialog returns the dialog with the given ID.
func (c *Config) Dialog(id string) (Dialog, bool) {
	for _, d := range c.Dialogs {
		if d.ID == id {
			return d, true
		}
	}
	return Dialog{}, false
}

// Registry builds a template registry from the inline templates and the
// files matched by TemplatePaths. Files override inline templates with the
// same ID.
func (c *Config) Registry() (*popzy.Registry, error) {
	reg := popzy.NewRegistry()
	for _, t := range c.Templates {
		reg.Add(popzy.Template{ID: t.ID, Title: t.Title, Body: t.Body, Format: popzy.Format(t.Format)})
	}
	if _, err := reg.LoadGlob(c.TemplatePaths...); err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	return reg, nil
}

// TransitionConfig converts the transition settings.
func (c *Config) TransitionConfig() popzy.TransitionConfig {
	t := popzy.DefaultTransition()
	t.Duration = c.Transition.Duration
	t.ReducedMotion = c.Transition.ReducedMotion
	return t
}

// KeyMap converts the key settings.
func (c *Config) KeyMap() popzy.KeyMap {
	km := popzy.DefaultKeyMap()
	km.Escape.SetKeys(c.Keys.Escape...)
	km.Close.SetKeys(c.Keys.Close...)
	return km
}

// Options converts the dialog settings into popzy options. Buttons are not
// included; they need the dialog they act on.
func (d Dialog) Options() ([]popzy.Option, error) {
	opts := []popzy.Option{
		popzy.WithFooter(d.Footer),
		popzy.WithClasses(d.Classes...),
	}
	if d.DestroyOnClose != nil {
		opts = append(opts, popzy.WithDestroyOnClose(*d.DestroyOnClose))
	}
	if d.Title != "" {
		opts = append(opts, popzy.WithTitle(d.Title))
	}
	if d.Data != nil {
		opts = append(opts, popzy.WithData(d.Data))
	}
	if d.CloseMethods != nil {
		methods := make([]popzy.CloseMethod, 0, len(d.CloseMethods))
		for _, s := range d.CloseMethods {
			m, err := popzy.ParseCloseMethod(s)
			if err != nil {
				return nil, fmt.Errorf("dialog %q: %w", d.ID, err)
			}
			methods = append(methods, m)
		}
		opts = append(opts, popzy.WithCloseMethods(methods...))
	}
	return opts, nil
}
