package popzy

import (
	"github.com/charmbracelet/lipgloss"
)

// Built-in class names applied to the generated subtree.
const (
	ClassBackdrop  = "popzy__backdrop"
	ClassContainer = "popzy__container"
	ClassClose     = "popzy__close"
	ClassTitle     = "popzy__title"
	ClassContent   = "popzy__content"
	ClassFooter    = "popzy__footer"
	ClassButton    = "popzy__button"

	// ClassVisible is present on the backdrop while the dialog is shown.
	ClassVisible = "popzy--show"
)

// ClassStyle is the set of style properties a class contributes. Zero values
// leave the property untouched so classes can be layered.
type ClassStyle struct {
	Foreground  string `yaml:"foreground"`
	Background  string `yaml:"background"`
	BorderColor string `yaml:"border_color"`
	Border      string `yaml:"border"` // rounded, normal, thick, double, hidden, none
	Bold        bool   `yaml:"bold"`
	Italic      bool   `yaml:"italic"`
	Faint       bool   `yaml:"faint"`
	Width       int    `yaml:"width"`
	Padding     []int  `yaml:"padding"` // 1 to 4 values, CSS shorthand order
	Align       string `yaml:"align"`   // left, center, right
}

// apply layers the class onto s.
func (c ClassStyle) apply(s lipgloss.Style) lipgloss.Style {
	if c.Foreground != "" {
		s = s.Foreground(lipgloss.Color(c.Foreground))
	}
	if c.Background != "" {
		s = s.Background(lipgloss.Color(c.Background))
	}
	if c.Border != "" {
		if b, ok := borderByName(c.Border); ok {
			s = s.Border(b)
		} else {
			s = s.Border(lipgloss.Border{}, false)
		}
	}
	if c.BorderColor != "" {
		s = s.BorderForeground(lipgloss.Color(c.BorderColor))
	}
	if c.Bold {
		s = s.Bold(true)
	}
	if c.Italic {
		s = s.Italic(true)
	}
	if c.Faint {
		s = s.Faint(true)
	}
	if c.Width > 0 {
		s = s.Width(c.Width)
	}
	if n := len(c.Padding); n >= 1 && n <= 4 {
		s = s.Padding(c.Padding...)
	}
	switch c.Align {
	case "left":
		s = s.Align(lipgloss.Left)
	case "center":
		s = s.Align(lipgloss.Center)
	case "right":
		s = s.Align(lipgloss.Right)
	}
	return s
}

func borderByName(name string) (lipgloss.Border, bool) {
	switch name {
	case "rounded":
		return lipgloss.RoundedBorder(), true
	case "normal":
		return lipgloss.NormalBorder(), true
	case "thick":
		return lipgloss.ThickBorder(), true
	case "double":
		return lipgloss.DoubleBorder(), true
	case "hidden":
		return lipgloss.HiddenBorder(), true
	default:
		return lipgloss.Border{}, false
	}
}

// ValidBorder reports whether name is a border the stylesheet understands.
func ValidBorder(name string) bool {
	if name == "none" {
		return true
	}
	_, ok := borderByName(name)
	return ok
}

// StyleSheet maps class names to their styles.
type StyleSheet map[string]ClassStyle

// DefaultStyleSheet returns the built-in Tokyo Night look.
func DefaultStyleSheet() StyleSheet {
	return StyleSheet{
		ClassBackdrop: {Foreground: "#3b4261"},
		ClassContainer: {
			Border:      "rounded",
			BorderColor: "#7aa2f7",
			Padding:     []int{1, 2},
		},
		ClassClose:   {Foreground: "#565f89", Bold: true},
		ClassTitle:   {Foreground: "#c0caf5", Bold: true},
		ClassContent: {Foreground: "#c0caf5"},
		ClassFooter:  {Padding: []int{1, 0, 0, 0}},
		ClassButton: {
			Background: "#3b4261",
			Foreground: "#a9b1d6",
			Padding:    []int{0, 1},
		},
	}
}

// Merge returns a copy of s with other's classes layered on top. A class in
// both sheets keeps s's properties that other leaves unset.
func (s StyleSheet) Merge(other StyleSheet) StyleSheet {
	out := make(StyleSheet, len(s)+len(other))
	for name, cs := range s {
		out[name] = cs
	}
	for name, cs := range other {
		base, ok := out[name]
		if !ok {
			out[name] = cs
			continue
		}
		out[name] = mergeClass(base, cs)
	}
	return out
}

func mergeClass(base, over ClassStyle) ClassStyle {
	if over.Foreground != "" {
		base.Foreground = over.Foreground
	}
	if over.Background != "" {
		base.Background = over.Background
	}
	if over.BorderColor != "" {
		base.BorderColor = over.BorderColor
	}
	if over.Border != "" {
		base.Border = over.Border
	}
	base.Bold = base.Bold || over.Bold
	base.Italic = base.Italic || over.Italic
	base.Faint = base.Faint || over.Faint
	if over.Width > 0 {
		base.Width = over.Width
	}
	if len(over.Padding) > 0 {
		base.Padding = over.Padding
	}
	if over.Align != "" {
		base.Align = over.Align
	}
	return base
}

// Style resolves classes in order into a lipgloss style. Later classes win.
// Unknown classes are ignored.
func (s StyleSheet) Style(classes ...string) lipgloss.Style {
	st := lipgloss.NewStyle()
	for _, c := range classes {
		if cs, ok := s[c]; ok {
			st = cs.apply(st)
		}
	}
	return st
}
