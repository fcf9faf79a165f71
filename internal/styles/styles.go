// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Tokyo Night color palette.
var (
	ColorBackground = lipgloss.Color("#1a1b26")
	ColorGreen      = lipgloss.Color("#9ece6a")
	ColorYellow     = lipgloss.Color("#e0af68")
	ColorRed        = lipgloss.Color("#f7768e")
	ColorBlue       = lipgloss.Color("#7aa2f7")
	ColorGray       = lipgloss.Color("#565f89")
	ColorWhite      = lipgloss.Color("#c0caf5")
)

// Banner ASCII art for the page header.
const Banner = `
 ╔═╗╔═╗╔═╗╔═╗╦ ╦
 ╠═╝║ ║╠═╝╔═╝╚╦╝
 ╩  ╚═╝╩  ╚═╝ ╩ `

// BannerStyle styles the ASCII art banner.
var BannerStyle = lipgloss.NewStyle().
	Foreground(ColorBlue).
	Bold(true)

// HeadingStyle styles section headings on the demo page.
var HeadingStyle = lipgloss.NewStyle().
	Foreground(ColorBlue).
	Bold(true)

// TextStyle styles body text on the demo page.
var TextStyle = lipgloss.NewStyle().
	Foreground(ColorWhite)

// HelpStyle styles the key help line.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// StatusStyle styles the transient status line.
var StatusStyle = lipgloss.NewStyle().
	Foreground(ColorYellow)

// FormTheme returns the huh theme used for forms shown inside dialogs.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(ColorBlue)
	t.Focused.Title = t.Focused.Title.Foreground(ColorBlue).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(ColorGray)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(ColorYellow)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(ColorBlue)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(ColorGray)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorRed)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorRed)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(ColorBackground).Background(ColorBlue)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(ColorWhite).Background(lipgloss.Color("#3b4261"))

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorGray).Bold(false)

	return t
}
