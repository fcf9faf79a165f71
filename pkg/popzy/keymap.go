package popzy

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the keys dialogs respond to.
type KeyMap struct {
	// Escape closes the topmost dialog when it allows the escape close method.
	Escape key.Binding
	// Close activates the close button of the topmost dialog.
	Close key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close dialog")),
		Close:  key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "close dialog")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Escape, k.Close}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
