package popzy

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Callback is invoked by a dialog in response to a lifecycle event or a button
// press. The returned command, if any, is handed back to the Bubble Tea runtime.
type Callback func() tea.Cmd

// CloseMethod is a user interaction that may close a dialog.
type CloseMethod string

const (
	CloseButton  CloseMethod = "button"  // the close glyph in the container corner
	CloseOverlay CloseMethod = "overlay" // a click on the backdrop outside the container
	CloseEscape  CloseMethod = "escape"  // the escape key while the dialog is topmost
)

// AllCloseMethods returns every close method, the default set for new dialogs.
func AllCloseMethods() []CloseMethod {
	return []CloseMethod{CloseButton, CloseOverlay, CloseEscape}
}

// ParseCloseMethod converts a config string to a CloseMethod.
func ParseCloseMethod(s string) (CloseMethod, error) {
	switch m := CloseMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case CloseButton, CloseOverlay, CloseEscape:
		return m, nil
	default:
		return "", fmt.Errorf("unknown close method %q (expected button, overlay, or escape)", s)
	}
}

type options struct {
	destroyOnClose bool
	footer         bool
	closeMethods   map[CloseMethod]bool
	classes        []string
	onOpen         Callback
	onClose        Callback
	data           any
	title          string
}

func defaultOptions() options {
	o := options{
		destroyOnClose: true,
		closeMethods:   make(map[CloseMethod]bool, 3),
	}
	for _, m := range AllCloseMethods() {
		o.closeMethods[m] = true
	}
	return o
}

// Option configures a dialog at construction.
type Option func(*options)

// WithDestroyOnClose controls whether closing drops the built subtree. Defaults to true.
func WithDestroyOnClose(destroy bool) Option {
	return func(o *options) { o.destroyOnClose = destroy }
}

// WithFooter enables the footer region. Defaults to false.
func WithFooter(footer bool) Option {
	return func(o *options) { o.footer = footer }
}

// WithCloseMethods replaces the enabled close methods. Calling it with no
// arguments disables every close interaction.
func WithCloseMethods(methods ...CloseMethod) Option {
	return func(o *options) {
		o.closeMethods = make(map[CloseMethod]bool, len(methods))
		for _, m := range methods {
			o.closeMethods[m] = true
		}
	}
}

// WithClasses adds style classes to the container. Entries that are not
// strings, or are blank, are skipped.
func WithClasses(values ...any) Option {
	return func(o *options) {
		o.classes = append(o.classes, Classes(values...)...)
	}
}

// OnOpen sets the callback run once the opening transition finishes.
func OnOpen(cb Callback) Option {
	return func(o *options) { o.onOpen = cb }
}

// OnClose sets the callback run once the closing transition finishes.
func OnClose(cb Callback) Option {
	return func(o *options) { o.onClose = cb }
}

// WithData sets the value templates are executed against.
func WithData(data any) Option {
	return func(o *options) { o.data = data }
}

// WithTitle shows a title on the first row of the container.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// Classes filters values down to non-blank strings. Each string may hold
// several space separated class names.
func Classes(values ...any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		out = append(out, strings.Fields(s)...)
	}
	return out
}
