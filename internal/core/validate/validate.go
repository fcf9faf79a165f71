// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"regexp"
	"strings"
)

var dialogIDPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// DialogID validates a dialog or template ID: letters, digits, '-' and '_',
// starting with a letter or digit.
func DialogID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("id is required")
	}
	if !dialogIDPattern.MatchString(id) {
		return fmt.Errorf("invalid id %q: use letters, digits, '-' or '_'", id)
	}
	return nil
}

// ButtonAction validates the syntax of a footer button action: "close",
// "destroy", "open:<dialog>", "notify:<text>", or empty for no action.
func ButtonAction(action string) error {
	switch {
	case action == "", action == "close", action == "destroy":
		return nil
	case strings.HasPrefix(action, "open:"):
		return DialogID(strings.TrimPrefix(action, "open:"))
	case strings.HasPrefix(action, "notify:"):
		if strings.TrimSpace(strings.TrimPrefix(action, "notify:")) == "" {
			return fmt.Errorf("notify action needs a message")
		}
		return nil
	default:
		return fmt.Errorf("unknown action %q (expected close, destroy, open:<dialog>, or notify:<text>)", action)
	}
}
