package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/hay-kot/popzy/internal/core/validate"
	"github.com/hay-kot/popzy/pkg/popzy"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks the structure of the configuration. It runs on every load.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	seenTemplates := make(map[string]bool)
	for i, t := range c.Templates {
		field := fmt.Sprintf("templates[%d]", i)
		if err := validate.DialogID(t.ID); err != nil {
			errs = errs.Append(field+".id", err)
			continue
		}
		if seenTemplates[t.ID] {
			errs = errs.Append(field+".id", fmt.Errorf("duplicate template id %q", t.ID))
		}
		seenTemplates[t.ID] = true

		switch popzy.Format(t.Format) {
		case popzy.FormatText, popzy.FormatMarkdown:
		default:
			errs = errs.Append(field+".format", fmt.Errorf("unknown format %q (expected text or markdown)", t.Format))
		}
	}

	seenDialogs := make(map[string]bool)
	for i, d := range c.Dialogs {
		field := fmt.Sprintf("dialogs[%d]", i)
		if err := validate.DialogID(d.ID); err != nil {
			errs = errs.Append(field+".id", err)
			continue
		}
		if seenDialogs[d.ID] {
			errs = errs.Append(field+".id", fmt.Errorf("duplicate dialog id %q", d.ID))
			continue
		}
		seenDialogs[d.ID] = true

		if strings.TrimSpace(d.Template) == "" {
			errs = errs.Append(field+".template", fmt.Errorf("template is required"))
		}
	}

	if c.Transition.Duration < 0 {
		errs = errs.Append("transition.duration", fmt.Errorf("must not be negative"))
	}

	return errs.ToError()
}

// ValidateDeep performs comprehensive validation of the configuration.
// Unlike Validate(), this loads template files, executes template bodies, and
// checks styles, close methods, and button actions.
func (c *Config) ValidateDeep(configPath string) error {
	var errs criterio.FieldErrorsBuilder

	if err := c.Validate(); err != nil {
		errs = appendFieldErrors(errs, err)
	}

	if configPath != "" {
		if info, err := os.Stat(configPath); err == nil && info.IsDir() {
			errs = errs.Append("config", fmt.Errorf("%s is a directory, not a file", configPath))
		}
	}

	for i, p := range c.TemplatePaths {
		if !doublestar.ValidatePattern(p) {
			errs = errs.Append(fmt.Sprintf("template_paths[%d]", i), fmt.Errorf("invalid glob %q", p))
		}
	}

	reg, err := c.Registry()
	if err != nil {
		errs = errs.Append("template_paths", err)
		reg = popzy.NewRegistry()
	}

	for i, d := range c.Dialogs {
		field := fmt.Sprintf("dialogs[%d]", i)

		if t, ok := reg.Get(d.Template); !ok {
			errs = errs.Append(field+".template", fmt.Errorf("template %q not found", d.Template))
		} else if err := popzy.ValidateTemplate(t, d.Data); err != nil {
			errs = errs.Append(field+".template", fmt.Errorf("template error: %w", err))
		}

		for j, m := range d.CloseMethods {
			if _, err := popzy.ParseCloseMethod(m); err != nil {
				errs = errs.Append(fmt.Sprintf("%s.close_methods[%d]", field, j), err)
			}
		}

		for j, b := range d.Buttons {
			bfield := fmt.Sprintf("%s.buttons[%d]", field, j)
			if strings.TrimSpace(b.Label) == "" {
				errs = errs.Append(bfield+".label", fmt.Errorf("label is required"))
			}
			if err := validate.ButtonAction(b.Action); err != nil {
				errs = errs.Append(bfield+".action", err)
				continue
			}
			if target, ok := strings.CutPrefix(b.Action, ActionOpenPrefix); ok {
				if _, exists := c.Dialog(target); !exists {
					errs = errs.Append(bfield+".action", fmt.Errorf("dialog %q not found", target))
				}
			}
		}
	}

	for class, s := range c.Styles {
		field := "styles." + class
		if s.Border != "" && !popzy.ValidBorder(s.Border) {
			errs = errs.Append(field+".border", fmt.Errorf("unknown border %q", s.Border))
		}
		switch s.Align {
		case "", "left", "center", "right":
		default:
			errs = errs.Append(field+".align", fmt.Errorf("unknown alignment %q", s.Align))
		}
		if len(s.Padding) > 4 {
			errs = errs.Append(field+".padding", fmt.Errorf("expected 1 to 4 values, got %d", len(s.Padding)))
		}
	}

	if !popzy.ValidMarkdownStyle(c.MarkdownStyle) {
		errs = errs.Append("markdown_style", fmt.Errorf("unknown glamour style %q", c.MarkdownStyle))
	}

	return errs.ToError()
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	for _, d := range c.Dialogs {
		if d.CloseMethods != nil && len(d.CloseMethods) == 0 && !closesItself(d) {
			warnings = append(warnings, ValidationWarning{
				Category: "Dialogs",
				Item:     d.ID,
				Message:  "no close methods and no button closes the dialog",
			})
		}
		for _, v := range d.Classes {
			if _, ok := v.(string); !ok {
				warnings = append(warnings, ValidationWarning{
					Category: "Dialogs",
					Item:     d.ID,
					Message:  fmt.Sprintf("class %v is not a string and is ignored", v),
				})
			}
		}
		if !d.Footer && (len(d.Buttons) > 0 || d.FooterContent != "") {
			warnings = append(warnings, ValidationWarning{
				Category: "Dialogs",
				Item:     d.ID,
				Message:  "buttons and footer content are not shown without footer: true",
			})
		}
	}

	for _, p := range c.TemplatePaths {
		matches, err := doublestar.FilepathGlob(popzy.ExpandHome(p), doublestar.WithFilesOnly())
		if err == nil && len(matches) == 0 {
			warnings = append(warnings, ValidationWarning{
				Category: "Templates",
				Item:     p,
				Message:  "pattern matches no files",
			})
		}
	}

	if c.Watch && len(c.TemplatePaths) == 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Templates",
			Item:     "watch",
			Message:  "watch is enabled but no template_paths are configured",
		})
	}

	return warnings
}

func closesItself(d Dialog) bool {
	for _, b := range d.Buttons {
		if b.Action == ActionClose || b.Action == ActionDestroy {
			return true
		}
	}
	return false
}

func appendFieldErrors(b criterio.FieldErrorsBuilder, err error) criterio.FieldErrorsBuilder {
	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return b.Append("", err)
	}
	for _, fe := range fieldErrs {
		b = b.Append(fe.Field, fe.Err)
	}
	return b
}
