package config

import (
	"errors"
	"strconv"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/popzy/pkg/popzy"
)

// FieldError is one validation error in a Report.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ButtonReport describes a configured footer button.
type ButtonReport struct {
	Label  string `json:"label"`
	Action string `json:"action,omitempty"`
	Key    string `json:"key,omitempty"`
	Target string `json:"target,omitempty"` // dialog opened by an open: action
}

// DialogReport describes how a dialog resolves: its template, how it can be
// closed, its buttons, and the validation errors that belong to it.
type DialogReport struct {
	ID           string         `json:"id"`
	Template     string         `json:"template"`
	Resolved     bool           `json:"resolved"`
	Format       string         `json:"format,omitempty"`
	Source       string         `json:"source,omitempty"` // template file, or "config" for inline templates
	CloseMethods []string       `json:"close_methods"`
	Buttons      []ButtonReport `json:"buttons,omitempty"`
	Errors       []FieldError   `json:"errors,omitempty"`
}

// Report is the result of a deep validation, grouped by dialog.
type Report struct {
	Valid     bool                `json:"valid"`
	Templates []string            `json:"templates"`
	Dialogs   []DialogReport      `json:"dialogs"`
	Errors    []FieldError        `json:"errors,omitempty"` // errors outside any dialog
	Warnings  []ValidationWarning `json:"warnings,omitempty"`
}

// ErrorCount returns the number of errors across the report.
func (r Report) ErrorCount() int {
	n := len(r.Errors)
	for _, d := range r.Dialogs {
		n += len(d.Errors)
	}
	return n
}

// Report runs ValidateDeep and groups its findings by dialog.
func (c *Config) Report(configPath string) Report {
	err := c.ValidateDeep(configPath)

	reg, regErr := c.Registry()
	if regErr != nil {
		reg = popzy.NewRegistry()
	}

	r := Report{
		Valid:     err == nil,
		Templates: reg.IDs(),
		Warnings:  c.Warnings(),
	}

	byDialog := make(map[int][]FieldError)
	for _, fe := range fieldErrors(err) {
		e := FieldError{Field: fe.Field, Message: fe.Err.Error()}
		if i, ok := dialogIndex(fe.Field); ok && i < len(c.Dialogs) {
			byDialog[i] = append(byDialog[i], e)
			continue
		}
		r.Errors = append(r.Errors, e)
	}

	for i, d := range c.Dialogs {
		dr := DialogReport{
			ID:           d.ID,
			Template:     d.Template,
			CloseMethods: closeMethodNames(d),
			Errors:       byDialog[i],
		}
		if t, ok := reg.Get(d.Template); ok {
			dr.Resolved = true
			dr.Format = string(t.Format)
			dr.Source = t.Path
			if dr.Source == "" {
				dr.Source = "config"
			}
		}
		for _, b := range d.Buttons {
			br := ButtonReport{Label: b.Label, Action: b.Action, Key: b.Key}
			if target, ok := strings.CutPrefix(b.Action, ActionOpenPrefix); ok {
				br.Target = target
			}
			dr.Buttons = append(dr.Buttons, br)
		}
		r.Dialogs = append(r.Dialogs, dr)
	}

	return r
}

func fieldErrors(err error) criterio.FieldErrors {
	if err == nil {
		return nil
	}
	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}
	return criterio.FieldErrors{{Err: err}}
}

// dialogIndex extracts i from a field path starting with "dialogs[i]".
func dialogIndex(field string) (int, bool) {
	rest, ok := strings.CutPrefix(field, "dialogs[")
	if !ok {
		return 0, false
	}
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return 0, false
	}
	i, err := strconv.Atoi(rest[:end])
	return i, err == nil
}

func closeMethodNames(d Dialog) []string {
	if d.CloseMethods != nil {
		return append([]string{}, d.CloseMethods...)
	}
	methods := popzy.AllCloseMethods()
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = string(m)
	}
	return names
}
