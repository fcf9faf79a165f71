// Package tmpl renders dialog template bodies with Go's text/template.
package tmpl

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// fallback returns def when v is empty.
func fallback(def string, v any) string {
	if v == nil {
		return def
	}
	s := fmt.Sprint(v)
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

var funcs = template.FuncMap{
	"default": fallback,
	"upper":   strings.ToUpper,
	"lower":   strings.ToLower,
	"trim":    strings.TrimSpace,
}

// Render executes a Go template string with the given data.
// Returns an error if the template is invalid or references undefined keys.
//
// Available template functions:
//   - default: fall back to a value when the argument is empty ({{ .Name | default "guest" }})
//   - upper, lower, trim: string helpers
func Render(tmpl string, data any) (string, error) {
	return RenderFuncs(tmpl, data, nil)
}

// RenderFuncs is Render with extra template functions. Extra functions shadow
// the built-in ones of the same name.
func RenderFuncs(tmpl string, data any, extra template.FuncMap) (string, error) {
	t := template.New("").Funcs(funcs)
	if len(extra) > 0 {
		t = t.Funcs(extra)
	}

	t, err := t.Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}

// Validate parses tmpl and dry-runs it against data so syntax errors and
// missing keys surface before the template is used.
func Validate(tmpl string, data any, extra template.FuncMap) error {
	_, err := RenderFuncs(tmpl, data, extra)
	return err
}
