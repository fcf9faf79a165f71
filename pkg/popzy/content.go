package popzy

import (
	"strings"
	"text/template"

	"github.com/hay-kot/popzy/pkg/tmpl"
)

const (
	slotOpen  = "\x00slot:"
	slotClose = "\x00"
)

// slotFuncs marks named slots in a rendered body. Each slot becomes a KindSlot
// node the caller can attach a model to.
var slotFuncs = template.FuncMap{
	"slot": func(id string) string { return slotOpen + id + slotClose },
}

// ValidateTemplate checks that a template body parses and executes against data.
func ValidateTemplate(t Template, data any) error {
	return tmpl.Validate(t.Body, data, slotFuncs)
}

// buildContent executes the template body and splits the result into text and
// slot nodes.
func buildContent(t Template, data any) ([]*Node, error) {
	rendered, err := tmpl.RenderFuncs(t.Body, data, slotFuncs)
	if err != nil {
		return nil, err
	}
	return splitSlots(rendered, t.Format), nil
}

func splitSlots(s string, format Format) []*Node {
	var nodes []*Node
	addText := func(text string) {
		if strings.TrimSpace(text) == "" {
			return
		}
		n := newNode(KindText, "")
		n.Text = strings.Trim(text, "\n")
		n.Format = format
		nodes = append(nodes, n)
	}

	for {
		start := strings.Index(s, slotOpen)
		if start < 0 {
			addText(s)
			return nodes
		}
		addText(s[:start])

		rest := s[start+len(slotOpen):]
		end := strings.Index(rest, slotClose)
		if end < 0 {
			addText(rest)
			return nodes
		}
		nodes = append(nodes, newNode(KindSlot, rest[:end]))
		s = rest[end+len(slotClose):]
	}
}
