package popzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContent_Slots(t *testing.T) {
	tmpl := Template{
		ID:     "login",
		Body:   "Sign in to continue.\n{{ slot \"login-form\" }}\nForgot your password?",
		Format: FormatMarkdown,
	}

	nodes, err := buildContent(tmpl, nil)
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	assert.Equal(t, KindText, nodes[0].Kind)
	assert.Equal(t, "Sign in to continue.", nodes[0].Text)
	assert.Equal(t, FormatMarkdown, nodes[0].Format)

	assert.Equal(t, KindSlot, nodes[1].Kind)
	assert.Equal(t, "login-form", nodes[1].ID)

	assert.Equal(t, "Forgot your password?", nodes[2].Text)
}

func TestBuildContent_Data(t *testing.T) {
	tmpl := Template{ID: "greet", Body: "Hello {{ .Name }}"}

	nodes, err := buildContent(tmpl, map[string]string{"Name": "Ada"})
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "Hello Ada", nodes[0].Text)
}

func TestBuildContent_Errors(t *testing.T) {
	_, err := buildContent(Template{Body: "{{ .Name }"}, nil)
	assert.Error(t, err)

	assert.Error(t, ValidateTemplate(Template{Body: "{{ .Missing }}"}, map[string]string{}))
	assert.NoError(t, ValidateTemplate(Template{Body: `{{ slot "x" }}`}, nil))
}

func TestSplitSlots_AdjacentSlotsAndBlankText(t *testing.T) {
	nodes := splitSlots(slotOpen+"a"+slotClose+"\n  \n"+slotOpen+"b"+slotClose, FormatText)

	require.Len(t, nodes, 2)
	assert.Equal(t, "a", nodes[0].ID)
	assert.Equal(t, "b", nodes[1].ID)
}
