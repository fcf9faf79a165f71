package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	r := cfg.Report("")

	assert.True(t, r.Valid)
	assert.Equal(t, []string{"modal-1", "modal-2", "modal-3"}, r.Templates)
	require.Len(t, r.Dialogs, 3)

	one := r.Dialogs[0]
	assert.True(t, one.Resolved)
	assert.Equal(t, "markdown", one.Format)
	assert.Equal(t, "config", one.Source)
	assert.Equal(t, []string{"button", "overlay", "escape"}, one.CloseMethods)

	three := r.Dialogs[2]
	assert.Empty(t, three.CloseMethods)
	require.Len(t, three.Buttons, 3)
	assert.Equal(t, "d", three.Buttons[0].Key)
	assert.Zero(t, r.ErrorCount())
}

func TestReport_GroupsErrorsByDialog(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MarkdownStyle = "no-such-style"
	cfg.Dialogs[1].CloseMethods = []string{"swipe"}
	cfg.Dialogs[2].Buttons = append(cfg.Dialogs[2].Buttons, Button{Label: "More", Action: ActionOpenPrefix + "modal-9"})

	r := cfg.Report("")
	assert.False(t, r.Valid)

	assert.Empty(t, r.Dialogs[0].Errors)
	require.Len(t, r.Dialogs[1].Errors, 1)
	assert.Equal(t, "dialogs[1].close_methods[0]", r.Dialogs[1].Errors[0].Field)
	require.Len(t, r.Dialogs[2].Errors, 1)
	assert.Equal(t, "modal-9", r.Dialogs[2].Buttons[3].Target)

	require.Len(t, r.Errors, 1)
	assert.Equal(t, "markdown_style", r.Errors[0].Field)
	assert.Equal(t, 3, r.ErrorCount())
}

func TestDialogIndex(t *testing.T) {
	tests := []struct {
		field string
		want  int
		ok    bool
	}{
		{field: "dialogs[0].id", want: 0, ok: true},
		{field: "dialogs[12].buttons[1].action", want: 12, ok: true},
		{field: "templates[0].id", ok: false},
		{field: "dialogs[x]", ok: false},
		{field: "markdown_style", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got, ok := dialogIndex(tt.field)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
