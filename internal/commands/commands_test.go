package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/popzy/internal/core/config"
	"github.com/hay-kot/popzy/internal/printer"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := config.DefaultConfig()
	out, _, err := runAppWith(t, &cfg, args...)
	return out, err
}

// runAppWith runs the commands against cfg and returns stdout and the
// printer output.
func runAppWith(t *testing.T, cfg *config.Config, args ...string) (string, string, error) {
	t.Helper()

	flags := &Flags{Config: cfg}

	var out, errOut bytes.Buffer
	app := &cli.Command{
		Name:           "popzy",
		Writer:         &out,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	app = NewTemplatesCmd(flags).Register(app)
	app = NewPreviewCmd(flags).Register(app)
	app = NewConfigValidateCmd(flags).Register(app)

	ctx := printer.NewContext(context.Background(), printer.NewPlain(&errOut))
	err := app.Run(ctx, append([]string{"popzy"}, args...))
	return out.String(), errOut.String(), err
}

func brokenConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Dialogs = append(cfg.Dialogs, config.Dialog{
		ID:       "broken",
		Template: "nope",
		Footer:   true,
		Buttons: []config.Button{
			{Label: "Next", Action: config.ActionOpenPrefix + "ghost", Key: "n"},
		},
	})
	return &cfg
}

func TestTemplatesList(t *testing.T) {
	out, err := runApp(t, "templates", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "modal-1")
	assert.Contains(t, out, "Terms of Service")
	assert.Contains(t, out, "config")
}

func TestTemplatesShow(t *testing.T) {
	out, err := runApp(t, "templates", "show", "modal-3")
	require.NoError(t, err)
	assert.Contains(t, out, "Title: Terms of Service")
	assert.Contains(t, out, "Format: markdown")
	assert.Contains(t, out, "Please read the terms carefully.")

	_, err = runApp(t, "templates", "show", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `template "missing" not found`)
}

func TestPreview(t *testing.T) {
	out, err := runApp(t, "preview", "--width", "100", "--height", "30", "modal-3")
	require.NoError(t, err)
	assert.Contains(t, out, "Terms of Service")
	assert.Contains(t, out, "Agree")

	_, err = runApp(t, "preview", "--width", "100", "--height", "30")
	require.Error(t, err)
}

func TestConfigValidate_JSON(t *testing.T) {
	out, err := runApp(t, "config", "validate", "--format", "json")
	require.NoError(t, err)

	var res struct {
		Valid bool `json:"valid"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Valid)
}

func TestConfigValidate_TextReportsPerDialog(t *testing.T) {
	_, out, err := runAppWith(t, brokenConfig(), "config", "validate")
	require.Error(t, err)

	assert.Contains(t, out, "Dialogs (4)")
	assert.Contains(t, out, "✔ modal-1: template modal-1 (markdown, config)")
	assert.Contains(t, out, "close: buttons only")
	assert.Contains(t, out, `button "Agree": close [enter]`)
	assert.Contains(t, out, "✘ broken: template nope (missing)")
	assert.Contains(t, out, `button "Next": opens ghost [n]`)
	assert.Contains(t, out, `template: template "nope" not found`)
	assert.Contains(t, out, `buttons[0].action: dialog "ghost" not found`)
}

func TestConfigValidate_JSONReportsPerDialog(t *testing.T) {
	out, _, err := runAppWith(t, brokenConfig(), "config", "validate", "--format", "json")
	require.Error(t, err)

	var res config.Report
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.Valid)
	require.Len(t, res.Dialogs, 4)

	broken := res.Dialogs[3]
	assert.Equal(t, "broken", broken.ID)
	assert.False(t, broken.Resolved)
	assert.Equal(t, []string{"button", "overlay", "escape"}, broken.CloseMethods)
	require.Len(t, broken.Buttons, 1)
	assert.Equal(t, "ghost", broken.Buttons[0].Target)
	assert.Len(t, broken.Errors, 2)
	assert.Empty(t, res.Errors)
}
