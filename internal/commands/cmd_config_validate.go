package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/popzy/internal/core/config"
	"github.com/hay-kot/popzy/internal/printer"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "Validate configuration file",
				UsageText: "popzy config validate [options]",
				Description: `Loads every template and checks each dialog against it.

For every dialog the report shows the template it resolves to, how it can be
closed, and its footer buttons, followed by the errors found for it.`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.flags.Config == nil {
		return fmt.Errorf("configuration not loaded")
	}

	report := cmd.flags.Config.Report(cmd.flags.ConfigPath)

	if cmd.format == "json" {
		enc := json.NewEncoder(c.Root().Writer)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
		if !report.Valid {
			return cli.Exit("", 1)
		}
		return nil
	}

	return printReport(printer.Ctx(ctx), report)
}

func printReport(p *printer.Printer, r config.Report) error {
	p.Section(fmt.Sprintf("Templates (%d)", len(r.Templates)))
	if len(r.Templates) == 0 {
		p.WarnItem("none loaded", "")
	} else {
		p.Printf("  %s", strings.Join(r.Templates, ", "))
	}
	p.Printf("")

	p.Section(fmt.Sprintf("Dialogs (%d)", len(r.Dialogs)))
	for _, d := range r.Dialogs {
		detail := "template " + d.Template
		if d.Resolved {
			detail += fmt.Sprintf(" (%s, %s)", d.Format, d.Source)
		} else {
			detail += " (missing)"
		}
		if len(d.Errors) > 0 {
			p.FailItem(d.ID, detail)
		} else {
			p.Successf("%s: %s", d.ID, detail)
		}

		closes := strings.Join(d.CloseMethods, ", ")
		if closes == "" {
			closes = "buttons only"
		}
		p.Printf("      close: %s", closes)
		for _, b := range d.Buttons {
			p.Printf("      button %q: %s", b.Label, describeButton(b))
		}
		for _, fe := range d.Errors {
			p.Printf("      %s %s: %s", printer.Cross, strings.TrimPrefix(fe.Field, dialogPrefix(fe.Field)), fe.Message)
		}
	}

	if len(r.Errors) > 0 {
		p.Printf("")
		p.Section("Errors")
		for _, fe := range r.Errors {
			if fe.Field != "" {
				p.FailItem(fe.Field, fe.Message)
			} else {
				p.FailItem(fe.Message, "")
			}
		}
	}

	if len(r.Warnings) > 0 {
		p.Printf("")
		p.Section("Warnings")
		for _, warn := range r.Warnings {
			msg := warn.Message
			if warn.Item != "" {
				msg = warn.Item + ": " + msg
			}
			p.WarnItem(warn.Category, msg)
		}
	}

	p.Printf("")
	if r.Valid {
		p.Successf("Configuration is valid (%d dialog(s), %d warning(s))", len(r.Dialogs), len(r.Warnings))
		return nil
	}

	p.Errorf("%d error(s), %d warning(s)", r.ErrorCount(), len(r.Warnings))
	return cli.Exit("", 1)
}

func describeButton(b config.ButtonReport) string {
	action := b.Action
	switch {
	case action == "":
		action = "no action"
	case b.Target != "":
		action = "opens " + b.Target
	}
	if b.Key != "" {
		action += " [" + b.Key + "]"
	}
	return action
}

// dialogPrefix returns the "dialogs[i]." part of a field path.
func dialogPrefix(field string) string {
	if i := strings.Index(field, "]."); i >= 0 && strings.HasPrefix(field, "dialogs[") {
		return field[:i+2]
	}
	return ""
}
