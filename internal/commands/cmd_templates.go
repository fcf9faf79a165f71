package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/popzy/internal/printer"
)

type TemplatesCmd struct {
	flags *Flags
}

// NewTemplatesCmd creates a new templates command
func NewTemplatesCmd(flags *Flags) *TemplatesCmd {
	return &TemplatesCmd{flags: flags}
}

// Register adds the templates command to the application
func (cmd *TemplatesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "templates",
		Usage:       "Inspect dialog templates",
		UsageText:   "popzy templates <command>",
		Description: "List and inspect the dialog templates defined inline or found through template_paths.",
		Commands: []*cli.Command{
			{
				Name:        "list",
				Aliases:     []string{"ls"},
				Usage:       "List all available templates",
				UsageText:   "popzy templates list",
				Description: "Displays a table of all templates with their ID, format, source, and title.",
				Action:      cmd.runList,
			},
			{
				Name:        "show",
				Usage:       "Show details of a specific template",
				UsageText:   "popzy templates show <id>",
				Description: "Displays the metadata and raw body of a template.",
				Action:      cmd.runShow,
			},
		},
	})

	return app
}

func (cmd *TemplatesCmd) runList(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	reg, err := cmd.flags.Config.Registry()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	ids := reg.IDs()
	if len(ids) == 0 {
		p.Infof("No templates defined. Add templates or template_paths to your config file.")
		return nil
	}

	w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tFORMAT\tSOURCE\tTITLE")

	for _, id := range ids {
		t, _ := reg.Get(id)
		source := t.Path
		if source == "" {
			source = "config"
		}
		title := t.Title
		if title == "" {
			title = "-"
		}
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", id, t.Format, source, title)
	}

	return w.Flush()
}

func (cmd *TemplatesCmd) runShow(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if c.Args().Len() < 1 {
		return fmt.Errorf("template id required")
	}

	reg, err := cmd.flags.Config.Registry()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	id := c.Args().First()
	t, ok := reg.Get(id)
	if !ok {
		return fmt.Errorf("template %q not found", id)
	}

	w := c.Root().Writer

	p.Infof("Template: %s", id)
	if t.Title != "" {
		_, _ = fmt.Fprintf(w, "Title: %s\n", t.Title)
	}
	_, _ = fmt.Fprintf(w, "Format: %s\n", t.Format)
	if t.Path != "" {
		_, _ = fmt.Fprintf(w, "Path: %s\n", t.Path)
	}
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, "Body:")
	for _, line := range strings.Split(t.Body, "\n") {
		_, _ = fmt.Fprintf(w, "  %s\n", line)
	}

	return nil
}
