package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/popzy/internal/tui"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

type PreviewCmd struct {
	flags  *Flags
	width  int
	height int
}

// NewPreviewCmd creates a new preview command
func NewPreviewCmd(flags *Flags) *PreviewCmd {
	return &PreviewCmd{flags: flags}
}

// Register adds the preview command to the application
func (cmd *PreviewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "preview",
		Usage:       "Print a dialog over the demo page",
		UsageText:   "popzy preview [options] <dialog>",
		Description: "Renders one frame of the demo page with the dialog open and prints it to stdout.\nThe frame defaults to the terminal size.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "width",
				Usage:       "frame width (defaults to the terminal width)",
				Destination: &cmd.width,
			},
			&cli.IntFlag{
				Name:        "height",
				Usage:       "frame height (defaults to the terminal height)",
				Destination: &cmd.height,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *PreviewCmd) run(_ context.Context, c *cli.Command) error {
	if c.Args().Len() < 1 {
		return fmt.Errorf("dialog id required")
	}

	reg, err := cmd.flags.Config.Registry()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	width, height := cmd.size()
	frame, err := tui.Preview(cmd.flags.Config, reg, c.Args().First(), width, height)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.Root().Writer, frame)
	return err
}

func (cmd *PreviewCmd) size() (int, int) {
	width, height := cmd.width, cmd.height
	if width > 0 && height > 0 {
		return width, height
	}

	tw, th, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || tw <= 0 || th <= 0 {
		tw, th = fallbackWidth, fallbackHeight
	}
	if width <= 0 {
		width = tw
	}
	if height <= 0 {
		height = th
	}
	return width, height
}
