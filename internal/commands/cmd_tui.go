package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/popzy/internal/tui"
	"github.com/hay-kot/popzy/pkg/popzy"
)

type TuiCmd struct {
	flags         *Flags
	open          string
	reducedMotion bool
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{
		flags: flags,
	}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "open",
			Usage:       "dialog to open on start",
			Destination: &cmd.open,
		},
		&cli.BoolFlag{
			Name:        "reduced-motion",
			Usage:       "show and hide dialogs without animation",
			Sources:     cli.EnvVars("POPZY_REDUCED_MOTION"),
			Destination: &cmd.reducedMotion,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	cfg := cmd.flags.Config
	if cmd.reducedMotion {
		cfg.Transition.ReducedMotion = true
	}

	if cmd.open != "" {
		if _, ok := cfg.Dialog(cmd.open); !ok {
			return fmt.Errorf("dialog %q not found", cmd.open)
		}
	}

	reg, err := cfg.Registry()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	opts := tui.Options{Open: cmd.open}

	if cfg.Watch {
		w, err := popzy.NewWatcher(reg, log.Logger.With().Str("component", "watcher").Logger())
		if err != nil {
			return fmt.Errorf("watch templates: %w", err)
		}
		defer func() { _ = w.Close() }()

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		w.Start(ctx)
		opts.Watcher = w
	}

	m, err := tui.New(cfg, reg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}
