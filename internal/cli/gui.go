package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/j-ikonen/wasm-game-of-life/internal/app"
)

// NewGUICommand creates the gui command.
func NewGUICommand(rootOpts *RootOptions) *cobra.Command {
	flags := &gridFlags{}
	opts := app.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Open an interactive window (requires the ebiten build tag)",
		Long: `Open an interactive window on the grid.

Keys: space pause, N single step, C clear, R/S reseed, G/P/L insert a
glider/pulsar/spaceship at the cursor, D show deltas, Q quit. Left click
toggles a cell.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, e, logger, err := flags.build(cmd, rootOpts)
			if err != nil {
				return err
			}
			if cfg.TPS > 0 {
				opts.TPS = cfg.TPS
			}
			opts.RandomSeed = cfg.RandomSeed
			err = app.Run(e, opts, logger)
			if errors.Is(err, app.ErrHeadless) {
				return WrapExitError(ExitCommandError, "gui unavailable", err)
			}
			return err
		},
	}
	flags.bind(cmd)
	cmd.Flags().IntVar(&opts.Scale, "scale", opts.Scale, "pixel scale multiplier")

	return cmd
}
