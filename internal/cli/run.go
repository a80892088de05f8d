package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/j-ikonen/wasm-game-of-life/internal/render"
	"github.com/j-ikonen/wasm-game-of-life/pkg/core"
	"github.com/j-ikonen/wasm-game-of-life/pkg/life"
)

// RunResult is the JSON payload of the run command.
type RunResult struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Generation uint64 `json:"generation"`
	Population int    `json:"population"`
	Born       []int  `json:"born"`
	Died       []int  `json:"died"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &gridFlags{}
	var every int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a number of generations and print the result",
		Long: `Build a grid from the config file and flags, advance it --steps
generations and print the final frame ('#' alive, '.' dead).

With --every k the frame is also printed after every k-th generation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(rootOpts, flags, every, cmd)
		},
	}
	flags.bind(cmd)
	cmd.Flags().IntVar(&every, "every", 0, "also print every k-th generation (text format only)")

	return cmd
}

func runRun(opts *RootOptions, flags *gridFlags, every int, cmd *cobra.Command) error {
	cfg, e, logger, err := flags.build(cmd, opts)
	if err != nil {
		return err
	}
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	text := opts.Format == "text"

	logger.Info("run starting",
		"width", cfg.Width,
		"height", cfg.Height,
		"steps", cfg.Steps,
		"population", e.Population(),
	)

	ticker := core.NewFixedStep(cfg.TPS)
	for i := 0; i < cfg.Steps; i++ {
		ticker.Wait()
		start := time.Now()
		e.Step()
		logger.Debug("tick",
			"generation", e.Generation(),
			"elapsed", time.Since(start),
			"born", len(e.AliveDeltas()),
			"died", len(e.DeadDeltas()),
		)
		if text && every > 0 && i+1 < cfg.Steps && e.Generation()%uint64(every) == 0 {
			if _, err := fmt.Fprint(cmd.OutOrStdout(), frame(e)); err != nil {
				return err
			}
		}
	}

	logger.Info("run finished", "generation", e.Generation(), "population", e.Population())
	result := RunResult{
		Width:      e.Width(),
		Height:     e.Height(),
		Generation: e.Generation(),
		Population: e.Population(),
		Born:       append([]int{}, e.AliveDeltas()...),
		Died:       append([]int{}, e.DeadDeltas()...),
	}
	return formatter.Emit(result, frame(e))
}

func frame(e *life.Engine) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "generation %d population %d born %d died %d\n",
		e.Generation(), e.Population(), len(e.AliveDeltas()), len(e.DeadDeltas()))
	_ = render.WriteText(&sb, e)
	return sb.String()
}
