package cli

import (
	"fmt"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"
)

// BenchResult is the JSON payload of the bench command.
type BenchResult struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Generations int     `json:"generations"`
	Seconds     float64 `json:"seconds"`
	PerSecond   float64 `json:"per_second"`
	Population  int     `json:"population"`
}

// NewBenchCommand creates the bench command.
func NewBenchCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &gridFlags{}
	var quiet bool

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure how many generations per second the engine sustains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(rootOpts, flags, quiet, cmd)
		},
	}
	flags.bind(cmd)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "hide the progress bar")

	return cmd
}

func runBench(opts *RootOptions, flags *gridFlags, quiet bool, cmd *cobra.Command) error {
	cfg, e, logger, err := flags.build(cmd, opts)
	if err != nil {
		return err
	}

	var bar *pb.ProgressBar
	if !quiet {
		bar = pb.New(cfg.Steps)
		bar.SetWriter(cmd.ErrOrStderr())
		bar.Start()
	}

	start := time.Now()
	for i := 0; i < cfg.Steps; i++ {
		e.Step()
		if bar != nil {
			bar.Increment()
		}
	}
	elapsed := time.Since(start)
	if bar != nil {
		bar.Finish()
	}

	result := BenchResult{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Generations: cfg.Steps,
		Seconds:     elapsed.Seconds(),
		Population:  e.Population(),
	}
	if elapsed > 0 {
		result.PerSecond = float64(cfg.Steps) / elapsed.Seconds()
	}
	logger.Debug("bench finished", "elapsed", elapsed, "per_second", result.PerSecond)

	text := fmt.Sprintf("%d generations on %dx%d in %s (%.1f/s), population %d\n",
		result.Generations, result.Width, result.Height, elapsed.Round(time.Microsecond), result.PerSecond, result.Population)
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Emit(result, text)
}
