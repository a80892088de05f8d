package cli

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/j-ikonen/wasm-game-of-life/pkg/life"
)

// gridFlags are the engine flags shared by run, bench and gui. Flags that
// were set explicitly override the config file.
type gridFlags struct {
	width      int
	height     int
	seed       string
	randomSeed int64
	patterns   []string
	steps      int
	tps        int
}

func (f *gridFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.width, "width", 0, "grid width")
	fs.IntVar(&f.height, "height", 0, "grid height")
	fs.StringVar(&f.seed, "seed", "", "seed policy (dead|stripe|random)")
	fs.Int64Var(&f.randomSeed, "random-seed", 0, "seed for the random policy")
	fs.StringArrayVarP(&f.patterns, "pattern", "p", nil, "insert a pattern, name@row,col (repeatable)")
	fs.IntVar(&f.steps, "steps", 0, "generations to simulate")
	fs.IntVar(&f.tps, "tps", 0, "generations per second, 0 for unpaced")
}

func (f *gridFlags) config(cmd *cobra.Command, opts *RootOptions) (life.Config, error) {
	cfg := life.DefaultConfig()
	if opts.Config != "" {
		loaded, err := life.LoadConfig(opts.Config)
		if err != nil {
			return life.Config{}, WrapExitError(ExitCommandError, "load config", err)
		}
		cfg = loaded
	}

	fs := cmd.Flags()
	if fs.Changed("width") {
		cfg.Width = f.width
	}
	if fs.Changed("height") {
		cfg.Height = f.height
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("random-seed") {
		cfg.RandomSeed = f.randomSeed
	}
	if fs.Changed("steps") {
		cfg.Steps = f.steps
	}
	if fs.Changed("tps") {
		cfg.TPS = f.tps
	}
	for _, s := range f.patterns {
		p, err := life.ParsePlacement(s)
		if err != nil {
			return life.Config{}, WrapExitError(ExitCommandError, "bad flags", err)
		}
		cfg.Patterns = append(cfg.Patterns, p)
	}

	if err := cfg.Validate(); err != nil {
		return life.Config{}, WrapExitError(ExitCommandError, "invalid config", err)
	}
	return cfg, nil
}

// build validates the flags, builds an engine and returns it with a logger
// tagged by a fresh run id.
func (f *gridFlags) build(cmd *cobra.Command, opts *RootOptions) (life.Config, *life.Engine, *slog.Logger, error) {
	cfg, err := f.config(cmd, opts)
	if err != nil {
		return life.Config{}, nil, nil, err
	}
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)
	e, err := cfg.Build(life.WithLogger(logger))
	if err != nil {
		return life.Config{}, nil, nil, WrapExitError(ExitCommandError, "build engine", err)
	}
	return cfg, e, logger, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("run", uuid.NewString())
}
