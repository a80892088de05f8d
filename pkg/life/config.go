package life

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/j-ikonen/wasm-game-of-life/pkg/core"
)

// Placement anchors a named pattern at (Row, Col).
type Placement struct {
	Pattern string `yaml:"pattern"`
	Row     int    `yaml:"row"`
	Col     int    `yaml:"col"`
}

// Config describes how to build and drive an Engine.
type Config struct {
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
	Seed       string      `yaml:"seed"`
	RandomSeed int64       `yaml:"random_seed"`
	Patterns   []Placement `yaml:"patterns"`
	Steps      int         `yaml:"steps"`
	TPS        int         `yaml:"tps"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      128,
		Height:     128,
		Seed:       SeedStripe,
		RandomSeed: 42,
		Steps:      100,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		c.Seed = v
	}
	if v, ok := cfg["random_seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.RandomSeed = parsed
		}
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Steps = parsed
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.TPS = parsed
		}
	}
	return c
}

// LoadConfig reads a YAML file on top of DefaultConfig. Unknown keys are
// rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML bytes on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return c, c.Validate()
}

// ParsePlacement parses "name@row,col".
func ParsePlacement(s string) (Placement, error) {
	name, at, ok := strings.Cut(s, "@")
	if !ok || name == "" {
		return Placement{}, fmt.Errorf("placement %q: want name@row,col", s)
	}
	rs, cs, ok := strings.Cut(at, ",")
	if !ok {
		return Placement{}, fmt.Errorf("placement %q: want name@row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return Placement{}, fmt.Errorf("placement %q: row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return Placement{}, fmt.Errorf("placement %q: col: %w", s, err)
	}
	return Placement{Pattern: name, Row: row, Col: col}, nil
}

// Validate checks the configuration for values no engine could be built from.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if _, err := ParseSeed(c.Seed, core.NewRNG(c.RandomSeed)); err != nil {
		return err
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", c.Steps)
	}
	if c.TPS < 0 {
		return fmt.Errorf("tps must not be negative, got %d", c.TPS)
	}
	for _, p := range c.Patterns {
		if _, ok := Lookup(p.Pattern); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownPattern, p.Pattern)
		}
	}
	return nil
}

// Build constructs an engine and applies the configured placements.
// Placements that do not fit are logged by the engine and skipped.
func (c Config) Build(opts ...Option) (*Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	seed, err := ParseSeed(c.Seed, core.NewRNG(c.RandomSeed))
	if err != nil {
		return nil, err
	}
	e, err := New(c.Width, c.Height, seed, opts...)
	if err != nil {
		return nil, err
	}
	for _, p := range c.Patterns {
		err := e.InsertNamed(p.Pattern, p.Row, p.Col)
		if errors.Is(err, ErrPatternDoesNotFit) {
			continue
		}
		if err != nil {
			return nil, err
		}
	}
	e.logger.Debug("engine built",
		slog.Int("width", c.Width),
		slog.Int("height", c.Height),
		slog.String("seed", c.Seed),
		slog.Int("population", e.Population()),
	)
	return e, nil
}
