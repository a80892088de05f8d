package life

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":           "40",
		"h":           "-2",
		"seed":        "random",
		"random_seed": "9",
		"steps":       "12",
		"tps":         "x",
	})
	assert.Equal(t, 40, c.Width)
	assert.Equal(t, 128, c.Height)
	assert.Equal(t, SeedRandom, c.Seed)
	assert.Equal(t, int64(9), c.RandomSeed)
	assert.Equal(t, 12, c.Steps)
	assert.Zero(t, c.TPS)

	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
width: 32
height: 24
seed: dead
steps: 8
patterns:
  - pattern: glider
    row: 1
    col: 2
  - pattern: pulsar
    row: 20
    col: 0
`)
	c, err := ParseConfig(data)
	require.NoError(t, err)
	assert.Equal(t, 32, c.Width)
	assert.Equal(t, 24, c.Height)
	assert.Equal(t, SeedDead, c.Seed)
	assert.Equal(t, int64(42), c.RandomSeed)
	require.Len(t, c.Patterns, 2)
	assert.Equal(t, Placement{Pattern: "glider", Row: 1, Col: 2}, c.Patterns[0])
}

func TestParseConfigEmptyUsesDefaults(t *testing.T) {
	c, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestParseConfigRejectsBadInput(t *testing.T) {
	_, err := ParseConfig([]byte("width: 10\ncolour: red\n"))
	require.Error(t, err)

	_, err = ParseConfig([]byte("width: 0\n"))
	require.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = ParseConfig([]byte("seed: noise\n"))
	require.ErrorIs(t, err, ErrUnknownSeed)

	_, err = ParseConfig([]byte("patterns:\n  - pattern: gosper\n"))
	require.ErrorIs(t, err, ErrUnknownPattern)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 16\nheight: 16\n"), 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 16, c.Width)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParsePlacement(t *testing.T) {
	p, err := ParsePlacement("pulsar@3, 4")
	require.NoError(t, err)
	assert.Equal(t, Placement{Pattern: "pulsar", Row: 3, Col: 4}, p)

	for _, bad := range []string{"pulsar", "@1,2", "glider@1", "glider@a,2", "glider@1,b"} {
		_, err := ParsePlacement(bad)
		assert.Error(t, err, bad)
	}
}

func TestBuildSkipsPlacementsThatDoNotFit(t *testing.T) {
	var logs bytes.Buffer
	c := DefaultConfig()
	c.Width, c.Height = 20, 20
	c.Seed = SeedDead
	c.Patterns = []Placement{
		{Pattern: "pulsar", Row: 10, Col: 0},
		{Pattern: "glider", Row: 0, Col: 0},
	}

	e, err := c.Build(WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	require.NoError(t, err)
	assert.Equal(t, 5, e.Population())
	assert.Contains(t, logs.String(), "pattern does not fit")
}

func TestBuildRandomIsReproducible(t *testing.T) {
	c := DefaultConfig()
	c.Width, c.Height = 24, 24
	c.Seed = SeedRandom
	c.RandomSeed = 5

	a, err := c.Build()
	require.NoError(t, err)
	b, err := c.Build()
	require.NoError(t, err)
	assert.Equal(t, a.Cells(), b.Cells())
}
