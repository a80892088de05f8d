package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j-ikonen/wasm-game-of-life/pkg/life"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootRejectsInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "patterns", "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestPatternsText(t *testing.T) {
	out, _, err := execute(t, "patterns")
	require.NoError(t, err)
	assert.Contains(t, out, "glider      3x3    5 cells\n")
	assert.Contains(t, out, "pulsar     15x15  48 cells\n")
}

func TestPatternsJSON(t *testing.T) {
	out, _, err := execute(t, "patterns", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string        `json:"status"`
		Data   []PatternInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, len(life.Patterns()))
	assert.Equal(t, PatternInfo{Name: "spaceship", Rows: 4, Cols: 5, Cells: 9}, resp.Data[4])
}

func TestRunPrintsFinalFrame(t *testing.T) {
	out, _, err := execute(t, "run",
		"--width", "5", "--height", "5",
		"--seed", "dead",
		"--pattern", "glider@0,0",
		"--steps", "4",
	)
	require.NoError(t, err)
	assert.Equal(t, "generation 4 population 5 born 2 died 2\n"+
		".....\n"+
		"...#.\n"+
		".#.#.\n"+
		"..##.\n"+
		".....\n", out)
}

func TestRunEvery(t *testing.T) {
	out, _, err := execute(t, "run",
		"--width", "5", "--height", "5",
		"--seed", "dead",
		"-p", "blinker@2,1",
		"--steps", "3",
		"--every", "1",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "generation 1 population 3 born 2 died 2\n")
	assert.Contains(t, out, "generation 2 population 3 born 2 died 2\n")
	assert.Contains(t, out, "generation 3 population 3 born 2 died 2\n")
	assert.Equal(t, 3, bytes.Count([]byte(out), []byte("generation")))
}

func TestRunJSON(t *testing.T) {
	out, _, err := execute(t, "run", "--format", "json",
		"--width", "5", "--height", "5",
		"--seed", "dead",
		"--pattern", "blinker@2,1",
		"--steps", "1",
	)
	require.NoError(t, err)

	var resp struct {
		Status string    `json:"status"`
		Data   RunResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, RunResult{
		Width: 5, Height: 5,
		Generation: 1,
		Population: 3,
		Born:       []int{7, 17},
		Died:       []int{11, 13},
	}, resp.Data)
}

func TestRunConfigFileWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
width: 8
height: 8
seed: dead
steps: 2
patterns:
  - pattern: block
    row: 3
    col: 3
`), 0o644))

	out, _, err := execute(t, "run", "--config", path, "--steps", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "generation 5 population 4 born 0 died 0\n")
}

func TestRunPatternThatDoesNotFitIsLogged(t *testing.T) {
	out, errOut, err := execute(t, "run",
		"--width", "6", "--height", "6",
		"--seed", "dead",
		"--pattern", "pulsar@0,0",
		"--steps", "0",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "generation 0 population 0")
	assert.Contains(t, errOut, "pattern does not fit")
	assert.Contains(t, errOut, "run=")
}

func TestRunRejectsBadInput(t *testing.T) {
	cases := [][]string{
		{"run", "--width", "0"},
		{"run", "--seed", "plaid"},
		{"run", "--pattern", "gosper@0,0"},
		{"run", "--pattern", "glider"},
		{"run", "--config", filepath.Join(t.TempDir(), "missing.yaml")},
	}
	for _, args := range cases {
		_, _, err := execute(t, args...)
		require.Error(t, err, "%v", args)
		assert.Equal(t, ExitCommandError, GetExitCode(err), "%v", args)
	}
}

func TestBench(t *testing.T) {
	out, _, err := execute(t, "bench", "--quiet",
		"--width", "16", "--height", "16",
		"--steps", "5",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "5 generations on 16x16")
}

func TestBenchProgressBarGoesToStderr(t *testing.T) {
	out, _, err := execute(t, "bench", "--format", "json",
		"--width", "8", "--height", "8",
		"--steps", "3",
	)
	require.NoError(t, err)

	var resp struct {
		Data BenchResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 3, resp.Data.Generations)
	assert.Equal(t, 8, resp.Data.Width)
}
