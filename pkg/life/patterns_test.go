package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternsAreSorted(t *testing.T) {
	assert.Equal(t, []string{"blinker", "block", "glider", "pulsar", "spaceship"}, Patterns())
}

func TestPatternCellsStayInsideBoundingBox(t *testing.T) {
	for _, name := range Patterns() {
		p, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, name, p.Name)

		seen := make(map[Cell]bool)
		for _, c := range p.Cells {
			assert.False(t, seen[c], "%s repeats %v", name, c)
			seen[c] = true
			assert.True(t, c.Row >= 0 && c.Row < p.Rows, "%s row %d", name, c.Row)
			assert.True(t, c.Col >= 0 && c.Col < p.Cols, "%s col %d", name, c.Col)
		}
	}
}

func TestPulsarShape(t *testing.T) {
	assert.Len(t, Pulsar.Cells, 48)
	assert.Contains(t, Pulsar.Cells, Cell{1, 3})
	assert.Contains(t, Pulsar.Cells, Cell{13, 11})
	assert.Contains(t, Pulsar.Cells, Cell{11, 13})
	assert.NotContains(t, Pulsar.Cells, Cell{7, 7})
}

func TestPulsarHasPeriodThree(t *testing.T) {
	e := newEmpty(t, 17, 17)
	require.NoError(t, e.InsertPattern(Pulsar, 1, 1))
	start := aliveIndices(e)

	e.Step()
	assert.NotEqual(t, start, aliveIndices(e))
	e.Step()
	e.Step()
	assert.Equal(t, start, aliveIndices(e))
}

func TestFits(t *testing.T) {
	assert.True(t, Glider.Fits(3, 3, 0, 0))
	assert.False(t, Glider.Fits(3, 3, 0, 1))
	assert.False(t, Glider.Fits(3, 3, 1, 0))
	assert.False(t, Glider.Fits(10, 10, -1, 0))
	assert.True(t, Blinker.Fits(3, 1, 0, 0))
}
