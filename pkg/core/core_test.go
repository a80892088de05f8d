package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSizeWrap(t *testing.T) {
	s := Size{W: 5, H: 4}

	cases := []struct {
		row, col         int
		wantRow, wantCol int
	}{
		{0, 0, 0, 0},
		{-1, 0, 3, 0},
		{0, -1, 0, 4},
		{4, 5, 0, 0},
		{-5, 11, 3, 1},
	}
	for _, tc := range cases {
		r, c := s.Wrap(tc.row, tc.col)
		assert.Equal(t, tc.wantRow, r, "row for (%d,%d)", tc.row, tc.col)
		assert.Equal(t, tc.wantCol, c, "col for (%d,%d)", tc.row, tc.col)
	}
}

func TestSizeIndexAndCoord(t *testing.T) {
	s := Size{W: 7, H: 3}
	assert.Equal(t, 21, s.Cells())
	assert.Equal(t, 16, s.Index(2, 2))

	r, c := s.Coord(16)
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)

	assert.True(t, s.Contains(2, 6))
	assert.False(t, s.Contains(3, 0))
	assert.False(t, s.Contains(0, -1))
	assert.False(t, Size{W: 0, H: 3}.Valid())
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(99), NewRNG(99)
	for i := 0; i < 32; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
	assert.Zero(t, a.IntN(0))
}

func TestFixedStep(t *testing.T) {
	clock := time.Unix(0, 0)
	var slept time.Duration
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }
	fs.sleep = func(d time.Duration) {
		slept += d
		clock = clock.Add(d)
	}

	assert.Equal(t, 100*time.Millisecond, fs.Interval())
	assert.True(t, fs.ShouldStep(), "first tick is due immediately")
	assert.False(t, fs.ShouldStep())

	fs.Wait()
	assert.Equal(t, 100*time.Millisecond, slept)

	fs.SetTPS(0)
	assert.True(t, fs.ShouldStep())
}

func TestParameterSnapshot(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "b", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	v, ok := s.Lookup("y")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
	_, ok = s.Lookup("z")
	assert.False(t, ok)
	assert.Equal(t, map[string]string{"x": "1", "y": "2"}, s.Map())
}
