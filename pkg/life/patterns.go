package life

import "sort"

// Cell is a (row, col) coordinate on the grid or an offset inside a pattern.
type Cell struct {
	Row, Col int
}

// Pattern is a fixed set of live-cell offsets with its bounding box.
type Pattern struct {
	Name  string
	Rows  int
	Cols  int
	Cells []Cell
}

var (
	// Glider travels one cell south-east every four generations.
	Glider = Pattern{
		Name: "glider",
		Rows: 3, Cols: 3,
		Cells: []Cell{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	}

	// Spaceship is a lightweight spaceship travelling west two cells every
	// four generations.
	Spaceship = Pattern{
		Name: "spaceship",
		Rows: 4, Cols: 5,
		Cells: []Cell{
			{0, 1}, {0, 4},
			{1, 0},
			{2, 0}, {2, 4},
			{3, 0}, {3, 1}, {3, 2}, {3, 3},
		},
	}

	// Block is the smallest still life.
	Block = Pattern{
		Name: "block",
		Rows: 2, Cols: 2,
		Cells: []Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	}

	// Blinker is a period-2 oscillator in its horizontal phase.
	Blinker = Pattern{
		Name: "blinker",
		Rows: 1, Cols: 3,
		Cells: []Cell{{0, 0}, {0, 1}, {0, 2}},
	}

	// Pulsar is a period-3 oscillator.
	Pulsar = Pattern{
		Name: "pulsar",
		Rows: 15, Cols: 15,
		Cells: pulsarCells(),
	}
)

var patterns = map[string]Pattern{
	Glider.Name:    Glider,
	Spaceship.Name: Spaceship,
	Block.Name:     Block,
	Blinker.Name:   Blinker,
	Pulsar.Name:    Pulsar,
}

// pulsarCells builds the four bars of three on rows 1, 6, 8, 13 and their
// transposes.
func pulsarCells() []Cell {
	lines := []int{1, 6, 8, 13}
	spans := []int{3, 4, 5, 9, 10, 11}
	cells := make([]Cell, 0, 2*len(lines)*len(spans))
	for _, r := range lines {
		for _, c := range spans {
			cells = append(cells, Cell{r, c})
		}
	}
	for _, c := range lines {
		for _, r := range spans {
			cells = append(cells, Cell{r, c})
		}
	}
	return cells
}

// Lookup returns the named pattern.
func Lookup(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// Patterns returns the names of all known patterns in sorted order.
func Patterns() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fits reports whether the pattern's bounding box anchored at (row, col)
// stays inside a w by h grid without wrapping.
func (p Pattern) Fits(w, h, row, col int) bool {
	return row >= 0 && col >= 0 && row+p.Rows <= h && col+p.Cols <= w
}
