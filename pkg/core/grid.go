package core

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.W * s.H }

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool { return s.W > 0 && s.H > 0 }

// Index returns the row-major linear index for (row, col).
func (s Size) Index(row, col int) int { return row*s.W + col }

// Coord is the inverse of Index.
func (s Size) Coord(idx int) (row, col int) { return idx / s.W, idx % s.W }

// Contains reports whether (row, col) lies inside the grid without wrapping.
func (s Size) Contains(row, col int) bool {
	return row >= 0 && row < s.H && col >= 0 && col < s.W
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (s Size) Wrap(row, col int) (int, int) {
	row = (row%s.H + s.H) % s.H
	col = (col%s.W + s.W) % s.W
	return row, col
}
