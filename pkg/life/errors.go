package life

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a width or height is not positive.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrPatternDoesNotFit is returned when a pattern's bounding box would
	// cross the grid edge at the requested anchor.
	ErrPatternDoesNotFit = errors.New("pattern does not fit")

	// ErrUnknownPattern is returned for names missing from the pattern table.
	ErrUnknownPattern = errors.New("unknown pattern")

	// ErrUnknownSeed is returned for unrecognised seed policy names.
	ErrUnknownSeed = errors.New("unknown seed policy")
)

// CellError reports a coordinate rejected by a mutation primitive.
type CellError struct {
	Row, Col      int
	Width, Height int
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cell (%d,%d) outside %dx%d grid", e.Row, e.Col, e.Width, e.Height)
}

func (e *CellError) Unwrap() error { return ErrOutOfBounds }

// PlacementError reports a pattern insertion that was not applied.
type PlacementError struct {
	Pattern       string
	Row, Col      int
	Width, Height int
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("cannot place %s at (%d,%d) on %dx%d grid", e.Pattern, e.Row, e.Col, e.Width, e.Height)
}

func (e *PlacementError) Unwrap() error { return ErrPatternDoesNotFit }
