// Package life implements Conway's Game of Life (B3/S23) on a fixed-size
// toroidal grid.
//
// The Engine keeps two bit-packed cell buffers and flips between them once
// per Step, so the generation visible through Cells is always complete. Each
// Step also records which cells were born and which died, letting a renderer
// redraw only what changed.
//
// The views returned by Cells, AliveDeltas and DeadDeltas borrow the engine's
// internal buffers. They are valid until the next call to Step or to any
// mutating method; callers that need to keep state across a step should use
// Snapshot. An Engine is not safe for concurrent use.
package life

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/bits-and-blooms/bitset"

	"github.com/j-ikonen/wasm-game-of-life/pkg/core"
)

// Engine is a double-buffered Life grid with per-step change tracking.
type Engine struct {
	size  core.Size
	cells [2]*bitset.BitSet
	now   int

	alive []int
	dead  []int

	generation uint64
	logger     *slog.Logger
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger routes engine diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New returns a w by h engine whose current buffer is initialised by seed.
func New(w, h int, seed Seed, opts ...Option) (*Engine, error) {
	size := core.Size{W: w, H: h}
	if !size.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	e := &Engine{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	e.alloc(size)
	if seed != nil {
		cur := e.cells[e.now]
		for i := 0; i < size.Cells(); i++ {
			cur.SetTo(uint(i), seed(i))
		}
	}
	return e, nil
}

// NewDefault returns a 128x128 engine with the stripe seed.
func NewDefault(opts ...Option) *Engine {
	e, _ := New(128, 128, Stripe(), opts...)
	return e
}

// NewRandom returns a 128x128 engine seeded from src.
func NewRandom(src core.Uniform, opts ...Option) *Engine {
	e, _ := New(128, 128, Random(src), opts...)
	return e
}

// NewSpaceship returns an empty 64x64 engine carrying a lightweight
// spaceship anchored at (10, 10).
func NewSpaceship(opts ...Option) *Engine {
	e, _ := New(64, 64, AllDead(), opts...)
	_ = e.InsertPattern(Spaceship, 10, 10)
	return e
}

func (e *Engine) alloc(size core.Size) {
	n := uint(size.Cells())
	e.size = size
	e.cells = [2]*bitset.BitSet{bitset.New(n), bitset.New(n)}
	e.now = 0
	e.alive = make([]int, 0, n)
	e.dead = make([]int, 0, n)
}

// Step computes the next generation into the scratch buffer and then makes
// it current.
func (e *Engine) Step() {
	e.alive = e.alive[:0]
	e.dead = e.dead[:0]
	if e.size.Cells() == 0 {
		return
	}

	cur, nxt := e.cells[e.now], e.cells[e.now^1]
	w, h := e.size.W, e.size.H
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			was := cur.Test(uint(idx))
			is := nextState(was, e.liveNeighbors(cur, row, col))
			nxt.SetTo(uint(idx), is)
			if is == was {
				continue
			}
			if is {
				e.alive = append(e.alive, idx)
			} else {
				e.dead = append(e.dead, idx)
			}
		}
	}
	e.now ^= 1
	e.generation++
}

// liveNeighbors counts the live cells among the eight toroidal neighbours.
func (e *Engine) liveNeighbors(cur *bitset.BitSet, row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := e.size.Wrap(row+dr, col+dc)
			if cur.Test(uint(e.size.Index(r, c))) {
				count++
			}
		}
	}
	return count
}

// nextState applies B3/S23 to a single cell.
func nextState(alive bool, neighbors int) bool {
	switch {
	case alive && neighbors < 2:
		return false
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case alive && neighbors > 3:
		return false
	case !alive && neighbors == 3:
		return true
	default:
		return alive
	}
}

func (e *Engine) checkCell(row, col int) error {
	if !e.size.Contains(row, col) {
		return &CellError{Row: row, Col: col, Width: e.size.W, Height: e.size.H}
	}
	return nil
}

// SetCells marks every given coordinate alive. If any coordinate is out of
// bounds nothing is changed.
func (e *Engine) SetCells(cells []Cell) error {
	for _, c := range cells {
		if err := e.checkCell(c.Row, c.Col); err != nil {
			return err
		}
	}
	cur := e.cells[e.now]
	for _, c := range cells {
		cur.Set(uint(e.size.Index(c.Row, c.Col)))
	}
	return nil
}

// ToggleCell flips the cell at (row, col).
func (e *Engine) ToggleCell(row, col int) error {
	if err := e.checkCell(row, col); err != nil {
		return err
	}
	e.cells[e.now].Flip(uint(e.size.Index(row, col)))
	return nil
}

// IsAlive reports the state of the cell at linear index idx. Indices outside
// the grid report false.
func (e *Engine) IsAlive(idx int) bool {
	if idx < 0 || idx >= e.size.Cells() {
		return false
	}
	return e.cells[e.now].Test(uint(idx))
}

// ClearCurrent kills every cell in the current generation.
func (e *Engine) ClearCurrent() {
	e.cells[e.now].ClearAll()
}

// Randomize reseeds the current generation, each cell alive with probability
// one half.
func (e *Engine) Randomize(src core.Uniform) {
	seed := Random(src)
	cur := e.cells[e.now]
	for i := 0; i < e.size.Cells(); i++ {
		cur.SetTo(uint(i), seed(i))
	}
}

// SetWidth changes the grid width. The old layout is discarded and the grid
// restarts empty with no recorded deltas.
func (e *Engine) SetWidth(w int) error {
	return e.resize(core.Size{W: w, H: e.size.H})
}

// SetHeight changes the grid height with the same semantics as SetWidth.
func (e *Engine) SetHeight(h int) error {
	return e.resize(core.Size{W: e.size.W, H: h})
}

func (e *Engine) resize(size core.Size) error {
	if !size.Valid() {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, size.W, size.H)
	}
	e.alloc(size)
	e.logger.Debug("grid resized", "width", size.W, "height", size.H)
	return nil
}

// InsertPattern sets every cell of p alive relative to the anchor (row, col).
// A pattern whose bounding box would cross the grid edge is not applied; the
// rejection is logged and returned as a *PlacementError.
func (e *Engine) InsertPattern(p Pattern, row, col int) error {
	if !p.Fits(e.size.W, e.size.H, row, col) {
		e.logger.Warn("pattern does not fit",
			"pattern", p.Name,
			"row", row,
			"col", col,
			"width", e.size.W,
			"height", e.size.H,
		)
		return &PlacementError{Pattern: p.Name, Row: row, Col: col, Width: e.size.W, Height: e.size.H}
	}
	cur := e.cells[e.now]
	for _, c := range p.Cells {
		cur.Set(uint(e.size.Index(row+c.Row, col+c.Col)))
	}
	return nil
}

// InsertNamed looks up a pattern by name and inserts it.
func (e *Engine) InsertNamed(name string, row, col int) error {
	p, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return e.InsertPattern(p, row, col)
}

// Width returns the grid width.
func (e *Engine) Width() int { return e.size.W }

// Height returns the grid height.
func (e *Engine) Height() int { return e.size.H }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.size }

// Generation returns the number of completed steps.
func (e *Engine) Generation() uint64 { return e.generation }

// Population returns the number of live cells in the current generation.
func (e *Engine) Population() int { return int(e.cells[e.now].Count()) }

// Cells exposes the current generation as packed 64-bit words. Cell i is bit
// i%64 of word i/64.
func (e *Engine) Cells() []uint64 {
	words := e.cells[e.now].Bytes()
	return words[:len(words):len(words)]
}

// AliveDeltas lists the indices born during the last step in row-major order.
func (e *Engine) AliveDeltas() []int { return e.alive[:len(e.alive):len(e.alive)] }

// DeadDeltas lists the indices that died during the last step in row-major order.
func (e *Engine) DeadDeltas() []int { return e.dead[:len(e.dead):len(e.dead)] }

// Parameters reports the engine's dimensions and last-step statistics.
func (e *Engine) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				{Key: "width", Label: "Width", Value: strconv.Itoa(e.size.W)},
				{Key: "height", Label: "Height", Value: strconv.Itoa(e.size.H)},
			},
		},
		{
			Name: "Generation",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Value: strconv.FormatUint(e.generation, 10)},
				{Key: "population", Label: "Population", Value: strconv.Itoa(e.Population())},
				{Key: "born", Label: "Born", Value: strconv.Itoa(len(e.alive))},
				{Key: "died", Label: "Died", Value: strconv.Itoa(len(e.dead))},
			},
		},
	}}
}
