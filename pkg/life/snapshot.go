package life

import (
	"slices"

	"github.com/j-ikonen/wasm-game-of-life/pkg/core"
)

// Snapshot is an owned copy of an engine's visible state. Unlike the engine's
// views it stays valid across later steps.
type Snapshot struct {
	Dims       core.Size
	Generation uint64
	Words      []uint64
	Alive      []int
	Dead       []int
}

// Snapshot copies the current generation and the last step's deltas.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Dims:       e.size,
		Generation: e.generation,
		Words:      slices.Clone(e.Cells()),
		Alive:      slices.Clone(e.alive),
		Dead:       slices.Clone(e.dead),
	}
}

// Size returns the captured grid dimensions.
func (s Snapshot) Size() core.Size { return s.Dims }

// Cells returns the captured packed words.
func (s Snapshot) Cells() []uint64 { return s.Words }

// IsAlive reports the captured state of cell idx.
func (s Snapshot) IsAlive(idx int) bool {
	if idx < 0 || idx >= s.Dims.Cells() {
		return false
	}
	w := idx / 64
	if w >= len(s.Words) {
		return false
	}
	return s.Words[w]&(1<<(uint(idx)%64)) != 0
}

// AliveDeltas returns the captured births.
func (s Snapshot) AliveDeltas() []int { return s.Alive }

// DeadDeltas returns the captured deaths.
func (s Snapshot) DeadDeltas() []int { return s.Dead }

// AliveIndices lists every live cell index in ascending order.
func (s Snapshot) AliveIndices() []int {
	var out []int
	for i := 0; i < s.Dims.Cells(); i++ {
		if s.IsAlive(i) {
			out = append(out, i)
		}
	}
	return out
}
