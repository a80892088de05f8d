package life

import (
	"fmt"

	"github.com/j-ikonen/wasm-game-of-life/pkg/core"
)

// Seed decides the initial state of the cell at linear index i. It is called
// once per cell in row-major order. A nil Seed leaves every cell dead.
type Seed func(i int) bool

// Seed policy names accepted by ParseSeed.
const (
	SeedDead   = "dead"
	SeedStripe = "stripe"
	SeedRandom = "random"
)

// AllDead returns the empty seed.
func AllDead() Seed { return nil }

// Stripe marks cell i alive when i is even or a multiple of seven. The result
// is fully reproducible and is used by the default constructor.
func Stripe() Seed {
	return func(i int) bool { return i%2 == 0 || i%7 == 0 }
}

// Random marks each cell alive with probability one half, drawing from src.
func Random(src core.Uniform) Seed {
	return func(int) bool { return src.Float64() < 0.5 }
}

// ParseSeed maps a policy name to a Seed. src is only consulted by the random
// policy and may be nil otherwise.
func ParseSeed(name string, src core.Uniform) (Seed, error) {
	switch name {
	case SeedDead, "empty", "":
		return AllDead(), nil
	case SeedStripe:
		return Stripe(), nil
	case SeedRandom:
		if src == nil {
			return nil, fmt.Errorf("%w: %q needs a random source", ErrUnknownSeed, name)
		}
		return Random(src), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSeed, name)
}
