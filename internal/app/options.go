package app

import "errors"

// ErrHeadless is returned by Run when the binary was built without the
// ebiten tag.
var ErrHeadless = errors.New("the GUI requires building with the 'ebiten' tag")

// Options configures the windowed driver.
type Options struct {
	Scale      int
	TPS        int
	RandomSeed int64
	HUDWidth   int
}

// DefaultOptions returns Options populated with sensible defaults.
func DefaultOptions() Options {
	return Options{Scale: 4, TPS: 30, RandomSeed: 42, HUDWidth: 180}
}
