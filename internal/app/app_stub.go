//go:build !ebiten

package app

import (
	"log/slog"

	"github.com/j-ikonen/wasm-game-of-life/pkg/life"
)

// Run reports that no window can be opened in the headless build.
func Run(*life.Engine, Options, *slog.Logger) error {
	return ErrHeadless
}
