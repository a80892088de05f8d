//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/j-ikonen/wasm-game-of-life/internal/render"
	"github.com/j-ikonen/wasm-game-of-life/internal/ui"
	"github.com/j-ikonen/wasm-game-of-life/pkg/core"
	"github.com/j-ikonen/wasm-game-of-life/pkg/life"
)

// Game adapts a life.Engine to the ebiten.Game interface.
type Game struct {
	engine  *life.Engine
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	logger  *slog.Logger

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided engine.
func New(e *life.Engine, opts Options, logger *slog.Logger) *Game {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	g := &Game{
		engine:  e,
		painter: render.NewGridPainter(e.Width(), e.Height(), color.White, color.Black),
		hud:     ui.NewHUD(e, opts.HUDWidth),
		overlay: ui.NewOverlay(e, opts.Scale),
		logger:  logger,
		scale:   opts.Scale,
		seed:    opts.RandomSeed,
	}
	g.painter.Refresh(e)
	return g
}

// Run opens a window and drives the engine until it is closed.
func Run(e *life.Engine, opts Options, logger *slog.Logger) error {
	g := New(e, opts, logger)
	ebiten.SetWindowTitle("life")
	ebiten.SetTPS(opts.TPS)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}

	dirty := false
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.engine.ClearCurrent()
		dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.Randomize(core.NewRNG(g.seed))
		dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.seed = time.Now().UnixNano()
		g.engine.Randomize(core.NewRNG(g.seed))
		dirty = true
	}
	for key, pattern := range map[ebiten.Key]life.Pattern{
		ebiten.KeyG: life.Glider,
		ebiten.KeyP: life.Pulsar,
		ebiten.KeyL: life.Spaceship,
	} {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if row, col, ok := g.cursorCell(); ok {
			// Rejections are logged by the engine.
			dirty = g.engine.InsertPattern(pattern, row, col) == nil || dirty
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if row, col, ok := g.cursorCell(); ok {
			if err := g.engine.ToggleCell(row, col); err != nil {
				g.logger.Debug("toggle ignored", "err", err)
			} else {
				dirty = true
			}
		}
	}
	if dirty {
		g.painter.Refresh(g.engine)
	}

	g.overlay.Update()

	if !g.paused || g.tickOnce {
		g.engine.Step()
		g.painter.Patch(g.engine)
		g.tickOnce = false
	}
	g.hud.Update(g.paused)
	return nil
}

func (g *Game) cursorCell() (row, col int, ok bool) {
	x, y := ebiten.CursorPosition()
	row, col = y/g.scale, x/g.scale
	return row, col, g.engine.Size().Contains(row, col)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.engine.Width()*g.scale, g.engine.Height()*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.engine.Width()*g.scale + g.hud.Width(), g.engine.Height() * g.scale
}
