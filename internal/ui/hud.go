//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/j-ikonen/wasm-game-of-life/pkg/core"
)

const (
	panelPadding   = 10
	headerBaseline = 12
	lineSpacing    = 18
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	src        core.ParameterProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	paused     bool
}

// NewHUD constructs a HUD for the provided parameter source and panel width.
func NewHUD(src core.ParameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{src: src, width: width}
}

// Width returns the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update pulls a fresh snapshot from the source.
func (h *HUD) Update(paused bool) {
	if h == nil || h.src == nil {
		return
	}
	h.snapshot = h.src.Parameters()
	h.paused = paused
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	title := "Life"
	if h.paused {
		title = "Life (paused)"
	}
	text.Draw(h.panel, title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, group := range h.snapshot.Groups {
		y += lineSpacing
		text.Draw(h.panel, group.Name, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		for _, p := range group.Params {
			y += lineSpacing
			line := fmt.Sprintf("%-11s %s", p.Label, p.Value)
			text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
