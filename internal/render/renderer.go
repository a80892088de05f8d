//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/j-ikonen/wasm-game-of-life/pkg/core"
)

// GridPainter keeps an RGBA copy of a grid on an ebiten image. Refresh
// repaints every cell; Patch repaints only the last step's deltas.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte

	on, off color.Color
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, on, off color.Color) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), on: on, off: off}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Refresh repaints the full grid from its packed cells.
func (gp *GridPainter) Refresh(g core.Grid) {
	if g.Size() != (core.Size{W: gp.w, H: gp.h}) {
		return
	}
	FillPacked(gp.buf, g.Cells(), gp.w*gp.h, gp.on, gp.off)
	gp.img.WritePixels(gp.buf)
}

// Patch repaints the cells that changed in the grid's last step.
func (gp *GridPainter) Patch(g core.Grid) {
	alive, dead := g.AliveDeltas(), g.DeadDeltas()
	if len(alive) == 0 && len(dead) == 0 {
		return
	}
	ApplyDeltas(gp.buf, alive, dead, gp.on, gp.off)
	gp.img.WritePixels(gp.buf)
}

// Draw blits the painter image onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
