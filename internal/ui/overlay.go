//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/j-ikonen/wasm-game-of-life/pkg/core"
)

// Overlay tints the cells born and killed in the last step. It is toggled
// with the D key.
type Overlay struct {
	grid  core.Grid
	scale int
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(grid core.Grid, scale int) *Overlay {
	o := &Overlay{grid: grid, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay's key binding.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	size := o.grid.Size()
	o.drawCells(screen, size, scale, o.grid.AliveDeltas(), color.RGBA{R: 60, G: 200, B: 90, A: 160})
	o.drawCells(screen, size, scale, o.grid.DeadDeltas(), color.RGBA{R: 220, G: 60, B: 60, A: 160})
}

func (o *Overlay) drawCells(screen *ebiten.Image, size core.Size, scale int, cells []int, col color.RGBA) {
	for _, idx := range cells {
		row, c := size.Coord(idx)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(scale), float64(scale))
		op.GeoM.Translate(float64(c*scale), float64(row*scale))
		op.ColorScale.ScaleWithColor(col)
		screen.DrawImage(o.pixel, op)
	}
}
