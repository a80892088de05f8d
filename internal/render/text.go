package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/j-ikonen/wasm-game-of-life/pkg/core"
)

const (
	aliveGlyph = '#'
	deadGlyph  = '.'
)

// WriteText writes one line per grid row, '#' for live cells and '.' for
// dead ones.
func WriteText(w io.Writer, g core.Grid) error {
	bw := bufio.NewWriter(w)
	size := g.Size()
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			glyph := byte(deadGlyph)
			if g.IsAlive(size.Index(row, col)) {
				glyph = aliveGlyph
			}
			if err := bw.WriteByte(glyph); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Text renders the grid as a string.
func Text(g core.Grid) string {
	var sb strings.Builder
	_ = WriteText(&sb, g)
	return sb.String()
}
