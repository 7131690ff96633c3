//go:build ebiten

package render

import (
	"mad-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads cell states into an image at one pixel per cell and
// draws it scaled to the cell size, with an optional grid-line overlay.
type GridPainter struct {
	size    core.Size
	cell    int
	palette Palette
	img     *ebiten.Image
	lines   *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for a grid of the given size.
func NewGridPainter(size core.Size, cell int, palette Palette) *GridPainter {
	gp := &GridPainter{size: size, cell: cell, palette: palette, buf: make([]byte, 4*size.W*size.H)}
	gp.img = ebiten.NewImage(size.W, size.H)
	gp.lines = ebiten.NewImageFromImage(GridLines(size, cell, palette.Line))
	return gp
}

// Draw paints cells onto dst, followed by grid lines when showGrid is set.
func (gp *GridPainter) Draw(dst *ebiten.Image, cells core.View, showGrid bool) {
	if cells.Size() != gp.size {
		return
	}
	fillBinaryRGBA(gp.buf, cells, gp.palette.On, gp.palette.Off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(gp.cell), float64(gp.cell))
	dst.DrawImage(gp.img, op)
	if showGrid {
		dst.DrawImage(gp.lines, nil)
	}
}

// Size returns the grid dimensions the painter was built for.
func (gp *GridPainter) Size() core.Size { return gp.size }
