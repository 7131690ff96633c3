package render

import (
	"image"
	"image/color"

	"mad-life/pkg/core"

	"github.com/fogleman/gg"
)

// GridLines rasterises a line along the left and top edge of every cell for
// a grid of size drawn at cell pixels per cell. The rest is transparent.
func GridLines(size core.Size, cell int, line color.Color) image.Image {
	w, h := size.W*cell, size.H*cell
	dc := gg.NewContext(w, h)
	dc.SetColor(line)
	dc.SetLineWidth(1)
	// Half-pixel offsets keep 1px lines on a single pixel row or column.
	for x := 0; x < size.W; x++ {
		fx := float64(x*cell) + 0.5
		dc.DrawLine(fx, 0, fx, float64(h))
	}
	for y := 0; y < size.H; y++ {
		fy := float64(y*cell) + 0.5
		dc.DrawLine(0, fy, float64(w), fy)
	}
	dc.Stroke()
	return dc.Image()
}
