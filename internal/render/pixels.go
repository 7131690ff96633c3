package render

import (
	"image/color"

	"mad-life/pkg/core"
)

// Palette holds the colours used to draw a Life grid.
type Palette struct {
	On   color.Color
	Off  color.Color
	Line color.Color
}

// DefaultPalette draws white cells on black with grey grid lines.
func DefaultPalette() Palette {
	return Palette{
		On:   color.White,
		Off:  color.Black,
		Line: color.RGBA{R: 128, G: 128, B: 128, A: 255},
	}
}

// fillBinaryRGBA converts cell states into RGBA pixels in buf, one pixel per
// cell in row-major order.
func fillBinaryRGBA(buf []byte, cells core.View, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	size := cells.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			base := (y*size.W + x) * 4
			if cells.Get(y, x) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}
