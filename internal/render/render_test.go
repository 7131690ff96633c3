package render

import (
	"image/color"
	"testing"

	"mad-life/pkg/core"
)

func TestFillBinaryRGBA(t *testing.T) {
	g := core.MustGrid(3, 2)
	g.Set(0, 1, true)
	g.Set(1, 2, true)
	buf := make([]byte, 4*3*2)
	fillBinaryRGBA(buf, g, color.White, color.Black)

	for i := 0; i < 6; i++ {
		alive := i == 1 || i == 5
		px := buf[i*4 : i*4+4]
		want := byte(0)
		if alive {
			want = 255
		}
		if px[0] != want || px[1] != want || px[2] != want || px[3] != 255 {
			t.Fatalf("pixel %d=%v, alive=%v", i, px, alive)
		}
	}
}

func TestGridLines(t *testing.T) {
	size := core.Size{W: 4, H: 3}
	img := GridLines(size, 10, color.White)
	b := img.Bounds()
	if b.Dx() != 40 || b.Dy() != 30 {
		t.Fatalf("bounds=%v, expected 40x30", b)
	}
	alpha := func(x, y int) uint32 {
		_, _, _, a := img.At(x, y).RGBA()
		return a
	}
	for _, p := range [][2]int{{0, 5}, {10, 15}, {30, 25}, {5, 0}, {35, 20}} {
		if alpha(p[0], p[1]) == 0 {
			t.Fatalf("expected a line at (%d,%d)", p[0], p[1])
		}
	}
	for _, p := range [][2]int{{5, 5}, {15, 15}, {35, 25}} {
		if alpha(p[0], p[1]) != 0 {
			t.Fatalf("cell interior at (%d,%d) is not transparent", p[0], p[1])
		}
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	if p.On == nil || p.Off == nil || p.Line == nil {
		t.Fatal("palette has unset colours")
	}
}
