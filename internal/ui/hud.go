//go:build ebiten

package ui

import (
	"image/color"

	"mad-life/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status text in the top-left corner of the world view.
type HUD struct {
	console *Console
	visible bool
	pixel   *ebiten.Image
}

// NewHUD constructs a HUD that reads its notices from console.
func NewHUD(console *Console) *HUD {
	h := &HUD{console: console, visible: true}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Toggle shows or hides the HUD.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Draw paints the status panel for frame.
func (h *HUD) Draw(screen *ebiten.Image, frame session.Frame) {
	if h == nil || !h.visible {
		return
	}
	var last string
	if h.console != nil {
		last = h.console.Last()
	}
	lines := HUDLines(frame, last)

	face := basicfont.Face7x13
	width := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	height := len(lines) * lineHeight

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*panelPadding), float64(height+panelPadding))
	op.ColorScale.Scale(16.0/255, 16.0/255, 20.0/255, 0.8)
	screen.DrawImage(h.pixel, op)

	for i, line := range lines {
		clr := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if line == OldestNotice {
			clr = color.RGBA{R: 255, G: 170, B: 90, A: 255}
		}
		text.Draw(screen, line, face, panelPadding, panelPadding+labelBaseline+i*lineHeight, clr)
	}
}

const (
	panelPadding  = 6
	lineHeight    = 16
	labelBaseline = 11
)
