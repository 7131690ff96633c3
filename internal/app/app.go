//go:build ebiten

package app

import (
	"errors"

	"mad-life/internal/render"
	"mad-life/internal/session"
	"mad-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter
	hud     *ui.HUD
	world   session.World
}

// New constructs a Game drawing sess and reporting through console.
func New(sess *session.Session, console *ui.Console) *Game {
	world := sess.World()
	return &Game{
		sess:    sess,
		painter: render.NewGridPainter(world.Size(), world.CellSize, render.DefaultPalette()),
		hud:     ui.NewHUD(console),
		world:   world,
	}
}

func readControls() Controls {
	return Controls{
		Quit:           inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		ToggleGrid:     inpututil.IsKeyJustPressed(ebiten.KeyG),
		ToggleAutoplay: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Reset:          inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		PaintDown:      inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		PaintUp:        inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		EraseDown:      inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		EraseUp:        inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight),
		StepForward:    inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		StepBack:       inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	x, y := ebiten.CursorPosition()
	err := g.sess.Update(session.Input{Events: readControls().Events(), PointerX: x, PointerY: y})
	if errors.Is(err, session.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.sess.Frame()
	g.painter.Draw(screen, frame.Grid, frame.ShowGrid)
	g.hud.Draw(screen, frame)
}

// Layout returns the logical screen size, which is the world size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.world.Width, g.world.Height
}
