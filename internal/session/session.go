// Package session turns per-frame input into edits and generation steps.
package session

import (
	"errors"
	"fmt"

	"mad-life/pkg/core"
	"mad-life/pkg/history"
)

// ErrQuit is returned by Update when the user asked to exit.
var ErrQuit = errors.New("session: quit requested")

// Status receives informational updates. It is never consulted.
type Status interface {
	Generation(n int)
	AtOldest()
}

// World fixes the pixel extent of the world and the pixel size of a cell.
type World struct {
	Width    int
	Height   int
	CellSize int
}

// Size returns the grid dimensions the world maps to.
func (w World) Size() core.Size {
	return core.Size{W: w.Width / w.CellSize, H: w.Height / w.CellSize}
}

// Validate reports whether the world yields a non-empty grid.
func (w World) Validate() error {
	if w.Width <= 0 || w.Height <= 0 || w.CellSize <= 0 {
		return fmt.Errorf("world %dx%d with cell %d: dimensions must be positive", w.Width, w.Height, w.CellSize)
	}
	if w.CellSize > w.Width || w.CellSize > w.Height {
		return fmt.Errorf("cell size %d exceeds world %dx%d", w.CellSize, w.Width, w.Height)
	}
	return nil
}

// Cell maps a pointer position to grid coordinates. ok is false when the
// position lies outside the world; editing never wraps.
func (w World) Cell(x, y int) (row, col int, ok bool) {
	size := w.Size()
	if x < 0 || y < 0 || x >= w.Width || y >= w.Height {
		return 0, 0, false
	}
	row, col = y/w.CellSize, x/w.CellSize
	// Worlds that are not a multiple of the cell size leave a partial strip.
	if row >= size.H || col >= size.W {
		return 0, 0, false
	}
	return row, col, true
}

// Frame is what gets published to the renderer after an update.
type Frame struct {
	Grid       core.View
	ShowGrid   bool
	Autoplay   bool
	Generation int
}

// Session is the single owner of the live grid and its history.
type Session struct {
	world   World
	grid    *core.Grid
	history *history.Controller
	status  Status

	showGrid bool
	autoplay bool
	painting bool
	erasing  bool
}

// New builds a session for the world with an empty grid.
func New(world World, status Status) (*Session, error) {
	if err := world.Validate(); err != nil {
		return nil, err
	}
	size := world.Size()
	grid, err := core.NewGrid(size.W, size.H)
	if err != nil {
		return nil, err
	}
	if status == nil {
		status = nopStatus{}
	}
	return &Session{
		world:    world,
		grid:     grid,
		history:  history.New(),
		status:   status,
		showGrid: true,
	}, nil
}

// SetShowGrid sets whether grid lines are drawn.
func (s *Session) SetShowGrid(v bool) { s.showGrid = v }

// Seed replaces the live cells with the contents of g. It is only valid at
// generation 0 and with matching dimensions.
func (s *Session) Seed(g *core.Grid) error {
	if s.history.Len() != 0 {
		return fmt.Errorf("seed at generation %d: only allowed before stepping", s.history.Generation())
	}
	if g.Size() != s.grid.Size() {
		return fmt.Errorf("seed size %v does not match grid %v", g.Size(), s.grid.Size())
	}
	s.grid = g.Clone()
	return nil
}

// Update processes one frame of input. The order is fixed: discrete events,
// then the held paint/erase edit, then one autoplay step.
func (s *Session) Update(in Input) error {
	for _, ev := range in.Events {
		if err := s.handle(ev); err != nil {
			return err
		}
	}
	s.applyEdit(in.PointerX, in.PointerY)
	if s.autoplay {
		s.stepForward()
	}
	return nil
}

func (s *Session) handle(ev Event) error {
	switch ev {
	case EventQuit:
		return ErrQuit
	case EventToggleGrid:
		s.showGrid = !s.showGrid
	case EventToggleAutoplay:
		s.autoplay = !s.autoplay
	case EventReset:
		s.grid = s.history.Reset(s.grid)
		s.status.Generation(0)
	case EventPaintDown:
		s.painting = true
	case EventPaintUp:
		s.painting = false
	case EventEraseDown:
		s.erasing = true
	case EventEraseUp:
		s.erasing = false
	case EventStepForward:
		s.stepForward()
	case EventStepBack:
		s.stepBack()
	}
	return nil
}

// applyEdit paints or erases the cell under the pointer. With both buttons
// held, painting wins.
func (s *Session) applyEdit(x, y int) {
	if !s.painting && !s.erasing {
		return
	}
	row, col, ok := s.world.Cell(x, y)
	if !ok {
		return
	}
	s.grid.Set(row, col, s.painting)
}

func (s *Session) stepForward() {
	s.grid = s.history.StepForward(s.grid)
	s.status.Generation(s.history.Generation())
}

func (s *Session) stepBack() {
	prev, ok := s.history.StepBack(s.grid)
	if !ok {
		s.status.AtOldest()
		return
	}
	s.grid = prev
	s.status.Generation(s.history.Generation())
}

// Frame returns the state to draw. The grid is exposed read-only and is only
// valid until the next Update.
func (s *Session) Frame() Frame {
	return Frame{
		Grid:       s.grid,
		ShowGrid:   s.showGrid,
		Autoplay:   s.autoplay,
		Generation: s.history.Generation(),
	}
}

// Snapshot returns an independent copy of the live grid.
func (s *Session) Snapshot() *core.Grid { return s.grid.Clone() }

// Generation returns the current generation.
func (s *Session) Generation() int { return s.history.Generation() }

// Painting reports whether the paint button is held.
func (s *Session) Painting() bool { return s.painting }

// Erasing reports whether the erase button is held.
func (s *Session) Erasing() bool { return s.erasing }

// World returns the world parameters.
func (s *Session) World() World { return s.world }

type nopStatus struct{}

func (nopStatus) Generation(int) {}
func (nopStatus) AtOldest()      {}
