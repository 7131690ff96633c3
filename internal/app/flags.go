package app

import (
	"flag"
	"fmt"

	"mad-life/internal/session"
	"mad-life/pkg/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	CellSize int
	TPS      int
	ShowGrid bool
	Fill     float64
	Seed     int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 1200, Height: 800, CellSize: 20, TPS: 60, ShowGrid: true, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "world width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "world height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.BoolVar(&c.ShowGrid, "grid", c.ShowGrid, "draw grid lines at startup")
	fs.Float64Var(&c.Fill, "fill", c.Fill, "probability that a cell starts alive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial fill")
}

// World returns the world parameters described by the config.
func (c *Config) World() session.World {
	return session.World{Width: c.Width, Height: c.Height, CellSize: c.CellSize}
}

// Validate checks the config before any window is opened.
func (c *Config) Validate() error {
	if err := c.World().Validate(); err != nil {
		return err
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Fill < 0 || c.Fill > 1 {
		return fmt.Errorf("fill must be within [0,1], got %g", c.Fill)
	}
	return nil
}

// NewSession validates the config and builds a session, seeding it with a
// random soup when Fill is set.
func (c *Config) NewSession(status session.Status) (*session.Session, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s, err := session.New(c.World(), status)
	if err != nil {
		return nil, err
	}
	s.SetShowGrid(c.ShowGrid)
	if c.Fill > 0 {
		g := s.Snapshot()
		core.Fill(g, core.NewRNG(c.Seed), c.Fill)
		if err := s.Seed(g); err != nil {
			return nil, err
		}
	}
	return s, nil
}
