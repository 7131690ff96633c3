package app

import (
	"flag"
	"testing"

	"mad-life/pkg/core"
)

func TestConfigDefaults(t *testing.T) {
	c := NewConfig()
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if got := c.World().Size(); got != (core.Size{W: 60, H: 40}) {
		t.Fatalf("default grid=%v, expected 60x40", got)
	}
}

func TestConfigBind(t *testing.T) {
	c := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse([]string{"-width", "90", "-height", "30", "-cell", "3", "-grid=false", "-fill", "0.5", "-seed", "9"}); err != nil {
		t.Fatal(err)
	}
	if c.World().Size() != (core.Size{W: 30, H: 10}) || c.ShowGrid || c.Fill != 0.5 || c.Seed != 9 {
		t.Fatalf("unexpected config %+v", c)
	}
}

func TestConfigValidate(t *testing.T) {
	for _, mut := range []func(*Config){
		func(c *Config) { c.CellSize = 0 },
		func(c *Config) { c.Width = -1 },
		func(c *Config) { c.TPS = 0 },
		func(c *Config) { c.Fill = 1.5 },
		func(c *Config) { c.CellSize = 900 },
	} {
		c := NewConfig()
		mut(c)
		if c.Validate() == nil {
			t.Fatalf("config %+v should be invalid", c)
		}
		if _, err := c.NewSession(nil); err == nil {
			t.Fatalf("NewSession(%+v) should fail", c)
		}
	}
}

func TestNewSessionFill(t *testing.T) {
	c := NewConfig()
	c.Width, c.Height, c.CellSize = 40, 40, 2
	s, err := c.NewSession(nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Snapshot().Alive() != 0 || !s.Frame().ShowGrid {
		t.Fatal("default session should start empty with grid lines")
	}

	c.Fill = 0.3
	c.ShowGrid = false
	a, err := c.NewSession(nil)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := c.NewSession(nil)
	if a.Snapshot().Alive() == 0 || !a.Snapshot().Equal(b.Snapshot()) {
		t.Fatal("seeded fill should be non-empty and deterministic")
	}
	if a.Frame().ShowGrid {
		t.Fatal("grid flag not applied")
	}
}
