package history

import (
	"testing"

	"mad-life/pkg/core"
	"mad-life/pkg/sims/life"
)

func soup(seed int64) *core.Grid {
	g := core.MustGrid(12, 10)
	core.Fill(g, core.NewRNG(seed), 0.4)
	return g
}

func TestStepForwardPushesSnapshot(t *testing.T) {
	c := New()
	g := soup(1)
	orig := g.Clone()

	next := c.StepForward(g)
	if c.Generation() != 1 || c.Len() != 1 {
		t.Fatalf("generation=%d len=%d, expected 1/1", c.Generation(), c.Len())
	}
	if !next.Equal(life.Step(orig)) {
		t.Fatal("StepForward did not apply the step rule")
	}

	// The snapshot must not alias the caller's grid.
	g.Clear()
	prev, ok := c.StepBack(next)
	if !ok || !prev.Equal(orig) {
		t.Fatal("snapshot was affected by mutating the caller's grid")
	}
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 7, 25} {
		c := New()
		start := soup(int64(n))
		g := start.Clone()
		for i := 0; i < n; i++ {
			g = c.StepForward(g)
			if c.Generation() != c.Len() {
				t.Fatalf("generation %d != len %d", c.Generation(), c.Len())
			}
		}
		for i := 0; i < n; i++ {
			var ok bool
			g, ok = c.StepBack(g)
			if !ok {
				t.Fatalf("undo %d of %d reported oldest", i+1, n)
			}
			if c.Generation() != c.Len() {
				t.Fatalf("generation %d != len %d", c.Generation(), c.Len())
			}
		}
		if !g.Equal(start) || c.Generation() != 0 {
			t.Fatalf("round trip of %d steps ended at generation %d with grid\n%s", n, c.Generation(), g)
		}
	}
}

func TestStepBackAtOldestIsIdempotent(t *testing.T) {
	c := New()
	g := soup(5)
	want := g.Clone()
	for i := 0; i < 3; i++ {
		got, ok := c.StepBack(g)
		if ok {
			t.Fatalf("call %d: expected oldest condition", i+1)
		}
		if got != g || !got.Equal(want) {
			t.Fatalf("call %d: grid changed", i+1)
		}
		if c.Generation() != 0 || c.Len() != 0 {
			t.Fatalf("call %d: generation=%d len=%d", i+1, c.Generation(), c.Len())
		}
	}
}

func TestReset(t *testing.T) {
	c := New()
	g := soup(9)
	for i := 0; i < 4; i++ {
		g = c.StepForward(g)
	}
	g = c.Reset(g)
	if g.Alive() != 0 || c.Generation() != 0 || c.Len() != 0 {
		t.Fatalf("after reset alive=%d generation=%d len=%d", g.Alive(), c.Generation(), c.Len())
	}
	if g.Size() != (core.Size{W: 12, H: 10}) {
		t.Fatalf("reset changed size to %v", g.Size())
	}
	if _, ok := c.StepBack(g); ok {
		t.Fatal("undo after reset should report oldest")
	}
}
