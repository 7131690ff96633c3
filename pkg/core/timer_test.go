package core

import (
	"testing"
	"time"
)

type fakeClock struct {
	t     time.Time
	slept []time.Duration
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.t = c.t.Add(d)
}

func newFakeStep(tps int) (*FixedStep, *fakeClock) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(tps)
	fs.now = clk.now
	fs.sleep = clk.sleep
	return fs, clk
}

func TestFixedStepDefaultsTPS(t *testing.T) {
	if got := NewFixedStep(0).Step(); got != time.Second/60 {
		t.Fatalf("step=%v, expected 1/60s", got)
	}
}

func TestFixedStepSleepsRemainder(t *testing.T) {
	fs, clk := newFakeStep(10)
	fs.Wait()
	clk.t = clk.t.Add(30 * time.Millisecond)
	fs.Wait()
	if len(clk.slept) != 2 {
		t.Fatalf("slept %d times, expected 2", len(clk.slept))
	}
	if clk.slept[1] != 70*time.Millisecond {
		t.Fatalf("second sleep=%v, expected 70ms", clk.slept[1])
	}
}

func TestFixedStepResyncsWhenLate(t *testing.T) {
	fs, clk := newFakeStep(10)
	fs.Wait()
	clk.t = clk.t.Add(time.Second)
	fs.Wait()
	if clk.slept[1] != 100*time.Millisecond {
		t.Fatalf("late frame slept %v, expected a full step", clk.slept[1])
	}
}
