package app

import (
	"slices"
	"testing"

	"mad-life/internal/session"
)

func TestControlsEventsOrder(t *testing.T) {
	c := Controls{
		StepBack:    true,
		PaintUp:     true,
		PaintDown:   true,
		Quit:        true,
		ToggleGrid:  true,
		StepForward: true,
	}
	want := []session.Event{
		session.EventQuit,
		session.EventToggleGrid,
		session.EventPaintDown,
		session.EventPaintUp,
		session.EventStepForward,
		session.EventStepBack,
	}
	if got := c.Events(); !slices.Equal(got, want) {
		t.Fatalf("Events()=%v, expected %v", got, want)
	}
	if len((Controls{}).Events()) != 0 {
		t.Fatal("idle frame should produce no events")
	}
}
