package ui

import (
	"slices"
	"testing"

	"mad-life/internal/session"
)

func TestHUDLines(t *testing.T) {
	got := HUDLines(session.Frame{Generation: 3}, "Generation 3")
	if !slices.Equal(got, []string{"Generation 3 (paused)"}) {
		t.Fatalf("HUDLines=%v", got)
	}
	got = HUDLines(session.Frame{Generation: 0, Autoplay: true}, OldestNotice)
	if !slices.Equal(got, []string{"Generation 0 (autoplay)", OldestNotice}) {
		t.Fatalf("HUDLines=%v", got)
	}
}
