package ui

import (
	"fmt"

	"mad-life/internal/session"
)

// HUDLines returns the text rows shown on the HUD for frame. The oldest
// notice is shown while it is the latest message.
func HUDLines(frame session.Frame, last string) []string {
	mode := "paused"
	if frame.Autoplay {
		mode = "autoplay"
	}
	lines := []string{fmt.Sprintf("Generation %d (%s)", frame.Generation, mode)}
	if last == OldestNotice {
		lines = append(lines, OldestNotice)
	}
	return lines
}
