package ui

import (
	"fmt"
	"io"
)

// OldestNotice is reported when undo is requested at generation 0.
const OldestNotice = "Already at oldest change!"

// Console prints generation updates on a single, rewritten terminal line.
// It also remembers the latest message for the HUD.
type Console struct {
	w    io.Writer
	last string
}

// NewConsole returns a Console writing to w. A nil writer discards output.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = io.Discard
	}
	return &Console{w: w}
}

// Generation rewrites the status line with the generation number.
func (c *Console) Generation(n int) {
	c.last = fmt.Sprintf("Generation %d", n)
	// Trailing blanks wipe leftovers from a longer previous line.
	fmt.Fprintf(c.w, "%-18s\r", c.last)
}

// AtOldest prints the undo-at-bottom notice on its own line.
func (c *Console) AtOldest() {
	c.last = OldestNotice
	fmt.Fprintln(c.w, OldestNotice)
}

// Last returns the most recent message, or "" before any update.
func (c *Console) Last() string { return c.last }

// Controls is the key reference printed at startup.
var Controls = []string{
	"Mouse Left  => create cell",
	"Mouse Right => delete cell",
	"Arrow Right => next step",
	"Arrow Left  => previous step",
	"G           => toggle grid",
	"Space       => toggle autoplay",
	"Enter       => reset",
	"Escape      => exit",
}

// PrintControls writes the key reference.
func PrintControls(w io.Writer) {
	fmt.Fprintln(w, "Controls:")
	for _, line := range Controls {
		fmt.Fprintln(w, line)
	}
}
