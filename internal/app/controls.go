package app

import "mad-life/internal/session"

// Controls records which inputs were triggered during one frame.
type Controls struct {
	Quit           bool
	ToggleGrid     bool
	ToggleAutoplay bool
	Reset          bool
	PaintDown      bool
	PaintUp        bool
	EraseDown      bool
	EraseUp        bool
	StepForward    bool
	StepBack       bool
}

// Events flattens the triggered controls into the session event order.
// Presses precede releases, so a click shorter than one frame leaves no edit
// flag set.
func (c Controls) Events() []session.Event {
	var evs []session.Event
	add := func(on bool, ev session.Event) {
		if on {
			evs = append(evs, ev)
		}
	}
	add(c.Quit, session.EventQuit)
	add(c.ToggleGrid, session.EventToggleGrid)
	add(c.ToggleAutoplay, session.EventToggleAutoplay)
	add(c.Reset, session.EventReset)
	add(c.PaintDown, session.EventPaintDown)
	add(c.EraseDown, session.EventEraseDown)
	add(c.PaintUp, session.EventPaintUp)
	add(c.EraseUp, session.EventEraseUp)
	add(c.StepForward, session.EventStepForward)
	add(c.StepBack, session.EventStepBack)
	return evs
}
