package session

// Event is one discrete input command delivered during a frame.
type Event uint8

const (
	EventQuit Event = iota
	EventToggleGrid
	EventToggleAutoplay
	EventReset
	EventPaintDown
	EventPaintUp
	EventEraseDown
	EventEraseUp
	EventStepForward
	EventStepBack
)

var eventNames = [...]string{
	EventQuit:           "quit",
	EventToggleGrid:     "toggle-grid",
	EventToggleAutoplay: "toggle-autoplay",
	EventReset:          "reset",
	EventPaintDown:      "paint-down",
	EventPaintUp:        "paint-up",
	EventEraseDown:      "erase-down",
	EventEraseUp:        "erase-up",
	EventStepForward:    "step-forward",
	EventStepBack:       "step-back",
}

func (e Event) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// Input is everything the input source supplies for one frame: the discrete
// events in arrival order and the last known pointer position in pixels.
type Input struct {
	Events   []Event
	PointerX int
	PointerY int
}
