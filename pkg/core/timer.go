package core

import "time"

// FixedStep paces a loop to a target number of frames per second. It is a
// throttle, not a scheduling guarantee.
type FixedStep struct {
	step time.Duration
	next time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFixedStep constructs a FixedStep targeting the given frame rate.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now, sleep: time.Sleep}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the frame rate. Non-positive values fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the duration of one frame.
func (f *FixedStep) Step() time.Duration { return f.step }

// Wait blocks until the next frame boundary. A loop that has fallen more than
// one frame behind resynchronises instead of bursting to catch up.
func (f *FixedStep) Wait() {
	now := f.now()
	if f.next.IsZero() || now.Sub(f.next) > f.step {
		f.next = now
	}
	f.next = f.next.Add(f.step)
	if d := f.next.Sub(now); d > 0 {
		f.sleep(d)
	}
}
