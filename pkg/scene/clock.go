package scene

import "time"

// MaxFrameStep caps the time step so a stalled frame does not fling the
// camera or spin the object.
const MaxFrameStep = 0.1

// Clock measures the time between frames.
type Clock struct {
	now  func() time.Time
	last time.Time
}

// NewClock creates a clock whose first tick measures from now.
func NewClock() *Clock {
	return newClock(time.Now)
}

func newClock(now func() time.Time) *Clock {
	return &Clock{now: now, last: now()}
}

// Tick returns the seconds since the previous tick, capped at MaxFrameStep.
func (c *Clock) Tick() float64 {
	t := c.now()
	dt := t.Sub(c.last).Seconds()
	c.last = t

	return max(0, min(dt, MaxFrameStep))
}
