package core

import "time"

// FrameClock converts wall-clock frame timestamps into elapsed seconds.
// The first Tick after construction or Reset returns 0 so a fresh run never
// receives a stale delta.
type FrameClock struct {
	last time.Time
	set  bool
}

// Tick records now and returns the seconds elapsed since the previous tick.
// A timestamp earlier than the previous one yields 0.
func (c *FrameClock) Tick(now time.Time) float64 {
	if !c.set {
		c.last = now
		c.set = true
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

// Reset forgets the previous timestamp.
func (c *FrameClock) Reset() {
	c.set = false
	c.last = time.Time{}
}
