package core

import "time"

// Clock converts frame timestamps into elapsed seconds between ticks.
type Clock struct {
	last time.Time
}

// Delta returns the seconds elapsed since the previous call. The first call has
// no previous timestamp and reports zero.
func (c *Clock) Delta(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
	}
	delta := now.Sub(c.last)
	c.last = now
	return delta.Seconds()
}

// Reset forgets the previous timestamp so the next Delta starts from zero.
func (c *Clock) Reset() {
	c.last = time.Time{}
}
