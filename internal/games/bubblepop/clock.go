package bubblepop

import "time"

// Clock is a monotonic time source in seconds. It only needs to be
// consistent with itself; bubble ages are differences of two readings.
type Clock interface {
	Now() float64
}

// MonotonicClock reports seconds since it was created.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns the elapsed seconds. time.Since uses the monotonic reading.
func (c *MonotonicClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	T float64
}

// Now returns the current manual time.
func (c *ManualClock) Now() float64 {
	return c.T
}

// Advance moves the clock forward by d seconds.
func (c *ManualClock) Advance(d float64) {
	c.T += d
}
