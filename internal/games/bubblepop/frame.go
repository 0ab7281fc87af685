package bubblepop

import "time"

// Scheduler is driven by a host refresh loop: a render callback, a fixed
// rate timer or a test feeding synthetic deltas.
type Scheduler interface {
	Tick(dt float64)
}

// FrameTimer turns host frame timestamps into deltas. The first frame has
// no predecessor and yields no delta, so it acts as a warm-up tick.
type FrameTimer struct {
	prev    time.Time
	started bool
}

// Advance records a frame at t and returns the seconds since the previous
// frame. ok is false on the first frame.
func (f *FrameTimer) Advance(t time.Time) (dt float64, ok bool) {
	if !f.started {
		f.prev = t
		f.started = true
		return 0, false
	}
	dt = t.Sub(f.prev).Seconds()
	f.prev = t
	if dt < 0 {
		dt = 0
	}
	return dt, true
}

// Reset forgets the previous frame.
func (f *FrameTimer) Reset() {
	f.started = false
}

// Drive advances the timer and ticks s when a delta is available.
func (f *FrameTimer) Drive(t time.Time, s Scheduler) {
	if dt, ok := f.Advance(t); ok {
		s.Tick(dt)
	}
}

// Interval fires every Period of accumulated time. Hosts without native
// timers use it to run the countdown and spawner.
type Interval struct {
	Period time.Duration
	acc    time.Duration
}

// NewInterval returns an interval with the given period.
func NewInterval(period time.Duration) *Interval {
	return &Interval{Period: period}
}

// Advance accumulates dt and returns how many periods elapsed.
func (i *Interval) Advance(dt time.Duration) int {
	if i.Period <= 0 || dt <= 0 {
		return 0
	}
	i.acc += dt
	fires := int(i.acc / i.Period)
	i.acc -= time.Duration(fires) * i.Period
	return fires
}

// Reset restarts the period from zero.
func (i *Interval) Reset() {
	i.acc = 0
}

// Seconds converts a float second delta into a duration.
func Seconds(dt float64) time.Duration {
	return time.Duration(dt * float64(time.Second))
}
