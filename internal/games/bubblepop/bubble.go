package bubblepop

// ID identifies a bubble for its whole lifetime.
type ID string

// Bubble is one rising, poppable entity. Values are replaced on every
// animation step; only Y changes after spawn.
type Bubble struct {
	ID        ID
	X         int     // Left edge in px, fixed at spawn
	Y         float64 // Top edge in px, decreases as the bubble rises
	Size      int     // Diameter in px
	Speed     int     // Upward velocity in px per second
	CreatedAt float64 // Clock seconds at spawn
	Color     string  // Palette hex color
}

// Age returns the seconds elapsed since the bubble spawned.
func (b Bubble) Age(now float64) float64 {
	return now - b.CreatedAt
}

// Expired reports whether the bubble outlived the lifetime limit.
// A bubble exactly at the limit is still alive.
func (b Bubble) Expired(now, lifetime float64) bool {
	return b.Age(now) > lifetime
}

// Exited reports whether the bubble has fully left the top of the area,
// allowing margin px of overshoot.
func (b Bubble) Exited(margin float64) bool {
	return b.Y+float64(b.Size) <= -margin
}

// Center returns the bubble's center in px.
func (b Bubble) Center() (float64, float64) {
	r := float64(b.Size) / 2
	return float64(b.X) + r, b.Y + r
}

// Contains reports whether the px point lies inside the bubble's circle.
func (b Bubble) Contains(x, y float64) bool {
	cx, cy := b.Center()
	r := float64(b.Size) / 2
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

// moved returns a copy of the bubble advanced upward by dt seconds.
func (b Bubble) moved(dt float64) Bubble {
	b.Y -= float64(b.Speed) * dt
	return b
}
