package bubblepop

// SpawnEnv bundles the capabilities a spawn needs.
type SpawnEnv struct {
	Random   Random
	Clock    Clock
	Viewport Viewport
	IDs      IDGenerator
}

// Idle returns the state of a session that has not started yet.
func Idle(r Rules) State {
	return State{TimeLeft: r.Duration}
}

// Start resets the session and begins a round. It is valid in any state,
// so it doubles as a mid-round restart.
func Start(r Rules) State {
	return State{
		Score:    0,
		TimeLeft: r.Duration,
		Playing:  true,
		Bubbles:  []Bubble{},
	}
}

// CountdownTick takes one second off the round. When the timer reaches
// zero the round stops and bubbles and score freeze where they are.
func CountdownTick(s State) State {
	if !s.Playing {
		return s
	}
	s.TimeLeft--
	if s.TimeLeft <= 0 {
		s.TimeLeft = 0
		s.Playing = false
	}
	return s
}

// SpawnTick adds one bubble below the visible area unless the cap is
// reached or the viewport cannot be measured.
func SpawnTick(s State, r Rules, env SpawnEnv) State {
	if !s.Playing || len(s.Bubbles) >= r.MaxBubbles {
		return s
	}
	if env.Viewport == nil {
		return s
	}
	width, height, ok := env.Viewport.Size()
	if !ok {
		return s
	}

	size := env.Random.IntRange(r.SizeMin, r.SizeMax)
	x := env.Random.IntRange(0, max(0, int(width)-size))
	y := height + float64(size)
	speed := env.Random.IntRange(r.SpeedMin, r.SpeedMax)
	createdAt := env.Clock.Now()
	id := env.IDs.NewID(createdAt)
	color := PickColor(env.Random, r.Palette)

	next := make([]Bubble, len(s.Bubbles), len(s.Bubbles)+1)
	copy(next, s.Bubbles)
	s.Bubbles = append(next, Bubble{
		ID:        id,
		X:         x,
		Y:         y,
		Size:      size,
		Speed:     speed,
		CreatedAt: createdAt,
		Color:     color,
	})
	return s
}

// AnimateTick moves every bubble up by speed*dt and drops those that are
// too old or have left the top of the area.
func AnimateTick(s State, r Rules, dt, now float64) State {
	if !s.Playing {
		return s
	}

	next := make([]Bubble, 0, len(s.Bubbles))
	for _, b := range s.Bubbles {
		b = b.moved(dt)
		if b.Expired(now, r.Lifetime) || b.Exited(r.ExitMargin) {
			continue
		}
		next = append(next, b)
	}
	s.Bubbles = next
	return s
}

// Pop removes the bubble with the given id and scores a point. A bubble
// that is already gone, or a frozen board, leaves the state untouched.
func Pop(s State, id ID) (State, bool) {
	if !s.Playing {
		return s, false
	}

	idx := -1
	for i, b := range s.Bubbles {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s, false
	}

	next := make([]Bubble, 0, len(s.Bubbles)-1)
	next = append(next, s.Bubbles[:idx]...)
	next = append(next, s.Bubbles[idx+1:]...)
	s.Bubbles = next
	s.Score++
	return s, true
}

// HitTest returns the topmost bubble under the px point. Later bubbles
// are drawn over earlier ones, so the search runs back to front.
func HitTest(s State, x, y float64) (Bubble, bool) {
	for i := len(s.Bubbles) - 1; i >= 0; i-- {
		if s.Bubbles[i].Contains(x, y) {
			return s.Bubbles[i], true
		}
	}
	return Bubble{}, false
}

// PopAt pops the topmost bubble under the px point, if any.
func PopAt(s State, x, y float64) (State, bool) {
	b, ok := HitTest(s, x, y)
	if !ok {
		return s, false
	}
	return Pop(s, b.ID)
}
