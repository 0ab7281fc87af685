package bubblepop

import "fmt"

// rangeCall records one IntRange request.
type rangeCall struct {
	min, max int
}

// scriptedRandom returns queued values (clamped into range) and then the
// range minimum. Every request is recorded.
type scriptedRandom struct {
	values []int
	calls  []rangeCall
}

func (r *scriptedRandom) IntRange(min, max int) int {
	r.calls = append(r.calls, rangeCall{min, max})
	v := min
	if len(r.values) > 0 {
		v, r.values = r.values[0], r.values[1:]
	}
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v
}

// counterIDs issues b1, b2, ...
type counterIDs struct {
	n int
}

func (c *counterIDs) NewID(float64) ID {
	c.n++
	return ID(fmt.Sprintf("b%d", c.n))
}

func testEnv(seed int64, clock *ManualClock) SpawnEnv {
	return SpawnEnv{
		Random:   NewRandom(seed),
		Clock:    clock,
		Viewport: FixedViewport{W: 640, H: 480},
		IDs:      &counterIDs{},
	}
}

func bubbleAt(id string, x int, y float64, size, speed int, createdAt float64) Bubble {
	return Bubble{
		ID:        ID(id),
		X:         x,
		Y:         y,
		Size:      size,
		Speed:     speed,
		CreatedAt: createdAt,
		Color:     "#4cc9f0",
	}
}

func playingWith(bubbles ...Bubble) State {
	s := Start(DefaultRules())
	s.Bubbles = bubbles
	return s
}
