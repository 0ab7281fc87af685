package bubblepop

// State is the whole session: score, clock, phase and live bubbles.
// Transitions never modify a State's Bubbles slice in place, so a State
// can be held as a snapshot while the game moves on.
type State struct {
	Score    int
	TimeLeft int
	Playing  bool
	Bubbles  []Bubble
}

// Ended reports whether a round ran out of time. A fresh, never started
// session is idle but not ended.
func (s State) Ended() bool {
	return !s.Playing && s.TimeLeft <= 0
}

// Find returns the live bubble with the given id.
func (s State) Find(id ID) (Bubble, bool) {
	for _, b := range s.Bubbles {
		if b.ID == id {
			return b, true
		}
	}
	return Bubble{}, false
}

// Len returns the number of live bubbles.
func (s State) Len() int {
	return len(s.Bubbles)
}
