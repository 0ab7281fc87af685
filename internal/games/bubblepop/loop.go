package bubblepop

// Loop runs the countdown, spawner and animator from a single fixed-rate
// update call, for hosts that have no timers of their own.
type Loop struct {
	game      *Game
	countdown *Interval
	spawn     *Interval
	session   uint64
}

// NewLoop wraps g. The intervals restart whenever g starts a new round.
func NewLoop(g *Game) *Loop {
	return &Loop{
		game:      g,
		countdown: NewInterval(CountdownInterval),
		spawn:     NewInterval(g.Rules().SpawnInterval),
		session:   g.Session(),
	}
}

// Game returns the driven game.
func (l *Loop) Game() *Game {
	return l.game
}

// Advance moves the round forward by dt seconds and reports whether the
// round ended during this call.
func (l *Loop) Advance(dt float64) (ended bool) {
	if s := l.game.Session(); s != l.session {
		l.session = s
		l.countdown.Reset()
		l.spawn.Reset()
	}
	if !l.game.State().Playing {
		return false
	}

	step := Seconds(dt)
	for range l.countdown.Advance(step) {
		if l.game.CountdownTick() {
			return true
		}
	}
	for range l.spawn.Advance(step) {
		l.game.SpawnTick()
	}
	l.game.Tick(dt)
	return false
}
