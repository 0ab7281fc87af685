// Package bubblepop implements the BubblePop game: bubbles rise from the
// bottom of the play area and the player pops them for points before the
// round timer runs out.
//
// The rules live in pure transition functions (Start, CountdownTick,
// SpawnTick, AnimateTick, Pop) over a State value. Game wraps them with
// the injected capabilities and is what frontends drive.
package bubblepop

// Game owns a session's state and the capabilities its transitions need.
// It is not safe for concurrent use; hosts serialize all calls.
type Game struct {
	rules   Rules
	env     SpawnEnv
	state   State
	session uint64
}

// New creates an idle game. Missing capabilities get defaults: a seeded
// random source, a monotonic clock and UUID identifiers.
func New(rules Rules, env SpawnEnv) *Game {
	if env.Random == nil {
		env.Random = NewRandom(1)
	}
	if env.Clock == nil {
		env.Clock = NewMonotonicClock()
	}
	if env.IDs == nil {
		env.IDs = UUIDGenerator{}
	}
	return &Game{
		rules: rules,
		env:   env,
		state: Idle(rules),
	}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "bubblepop"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "BubblePop"
}

// Rules returns the rules in effect.
func (g *Game) Rules() Rules {
	return g.rules
}

// State returns the current state. Treat its Bubbles as read-only.
func (g *Game) State() State {
	return g.state
}

// Session returns a counter bumped by every Start. Hosts tag timer
// messages with it and drop those from an earlier session.
func (g *Game) Session() uint64 {
	return g.session
}

// Now reads the game clock.
func (g *Game) Now() float64 {
	return g.env.Clock.Now()
}

// SetViewport replaces the play-area measurement, e.g. after a resize.
func (g *Game) SetViewport(v Viewport) {
	g.env.Viewport = v
}

// Start begins a new round, discarding any round in progress.
func (g *Game) Start() {
	g.state = Start(g.rules)
	g.session++
}

// CountdownTick runs one countdown step and reports whether it ended the round.
func (g *Game) CountdownTick() (ended bool) {
	wasPlaying := g.state.Playing
	g.state = CountdownTick(g.state)
	return wasPlaying && !g.state.Playing
}

// SpawnTick runs one spawn attempt.
func (g *Game) SpawnTick() {
	g.state = SpawnTick(g.state, g.rules, g.env)
}

// Tick runs one animation step of dt seconds. It implements Scheduler.
func (g *Game) Tick(dt float64) {
	if !g.state.Playing {
		return
	}
	g.state = AnimateTick(g.state, g.rules, dt, g.env.Clock.Now())
}

// Pop pops the bubble with the given id.
func (g *Game) Pop(id ID) bool {
	var ok bool
	g.state, ok = Pop(g.state, id)
	return ok
}

// PopAt pops the topmost bubble under a px point in the play area.
func (g *Game) PopAt(x, y float64) bool {
	var ok bool
	g.state, ok = PopAt(g.state, x, y)
	return ok
}

var _ Scheduler = (*Game)(nil)
