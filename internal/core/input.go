package core

// Action represents a semantic player action, abstracted from physical keys,
// mouse buttons or touches. Frontends map their raw input onto these.
type Action int

const (
	ActionNone     Action = iota // no input
	ActionStart                  // Enter, Space - start a round when idle
	ActionRestart                // R - restart, even mid-round
	ActionBack                   // B, Escape - back to menu
	ActionQuit                   // Q, Ctrl+C - exit game/session
	ActionUp                     // Up, K - menu navigation
	ActionDown                   // Down, J - menu navigation
	ActionScores                 // Tab - open scoreboard from the menu
	ActionSnapshot               // Ctrl+S - save a text screenshot
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionScores:
		return "Scores"
	case ActionSnapshot:
		return "Snapshot"
	default:
		return "Unknown"
	}
}
