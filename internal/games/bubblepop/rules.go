package bubblepop

import (
	"time"

	"github.com/vovakirdan/tui-bubblepop/internal/config"
)

// CountdownInterval is how often the round timer decrements.
const CountdownInterval = time.Second

// Rules are the tunable parameters of a round.
type Rules struct {
	Duration      int           // Round length in seconds
	MaxBubbles    int           // Live bubble cap
	SpawnInterval time.Duration // Period between spawn attempts
	Lifetime      float64       // Seconds a bubble may live
	ExitMargin    float64       // Px above the top edge before a bubble is culled
	SizeMin       int
	SizeMax       int
	SpeedMin      int
	SpeedMax      int
	Palette       []string
}

// DefaultRules returns the standard rules: 60 s rounds, 25 bubbles,
// a spawn every 700 ms and a 12 s lifetime.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultBubblePopConfig().Rules)
}

// RulesFromConfig converts loaded configuration into rules.
func RulesFromConfig(c config.RulesConfig) Rules {
	palette := make([]string, len(c.Palette))
	copy(palette, c.Palette)

	return Rules{
		Duration:      c.DurationSecs,
		MaxBubbles:    c.MaxBubbles,
		SpawnInterval: c.SpawnInterval(),
		Lifetime:      c.LifetimeSecs,
		ExitMargin:    c.ExitMargin,
		SizeMin:       c.Size.Min,
		SizeMax:       c.Size.Max,
		SpeedMin:      c.Speed.Min,
		SpeedMax:      c.Speed.Max,
		Palette:       palette,
	}
}
