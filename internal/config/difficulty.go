package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the selectable presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// presetScaling describes how a preset bends the loaded rules.
type presetScaling struct {
	spawnFactor    float64 // multiplies spawn interval
	speedFactor    float64 // multiplies both speed bounds
	lifetimeFactor float64 // multiplies lifetime
}

var scalings = map[DifficultyPreset]presetScaling{
	DifficultyEasy: {spawnFactor: 1.25, speedFactor: 0.75, lifetimeFactor: 1.25},
	DifficultyHard: {spawnFactor: 0.7, speedFactor: 1.35, lifetimeFactor: 0.8},
}

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, s)
	}
}

// Title returns the display name for a preset.
func (p DifficultyPreset) Title() string {
	switch p {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	case DifficultyFixed:
		return "Fixed"
	default:
		return "Normal"
	}
}

// ApplyPreset modifies the rules based on a difficulty preset.
// Normal and fixed leave the configured rules untouched.
func ApplyPreset(cfg *BubblePopConfig, preset DifficultyPreset) {
	s, ok := scalings[preset]
	if !ok {
		return
	}

	r := &cfg.Rules
	r.SpawnIntervalMs = scaleInt(r.SpawnIntervalMs, s.spawnFactor)
	r.Speed.Min = scaleInt(r.Speed.Min, s.speedFactor)
	r.Speed.Max = scaleInt(r.Speed.Max, s.speedFactor)
	r.LifetimeSecs *= s.lifetimeFactor
}

func scaleInt(v int, f float64) int {
	return int(math.Max(1, math.Round(float64(v)*f)))
}
