// Package config provides YAML-based game configuration loading and
// difficulty presets for BubblePop.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// BubblePopConfig contains all configuration for the game and its frontends.
type BubblePopConfig struct {
	Rules    RulesConfig    `yaml:"rules"`
	Terminal TerminalConfig `yaml:"terminal"`
	Window   WindowConfig   `yaml:"window"`
}

// RulesConfig defines the round, spawn and cull parameters.
type RulesConfig struct {
	DurationSecs    int         `yaml:"duration_secs"`
	MaxBubbles      int         `yaml:"max_bubbles"`
	SpawnIntervalMs int         `yaml:"spawn_interval_ms"`
	LifetimeSecs    float64     `yaml:"lifetime_secs"`
	ExitMargin      float64     `yaml:"exit_margin"`
	Size            RangeConfig `yaml:"size"`
	Speed           RangeConfig `yaml:"speed"`
	Palette         []string    `yaml:"palette"`
}

// RangeConfig is an inclusive integer range.
type RangeConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// TerminalConfig maps terminal cells onto play-area pixels.
type TerminalConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// WindowConfig defines the desktop window frontend.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// SpawnInterval returns the spawn period as a duration.
func (r RulesConfig) SpawnInterval() time.Duration {
	return time.Duration(r.SpawnIntervalMs) * time.Millisecond
}

// Duration returns the round length as a duration.
func (r RulesConfig) Duration() time.Duration {
	return time.Duration(r.DurationSecs) * time.Second
}

// Validate checks that the configuration describes a playable game.
func (c BubblePopConfig) Validate() error {
	r := c.Rules
	switch {
	case r.DurationSecs <= 0:
		return fmt.Errorf("%w: rules.duration_secs must be positive", ErrInvalid)
	case r.MaxBubbles <= 0:
		return fmt.Errorf("%w: rules.max_bubbles must be positive", ErrInvalid)
	case r.SpawnIntervalMs <= 0:
		return fmt.Errorf("%w: rules.spawn_interval_ms must be positive", ErrInvalid)
	case r.LifetimeSecs <= 0:
		return fmt.Errorf("%w: rules.lifetime_secs must be positive", ErrInvalid)
	case r.ExitMargin < 0:
		return fmt.Errorf("%w: rules.exit_margin must not be negative", ErrInvalid)
	}

	if err := r.Size.validate("rules.size"); err != nil {
		return err
	}
	if err := r.Speed.validate("rules.speed"); err != nil {
		return err
	}

	if len(r.Palette) == 0 {
		return fmt.Errorf("%w: rules.palette is empty", ErrInvalid)
	}
	for i, hex := range r.Palette {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("%w: rules.palette[%d] %q is not a hex color", ErrInvalid, i, hex)
		}
	}

	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("%w: terminal cell size must be positive", ErrInvalid)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive", ErrInvalid)
	}
	return nil
}

func (r RangeConfig) validate(name string) error {
	if r.Min <= 0 {
		return fmt.Errorf("%w: %s.min must be positive", ErrInvalid, name)
	}
	if r.Max < r.Min {
		return fmt.Errorf("%w: %s.max (%d) is below min (%d)", ErrInvalid, name, r.Max, r.Min)
	}
	return nil
}
