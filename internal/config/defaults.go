package config

import (
	_ "embed"
)

//go:embed defaults/bubblepop.yaml
var defaultBubblePopYAML []byte

// DefaultPalette is the fixed bubble palette.
var DefaultPalette = []string{
	"#4cc9f0", "#4895ef", "#4361ee", "#b5179e",
	"#f72585", "#3a0ca3", "#80ffdb", "#72efdd",
}

// DefaultBubblePopConfig returns the hardcoded default configuration.
// It matches defaults/bubblepop.yaml and is used when the embed fails to parse.
func DefaultBubblePopConfig() BubblePopConfig {
	palette := make([]string, len(DefaultPalette))
	copy(palette, DefaultPalette)

	return BubblePopConfig{
		Rules: RulesConfig{
			DurationSecs:    60,
			MaxBubbles:      25,
			SpawnIntervalMs: 700,
			LifetimeSecs:    12,
			ExitMargin:      20,
			Size:            RangeConfig{Min: 30, Max: 80},
			Speed:           RangeConfig{Min: 40, Max: 120},
			Palette:         palette,
		},
		Terminal: TerminalConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
		Window: WindowConfig{
			Width:  480,
			Height: 640,
			Title:  "BubblePop",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBubblePopYAML
}
