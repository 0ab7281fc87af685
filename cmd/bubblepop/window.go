package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bubblepop/internal/platform/pixel"
	"github.com/vovakirdan/tui-bubblepop/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open BubblePop in a desktop window. Click or tap bubbles to pop them.

Controls:
  Click/Tap     - Pop a bubble / press Start or Play
  Enter/Space   - Start a round
  R             - Restart
  Esc/Q         - Close the window

The window size and title come from the "window" section of the config.

Examples:
  bubblepop window
  bubblepop window --difficulty easy --seed 42`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	gameCfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger := newLogger("bubblepop")
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	scene := pixel.NewScene(pixel.Options{
		Config: gameCfg,
		Preset: preset,
		Seed:   seed,
		Store:  store,
		Logger: logger,
	})

	logger.Debug("opening window", "width", gameCfg.Window.Width, "height", gameCfg.Window.Height, "difficulty", preset)
	return window.Run(scene, gameCfg.Window.Title, flagFPS)
}
