package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bubblepop/internal/core"
	"github.com/vovakirdan/tui-bubblepop/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round in the terminal",
	Long: `Start BubblePop in the terminal. Click bubbles to pop them.

Controls:
  Click         - Pop a bubble / press Start or Play
  Enter/Space   - Start a round
  R             - Restart, even mid-round
  Ctrl+S        - Save a text screenshot
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Slower, longer-lived bubbles
  normal - The standard round
  hard   - Faster spawns and faster bubbles
  fixed  - Exactly the config file's rules

Examples:
  bubblepop play
  bubblepop play --difficulty hard
  bubblepop play --config ./my-bubblepop.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// terminalConfig builds the runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg.Normalize()
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog := newTUILogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	_, err = tui.Run(tui.Options{
		Config:  gameCfg,
		Preset:  preset,
		Runtime: terminalConfig(),
		Store:   store,
		Logger:  logger,
	})
	return err
}
