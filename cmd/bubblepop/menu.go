package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bubblepop/internal/config"
	"github.com/vovakirdan/tui-bubblepop/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a difficulty picker menu",
	Long: `Start BubblePop in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a difficulty.
Press B or Esc in a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  bubblepop menu
  bubblepop menu --fps 30
  bubblepop menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	base, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog := newTUILogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		gameCfg := base
		config.ApplyPreset(&gameCfg, menuResult.Preset)

		runtime := cfg
		if runtime.Seed == 0 {
			runtime.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(tui.Options{
			Config:  gameCfg,
			Preset:  menuResult.Preset,
			Runtime: runtime,
			Store:   store,
			Logger:  logger,
		})
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}
