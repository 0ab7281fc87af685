// bubblepop is a bubble popping game for the terminal, SSH and the desktop.
//
// Usage:
//
//	bubblepop play           - Play a round in the terminal
//	bubblepop menu           - Pick a difficulty and play, round after round
//	bubblepop window         - Play in a desktop window
//	bubblepop serve          - Start SSH server for remote play
//	bubblepop scores         - Show high scores
//	bubblepop config         - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--db <path>           - Set database path (default: ~/.bubblepop/scores.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--debug               - Verbose logging
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bubblepop/internal/config"
	"github.com/vovakirdan/tui-bubblepop/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bubblepop",
	Short: "BubblePop - pop rising bubbles before the clock runs out",
	Long: `BubblePop is a timed arcade game: bubbles rise from the bottom of the
screen and you click them for points. A round lasts 60 seconds.

Available commands:
  play     - Play a round in the terminal (mouse required)
  menu     - Difficulty picker and scoreboard
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective game config

Examples:
  bubblepop play
  bubblepop play --difficulty hard
  bubblepop menu
  bubblepop window --seed 42
  bubblepop serve --ssh :2222
  bubblepop scores --difficulty easy`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns the stderr logger used by non-terminal commands.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// newTUILogger keeps logs off the alternate screen: with --debug they go to
// ~/.bubblepop/bubblepop.log, otherwise nowhere. The returned func closes the file.
func newTUILogger() (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if flagDebug {
		if home, err := os.UserHomeDir(); err == nil {
			dir := filepath.Join(home, ".bubblepop")
			if err := os.MkdirAll(dir, 0o755); err == nil {
				f, err := os.OpenFile(filepath.Join(dir, "bubblepop.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
				if err == nil {
					w = f
					closeFn = func() { f.Close() }
				}
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bubblepop",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn
}

// loadGameConfig loads the YAML config and applies the --difficulty preset.
func loadGameConfig() (config.BubblePopConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.BubblePopConfig{}, "", err
	}
	cfg, err := config.LoadWithPreset(flagConfig, preset)
	if err != nil {
		return config.BubblePopConfig{}, "", err
	}
	return cfg, preset, nil
}

// openStore opens the score database. Failure is not fatal: the game runs
// without saving scores.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}
