package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bubblepop/internal/config"
	"github.com/vovakirdan/tui-bubblepop/internal/platform/tui"
	"github.com/vovakirdan/tui-bubblepop/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores and overall stats.

Without --difficulty, scores from every difficulty are listed together.

Examples:
  bubblepop scores
  bubblepop scores --difficulty hard
  bubblepop scores --difficulty easy --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the listed scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	mode := storage.AnyMode
	title := "All difficulties"
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		mode, title = string(preset), preset.Title()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(tui.GameID, mode); err != nil {
			return err
		}
		fmt.Printf("Cleared scores - %s\n", title)
		return nil
	}

	scores, err := store.TopScores(tui.GameID, mode, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - BubblePop (%s)\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bubblepop play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Mode", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "-----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8s  %s\n", i+1, entry.Score, entry.Mode, dateStr)
	}

	stats, err := store.GetGameStats(tui.GameID, mode)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Avg: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
