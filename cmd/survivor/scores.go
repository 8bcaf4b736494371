package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-survivor/internal/registry"
	"github.com/vovakirdan/tui-survivor/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the longest runs for a variant",
	Long: `Display the ten longest runs for the specified variant.
The variant defaults to "survival".

Examples:
  survivor scores
  survivor scores survival_belt
  survivor scores --all
  survivor scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

var (
	flagAllRuns bool
	flagClear   bool
)

func init() {
	scoresCmd.Flags().BoolVar(&flagAllRuns, "all", false, "Show every recorded run instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all runs and the best time for the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all runs for %s.\n", title)
		return nil
	}

	var scores []storage.ScoreEntry
	if flagAllRuns {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("Longest Runs - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'survivor play %s' to set the first record!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Survived", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "--------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10s  %s\n", i+1, fmt.Sprintf("%.1fs", entry.Score), dateStr)
	}

	fmt.Println()
	if best, err := store.BestScore(gameID); err == nil && best > 0 {
		fmt.Printf("Best: %.1fs\n", best)
	}
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Runs: %d  Average: %.1fs\n", stats.GamesCount, stats.AvgScore)
	}
	return nil
}
