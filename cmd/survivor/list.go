package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-survivor/internal/registry"
	"github.com/vovakirdan/tui-survivor/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all variants",
	Long:  `Shows every registered survival variant.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Run counts are informational; a missing database just leaves them out.
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.GetAllGamesStats()
		store.Close()
	}

	fmt.Printf("  %-*s  %-28s  %s\n", maxIDLen, "ID", "Title", "Runs")
	fmt.Printf("  %-*s  %-28s  %s\n", maxIDLen, "--", "-----", "----")

	for _, g := range games {
		runs := "-"
		if st, ok := stats[g.ID]; ok {
			runs = fmt.Sprintf("%d (longest %.1fs)", st.GamesCount, st.HighScore)
		}
		fmt.Printf("  %-*s  %-28s  %s\n", maxIDLen, g.ID, g.Title, runs)
	}

	fmt.Println()
	fmt.Println("Run 'survivor play <id>' or 'survivor window <id>' to play.")
}
