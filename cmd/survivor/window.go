package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-survivor/internal/games/survival"
	"github.com/vovakirdan/tui-survivor/internal/platform/window"
	"github.com/vovakirdan/tui-survivor/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window. The variant defaults to "survival".

Mouse and touch steer the player directly; the keyboard controls match
the terminal version. The best time is kept in the platform save
directory unless --store says otherwise.

Examples:
  survivor window
  survivor window survival_belt --fps 120
  survivor window --store sqlite --db ./survivor.db`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}
	applyGameFlags()

	created, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	game, ok := created.(*survival.Game)
	if !ok {
		return fmt.Errorf("variant %q cannot run in a window", gameID)
	}

	storeKind := flagStore
	if !cmd.Flags().Changed("store") {
		storeKind = "gdata"
	}
	e, err := setup(storeKind, true)
	if err != nil {
		return err
	}
	defer e.Close()

	e.logger.Info("starting run", "game", gameID, "frontend", "window")
	return window.Run(game, window.Options{
		Seed:       flagSeed,
		TickRate:   flagFPS,
		Store:      e.store,
		HighScores: e.highScores(gameID),
		Audio:      e.player,
		Logger:     e.logger,
	})
}
