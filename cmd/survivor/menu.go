package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-survivor/internal/platform/tui"
	"github.com/vovakirdan/tui-survivor/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a run ends, press Q to come back to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Scoreboard
  Q            - Quit

Examples:
  survivor menu
  survivor menu --fps 30
  survivor menu --db ./survivor.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	applyGameFlags()

	e, err := setup(flagStore, true)
	if err != nil {
		return err
	}
	defer e.Close()

	cfg := runtimeConfig(terminalSize())

	for {
		menuResult, err := tui.RunMenu(e.store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(e.store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				e.logger.Error("scoreboard failed", "error", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		gameID := menuResult.GameID
		if gameID == "" {
			return nil
		}

		game, err := registry.Create(gameID)
		if err != nil {
			e.logger.Error("could not create game", "game", gameID, "error", err)
			continue
		}

		// Fresh seed for every run unless the player pinned one.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		e.logger.Info("starting run", "game", gameID, "frontend", "menu")
		if err := tui.Run(game, cfg, e.deps(gameID)); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
