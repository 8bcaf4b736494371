package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-survivor/internal/games/survival"
	"github.com/vovakirdan/tui-survivor/internal/platform/tui"
	"github.com/vovakirdan/tui-survivor/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal. The variant defaults to "survival".

Controls:
  Mouse         - Click or drag to steer
  WASD/Arrows   - Nudge the player
  Space/Enter   - Start
  P/Esc         - Pause
  R             - Restart (after game over)
  M             - Toggle sound
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Slower spikes and a lazy hunter
  normal - Default tuning
  hard   - Faster spikes, more of them
  fixed  - No speed-up over time

Examples:
  survivor play
  survivor play survival_belt
  survivor play --difficulty hard
  survivor play --config ./my-survival.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	windowCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	windowCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags hands --config and --difficulty to the survival package before a game is created.
func applyGameFlags() {
	survival.SetConfigPath(flagConfig)
	survival.SetDifficultyPreset(flagDifficulty)
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}
	applyGameFlags()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	e, err := setup(flagStore, true)
	if err != nil {
		return err
	}
	defer e.Close()

	e.logger.Info("starting run", "game", gameID, "frontend", "terminal")
	if err := tui.Run(game, runtimeConfig(terminalSize()), e.deps(gameID)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
