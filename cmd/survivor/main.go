// survivor is an arcade survival game for the terminal and the desktop.
//
// Usage:
//
//	survivor list               - List available variants
//	survivor play [variant]     - Play in the terminal
//	survivor menu               - Start menu to pick variants interactively
//	survivor window [variant]   - Play in a desktop window
//	survivor serve              - Start SSH server for remote play
//	survivor scores [variant]   - Show the longest runs
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/survivor.db)
//	--store <kind>      - Best-time persistence: sqlite, gdata or memory
//	--log-file <path>   - Write logs to a file (default: discard)
//	--log-level <level> - debug, info, warn or error
//	--mute              - Start with audio muted
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-survivor/internal/audio"
	"github.com/vovakirdan/tui-survivor/internal/core"
	_ "github.com/vovakirdan/tui-survivor/internal/games/survival" // Register variants
	"github.com/vovakirdan/tui-survivor/internal/logging"
	"github.com/vovakirdan/tui-survivor/internal/platform/tui"
	"github.com/vovakirdan/tui-survivor/internal/registry"
	"github.com/vovakirdan/tui-survivor/internal/storage"
)

const defaultVariant = "survival"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagStore    string
	flagLogFile  string
	flagLogLevel string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "survivor",
	Short: "Survivor - dodge spikes and outlast the hunter",
	Long: `Survivor is a real-time arcade game. Steer the square, dodge the
bouncing spikes, grab pickups and stay away from the hunter.
Your score is how long you survive.

Available commands:
  list     - Show all variants
  play     - Play a variant in the terminal
  menu     - Interactive variant picker
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the longest runs

Examples:
  survivor play
  survivor play survival_belt --difficulty hard
  survivor window --store gdata
  survivor serve --ssh :2222
  survivor scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/survivor.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "sqlite", "Best-time store: sqlite, gdata, memory")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with audio muted")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// env bundles the collaborators every frontend command needs.
type env struct {
	logger  *log.Logger
	store   *storage.Store
	saves   *gdata.Manager
	player  *audio.Player
	closers []func() error
}

// setup builds the logger, opens persistence for the selected --store kind and
// optionally starts audio. Storage and audio failures are logged and the run
// continues without them.
func setup(storeKind string, withAudio bool) (*env, error) {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, err
	}
	switch storeKind {
	case "sqlite", "gdata", "memory":
	default:
		return nil, fmt.Errorf("unknown store %q (want sqlite, gdata or memory)", storeKind)
	}

	w, closeLog, err := logging.OpenFile(flagLogFile)
	if err != nil {
		return nil, err
	}
	e := &env{logger: logging.New(w, "survivor", level)}
	e.closers = append(e.closers, closeLog)

	// Run history always goes to sqlite; memory mode skips the database entirely.
	if storeKind != "memory" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			e.logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		} else {
			e.store = store
			e.closers = append(e.closers, store.Close)
		}
	}
	if storeKind == "gdata" {
		saves, err := storage.OpenGdata(storage.AppName)
		if err != nil {
			e.logger.Warn("could not open save data", "error", err)
		} else {
			e.saves = saves
		}
	}

	if withAudio {
		player := audio.NewPlayer(0.5)
		if err := player.Init(); err != nil {
			e.logger.Warn("audio disabled", "error", err)
		} else {
			player.SetMuted(flagMute)
			e.player = player
			e.closers = append(e.closers, func() error {
				player.Close()
				return nil
			})
		}
	}

	e.logger.Debug("environment ready", "store", storeKind, "audio", e.player != nil)
	return e, nil
}

// highScores returns the best-time store for one game.
// Without any backing store the best only lives for this process.
func (e *env) highScores(gameID string) core.HighScoreStore {
	switch {
	case e.saves != nil:
		return storage.NewGdataHighScores(e.saves, gameID, e.logger)
	case e.store != nil:
		return storage.NewHighScores(e.store, gameID, e.logger)
	default:
		return &core.MemoryHighScores{}
	}
}

// deps assembles the terminal model collaborators for gameID.
func (e *env) deps(gameID string) tui.Deps {
	return tui.Deps{
		Store:      e.store,
		HighScores: e.highScores(gameID),
		Audio:      e.player,
		Logger:     e.logger,
	}
}

// Close releases everything setup opened, newest first.
func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		//nolint:errcheck // Best-effort cleanup on exit
		e.closers[i]()
	}
	e.closers = nil
}

// runtimeConfig builds the frontend-independent runtime settings from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// variantArg returns the requested variant or the default one, rejecting unknown IDs.
func variantArg(args []string) (string, error) {
	gameID := defaultVariant
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return "", fmt.Errorf("unknown variant %q, run 'survivor list' to see available variants", gameID)
	}
	return gameID, nil
}
