// Package survival implements the arcade survival game: steer the player around
// bouncing spikes, collect donuts for extra lives and stay away from the hunter.
//
// World holds the whole simulation and is driven by Update with a frame delta and
// an optional move target. Game adapts World to the registry and the platform layer.
package survival

import (
	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// Phase is the session state. Exactly one phase holds at a time.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// World is the complete simulation state of one survival session.
type World struct {
	cfg        config.SurvivalConfig
	difficulty *config.DifficultyManager
	spawner    *Spawner
	store      core.HighScoreStore

	player  Player
	hazards []Hazard
	hunter  Hunter
	pickup  Pickup

	phase     Phase
	score     float64
	lives     int
	highScore float64
	dragging  bool

	// Last processed spawn threshold per kind; -1 means none crossed yet.
	lastPickupStep int
	lastHunterStep int
}

// NewWorld creates a world in the NotStarted phase.
// The best score is read from store; a nil store or a load error starts from 0.
func NewWorld(cfg config.SurvivalConfig, seed int64, store core.HighScoreStore) *World {
	w := &World{
		cfg:            cfg,
		difficulty:     config.NewDifficultyManager(cfg.Difficulty),
		spawner:        NewSpawner(seed, cfg),
		store:          store,
		phase:          PhaseNotStarted,
		lives:          cfg.Session.StartLives,
		lastPickupStep: -1,
		lastHunterStep: -1,
	}
	if store != nil {
		if best, err := store.LoadHighScore(); err == nil && core.Finite(best) && best > 0 {
			w.highScore = best
		}
	}

	w.player = Player{Box: core.Box{W: cfg.Player.Width, H: cfg.Player.Height}}
	w.centerPlayer()
	w.hazards = w.spawner.Hazards()
	w.hunter = Hunter{Box: core.Box{W: cfg.Hunter.Width, H: cfg.Hunter.Height}, Speed: cfg.Hunter.BaseSpeed, Dir: 1}
	w.pickup = Pickup{Box: core.Box{W: cfg.Pickup.Width, H: cfg.Pickup.Height}}
	return w
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.SurvivalConfig {
	return w.cfg
}

// Phase returns the current session phase.
func (w *World) Phase() Phase {
	return w.phase
}

// Running reports whether a run is in progress.
func (w *World) Running() bool {
	return w.phase == PhaseRunning
}

// Score returns seconds survived in the current or last run.
func (w *World) Score() float64 {
	return w.score
}

// Lives returns the raw life counter, which is -1 right after a fatal hit.
func (w *World) Lives() int {
	return w.lives
}

// DisplayLives returns lives clamped at zero for display.
func (w *World) DisplayLives() int {
	return core.Max(0, w.lives)
}

// HighScore returns the best score known to the world.
func (w *World) HighScore() float64 {
	return w.highScore
}

// Tier returns the current difficulty tier.
func (w *World) Tier() int {
	return w.difficulty.Tier(w.score)
}

// Multiplier returns the current speed multiplier.
func (w *World) Multiplier() float64 {
	return w.difficulty.Multiplier(w.score)
}

// Player returns a copy of the player.
func (w *World) Player() Player {
	return w.player
}

func (w *World) centerPlayer() {
	w.player.X = (w.cfg.Arena.Width - w.player.W) / 2
	w.player.Y = (w.cfg.Arena.Height - w.player.H) / 2
	w.player.Box = w.player.ClampInto(w.cfg.Arena.Width, w.cfg.Arena.Height)
}

// moveTo centers the player on target and keeps the whole rectangle inside the arena.
// Non-finite targets are ignored.
func (w *World) moveTo(target core.Vec) {
	if !core.Finite(target.X) || !core.Finite(target.Y) {
		return
	}
	w.player.X = target.X - w.player.W/2
	w.player.Y = target.Y - w.player.H/2
	w.player.Box = w.player.ClampInto(w.cfg.Arena.Width, w.cfg.Arena.Height)
}
