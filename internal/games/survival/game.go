package survival

import (
	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Game adapts World to the registry and the platform frontends.
// It translates pointer and key input into move targets and owns the pause flag.
type Game struct {
	variant string
	runtime core.RuntimeConfig
	cfg     config.SurvivalConfig
	store   core.HighScoreStore
	world   *World
	paused  bool
	frames  int
}

// New creates the classic variant: bouncing spikes and a homing hunter.
func New() *Game {
	return &Game{variant: config.VariantClassic}
}

// NewBelt creates the belt variant: wrapping spike lanes and a sweeping hunter.
func NewBelt() *Game {
	return &Game{variant: config.VariantBelt}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == config.VariantBelt {
		return "survival_belt"
	}
	return "survival"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == config.VariantBelt {
		return "Survivor: Conveyor Belt"
	}
	return "Survivor"
}

// SetHighScoreStore attaches the persistence used by the next Reset.
func (g *Game) SetHighScoreStore(store core.HighScoreStore) {
	g.store = store
}

// Reset loads configuration and builds a fresh world in the NotStarted phase.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, _, err := config.LoadSurvival(configPath)
	if err != nil {
		cfg = config.DefaultSurvivalConfig()
	}
	if err := config.ApplyVariant(&cfg, g.variant); err != nil {
		cfg = config.DefaultSurvivalConfig()
	}
	if difficultyPreset != "" {
		config.ApplySurvivalPreset(&cfg, difficultyPreset)
	}
	if cfg.Validate() != nil {
		cfg = config.DefaultSurvivalConfig()
	}

	g.cfg = cfg
	g.world = NewWorld(cfg, runtime.Seed, g.store)
	g.paused = false
	g.frames = 0
}

// ResetWith builds a fresh world from an explicit config, bypassing file lookup.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.SurvivalConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.world = NewWorld(cfg, runtime.Seed, g.store)
	g.paused = false
	g.frames = 0
}

// Resize updates the screen size used to map pointer positions.
// The arena keeps its fixed size, so the run continues unchanged.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
}

// World exposes the simulation for frontends that draw from snapshots.
func (g *Game) World() *World {
	return g.world
}

// Step applies one frame of input and advances the simulation by dt seconds.
// Frames that start a run or toggle pause do not advance it, so paused time is never scored.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.world.Running() {
		g.paused = !g.paused
		return core.StepResult{State: g.State()}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if !g.world.Running() {
		if g.wantsStart(in) {
			g.world.Begin()
			g.frames = 0
			return core.StepResult{State: g.State(), Cues: []core.Cue{core.CueStart}}
		}
		return core.StepResult{State: g.State()}
	}

	target := g.pointerTarget(in)
	if target == nil {
		target = g.nudgeTarget(in)
	}

	var cues []core.Cue
	for _, ev := range g.world.Update(dt, target) {
		if c := ev.Cue(); c != core.CueNone {
			cues = append(cues, c)
		}
	}
	g.frames++

	return core.StepResult{State: g.State(), Cues: cues}
}

func (g *Game) wantsStart(in core.InputFrame) bool {
	if in.Has(core.ActionPrimary) {
		return true
	}
	if in.Has(core.ActionRestart) && g.world.Phase() == PhaseGameOver {
		return true
	}
	return in.Pointer != nil && in.Pointer.Pressed
}

// pointerTarget turns the frame's pointer state into a move target.
// Only a held contact that began during the run steers the player.
func (g *Game) pointerTarget(in core.InputFrame) *core.Vec {
	p := in.Pointer
	if p == nil {
		return nil
	}
	if p.Released {
		g.world.Release()
		return nil
	}

	t := g.ToArena(*p)
	if p.Pressed {
		g.world.Press(&t)
		return &t
	}
	if p.Down && g.world.Dragging() {
		return &t
	}
	return nil
}

// nudgeTarget steers with direction keys when no pointer is available.
func (g *Game) nudgeTarget(in core.InputFrame) *core.Vec {
	var dx, dy float64
	if in.Has(core.ActionLeft) {
		dx--
	}
	if in.Has(core.ActionRight) {
		dx++
	}
	if in.Has(core.ActionUp) {
		dy--
	}
	if in.Has(core.ActionDown) {
		dy++
	}
	if dx == 0 && dy == 0 {
		return nil
	}
	step := g.cfg.Input.NudgeStep
	t := g.world.Player().Center().Add(core.Vec{X: dx * step, Y: dy * step})
	return &t
}

// ToArena converts a pointer position in screen units into arena coordinates.
// Rows above the playfield belong to the HUD. Touch contacts are lifted by the
// configured offset so the finger does not cover the player.
func (g *Game) ToArena(p core.Pointer) core.Vec {
	v := core.Vec{X: p.X, Y: p.Y - float64(g.runtime.HUDRows)}

	playW := float64(g.runtime.ScreenW)
	playH := float64(g.runtime.ScreenH - g.runtime.HUDRows)
	if playW > 0 && playH > 0 {
		v.X *= g.cfg.Arena.Width / playW
		v.Y *= g.cfg.Arena.Height / playH
	}
	if p.Touch {
		v.Y -= g.cfg.Input.TouchOffset
	}
	return v
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Snapshot returns the current world snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.world.Score(),
		HighScore: g.world.HighScore(),
		Lives:     g.world.DisplayLives(),
		Started:   g.world.Phase() != PhaseNotStarted,
		GameOver:  g.world.Phase() == PhaseGameOver,
		Paused:    g.paused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("survival", func() registry.Game {
		return New()
	})
	registry.Register("survival_belt", func() registry.Game {
		return NewBelt()
	})
}
