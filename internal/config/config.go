// Package config provides YAML-based game configuration loading and
// difficulty management for the survivor platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Hazard boundary policies.
const (
	HazardBounce = "bounce" // reflect velocity at the arena edge
	HazardWrap   = "wrap"   // leave one edge, re-enter from the opposite one
)

// Hunter motion policies.
const (
	HunterSeek    = "seek"    // head straight for the player center
	HunterPursuit = "pursuit" // cross the arena horizontally while tracking vertically
)

// SurvivalConfig contains all configuration for the survival game.
type SurvivalConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Hazards    HazardsConfig    `yaml:"hazards"`
	Hunter     HunterConfig     `yaml:"hunter"`
	Pickup     PickupConfig     `yaml:"pickup"`
	Session    SessionConfig    `yaml:"session"`
	Policy     PolicyConfig     `yaml:"policy"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the logical playfield size in arena units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player character.
type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Invincibility float64 `yaml:"invincibility"` // seconds of hazard immunity after a hit
}

// HazardsConfig defines the bouncing spikes.
type HazardsConfig struct {
	Count        int     `yaml:"count"`
	Size         float64 `yaml:"size"`
	MaxSpeed     float64 `yaml:"max_speed"`
	MinAxisSpeed float64 `yaml:"min_axis_speed"`
	WrapSpacing  float64 `yaml:"wrap_spacing"` // max extra gap when re-entering under the wrap policy
}

// HunterConfig defines the chasing enemy.
type HunterConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"` // added per crossed spawn threshold
	Period         float64 `yaml:"period"`          // seconds between spawn thresholds
	EdgeMargin     float64 `yaml:"edge_margin"`
	OffscreenGap   float64 `yaml:"offscreen_gap"`
	Tracking       float64 `yaml:"tracking"` // vertical correction rate for pursuit
	Lifetime       float64 `yaml:"lifetime"` // 0 means the hunter never expires on its own
}

// PickupConfig defines the life-restoring donut.
type PickupConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Period   float64 `yaml:"period"`
	MarginX  float64 `yaml:"margin_x"`
	MarginY  float64 `yaml:"margin_y"`
	Lifetime float64 `yaml:"lifetime"`
}

// SessionConfig defines lives.
type SessionConfig struct {
	StartLives int `yaml:"start_lives"`
	MaxLives   int `yaml:"max_lives"`
}

// PolicyConfig selects the motion policies.
type PolicyConfig struct {
	Hazards string `yaml:"hazards"`
	Hunter  string `yaml:"hunter"`
}

// InputConfig defines how raw pointer input becomes a move target.
type InputConfig struct {
	TouchOffset float64 `yaml:"touch_offset"` // target sits this far above a touch contact
	NudgeStep   float64 `yaml:"nudge_step"`   // arena units moved per steering key press
}

// DifficultyConfig defines the tiered difficulty progression.
type DifficultyConfig struct {
	Enabled bool    `yaml:"enabled"`
	Period  float64 `yaml:"period"`   // seconds per tier
	Step    float64 `yaml:"step"`     // multiplier added per tier
	MaxTier int     `yaml:"max_tier"` // 0 means uncapped
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal, hard or fixed)", s)
	}
}

// ApplySurvivalPreset modifies the config based on a difficulty preset.
func ApplySurvivalPreset(cfg *SurvivalConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Step = 0.15
		cfg.Session.StartLives = cfg.Session.MaxLives
		cfg.Hunter.SpeedIncrement = 20
	case DifficultyNormal:
		cfg.Difficulty.Step = 0.25
	case DifficultyHard:
		cfg.Difficulty.Step = 0.35
		cfg.Session.StartLives = 2
		cfg.Hunter.BaseSpeed = 180
		cfg.Hunter.SpeedIncrement = 40
	}
}

// Validate checks that the config can drive a simulation.
func (c SurvivalConfig) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("config: %w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return invalid("arena size must be positive, got %gx%g", c.Arena.Width, c.Arena.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return invalid("player size must be positive")
	case c.Player.Invincibility < 0:
		return invalid("player invincibility must not be negative")
	case c.Hazards.Count < 0:
		return invalid("hazard count must not be negative")
	case c.Hazards.Size <= 0:
		return invalid("hazard size must be positive")
	case c.Hazards.MaxSpeed < 0 || c.Hazards.MinAxisSpeed < 0:
		return invalid("hazard speeds must not be negative")
	case c.Hunter.Width <= 0 || c.Hunter.Height <= 0:
		return invalid("hunter size must be positive")
	case c.Hunter.Period <= 0:
		return invalid("hunter period must be positive")
	case c.Hunter.Lifetime < 0 || c.Pickup.Lifetime < 0:
		return invalid("lifetimes must not be negative")
	case c.Pickup.Width <= 0 || c.Pickup.Height <= 0:
		return invalid("pickup size must be positive")
	case c.Pickup.Period <= 0:
		return invalid("pickup period must be positive")
	case c.Session.StartLives < 0:
		return invalid("start_lives must not be negative")
	case c.Session.MaxLives < c.Session.StartLives:
		return invalid("max_lives (%d) is below start_lives (%d)", c.Session.MaxLives, c.Session.StartLives)
	case c.Policy.Hazards != HazardBounce && c.Policy.Hazards != HazardWrap:
		return invalid("unknown hazard policy %q", c.Policy.Hazards)
	case c.Policy.Hunter != HunterSeek && c.Policy.Hunter != HunterPursuit:
		return invalid("unknown hunter policy %q", c.Policy.Hunter)
	case c.Difficulty.Period <= 0:
		return invalid("difficulty period must be positive")
	case c.Difficulty.MaxTier < 0:
		return invalid("difficulty max_tier must not be negative")
	}
	return nil
}
