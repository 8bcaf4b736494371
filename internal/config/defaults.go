package config

import (
	_ "embed"
)

//go:embed defaults/survival.yaml
var defaultSurvivalYAML []byte

//go:embed defaults/survival_belt.yaml
var beltOverlayYAML []byte

// Variant names accepted by ApplyVariant.
const (
	VariantClassic = "classic"
	VariantBelt    = "belt"
)

// DefaultSurvivalConfig returns the default survival configuration.
func DefaultSurvivalConfig() SurvivalConfig {
	return SurvivalConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:         80,
			Height:        95,
			Invincibility: 1.0,
		},
		Hazards: HazardsConfig{
			Count:        8,
			Size:         40,
			MaxSpeed:     120,
			MinAxisSpeed: 40,
			WrapSpacing:  120,
		},
		Hunter: HunterConfig{
			Width:          130,
			Height:         140,
			BaseSpeed:      150,
			SpeedIncrement: 30,
			Period:         10,
			EdgeMargin:     40,
			OffscreenGap:   20,
			Tracking:       1.5,
		},
		Pickup: PickupConfig{
			Width:   70,
			Height:  70,
			Period:  5,
			MarginX: 40,
			MarginY: 60,
		},
		Session: SessionConfig{
			StartLives: 3,
			MaxLives:   5,
		},
		Policy: PolicyConfig{
			Hazards: HazardBounce,
			Hunter:  HunterSeek,
		},
		Input: InputConfig{
			TouchOffset: 100,
			NudgeStep:   40,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Period:  10,
			Step:    0.25,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "survival":
		return defaultSurvivalYAML
	case "survival_belt":
		return beltOverlayYAML
	default:
		return nil
	}
}
