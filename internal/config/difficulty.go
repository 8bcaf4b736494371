package config

import "math"

// DifficultyManager turns elapsed score into a tier and a speed multiplier.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Period > 0
}

// Tier returns floor(score / period), capped at max_tier when one is set.
// Progression disabled, negative or non-finite scores all give tier 0.
func (d *DifficultyManager) Tier(score float64) int {
	if !d.IsEnabled() || !(score > 0) || math.IsInf(score, 1) {
		return 0
	}
	steps := math.Floor(score / d.cfg.Period)
	if steps > math.MaxInt32 {
		steps = math.MaxInt32
	}
	tier := int(steps)
	if d.cfg.MaxTier > 0 && tier > d.cfg.MaxTier {
		tier = d.cfg.MaxTier
	}
	return tier
}

// Multiplier returns 1 + tier*step.
func (d *DifficultyManager) Multiplier(score float64) float64 {
	return 1.0 + float64(d.Tier(score))*d.cfg.Step
}
