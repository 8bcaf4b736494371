package survival

import "github.com/vovakirdan/tui-survivor/internal/core"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	ArenaW, ArenaH float64

	Player              core.Box
	Invincible          bool
	InvincibleRemaining float64

	Hazards []core.Box

	Hunter       core.Box
	HunterActive bool

	Pickup       core.Box
	PickupActive bool

	Score      float64
	Lives      int
	HighScore  float64
	Phase      Phase
	Tier       int
	Multiplier float64
}

// DisplayLives returns lives clamped at zero.
func (s Snapshot) DisplayLives() int {
	return core.Max(0, s.Lives)
}

// Snapshot copies the current world state.
func (w *World) Snapshot() Snapshot {
	hazards := make([]core.Box, len(w.hazards))
	for i, h := range w.hazards {
		hazards[i] = h.Box
	}

	return Snapshot{
		ArenaW:              w.cfg.Arena.Width,
		ArenaH:              w.cfg.Arena.Height,
		Player:              w.player.Box,
		Invincible:          w.player.Invincible,
		InvincibleRemaining: w.player.InvincibleRemaining,
		Hazards:             hazards,
		Hunter:              w.hunter.Box,
		HunterActive:        w.hunter.Active,
		Pickup:              w.pickup.Box,
		PickupActive:        w.pickup.Active,
		Score:               w.score,
		Lives:               w.lives,
		HighScore:           w.highScore,
		Phase:               w.phase,
		Tier:                w.Tier(),
		Multiplier:          w.Multiplier(),
	}
}
