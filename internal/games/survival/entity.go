package survival

import "github.com/vovakirdan/tui-survivor/internal/core"

// Player is the character steered by the move target.
type Player struct {
	core.Box
	Invincible          bool
	InvincibleRemaining float64 // seconds, never negative
}

// Hazard is a moving spike. Touching one costs a life unless the player is invincible.
type Hazard struct {
	core.Box
	VX, VY float64 // arena units per second
}

// Hunter is the chasing enemy. Touching it ends the run.
type Hunter struct {
	core.Box
	Active bool
	Speed  float64 // base speed before the difficulty multiplier
	Dir    float64 // +1 or -1, horizontal heading for the pursuit policy
	Age    float64 // seconds since spawn
}

// Pickup is the donut that restores one life.
type Pickup struct {
	core.Box
	Active bool
	Age    float64
}
