package survival

import (
	"math"

	"github.com/vovakirdan/tui-survivor/internal/core"
)

// maxStep bounds threshold indices so absurd scores cannot overflow int.
const maxStep = math.MaxInt32

// Update advances the simulation by dt seconds and returns what happened.
// It does nothing unless a run is in progress. Negative or non-finite dt counts as 0.
// When target is non-nil the player is centered on it and clamped inside the arena.
func (w *World) Update(dt float64, target *core.Vec) []Event {
	if w.phase != PhaseRunning {
		return nil
	}
	if !core.Finite(dt) || dt < 0 {
		dt = 0
	}
	if target != nil {
		w.moveTo(*target)
	}

	var events []Event

	w.score += dt
	mult := w.difficulty.Multiplier(w.score)

	w.decayInvincibility(dt)
	w.moveHazards(dt, mult)

	events = w.evaluateSpawns(events)

	events = w.moveHunter(dt, mult, events)
	events = w.agePickup(dt, events)

	return w.resolveCollisions(events)
}

func (w *World) event(kind EventKind) Event {
	return Event{Kind: kind, Score: w.score, Lives: w.lives}
}

func (w *World) decayInvincibility(dt float64) {
	if !w.player.Invincible {
		return
	}
	w.player.InvincibleRemaining -= dt
	if w.player.InvincibleRemaining <= 0 {
		w.player.Invincible = false
		w.player.InvincibleRemaining = 0
	}
}

// thresholdStep returns floor(score/period), saturated to [0, maxStep].
func thresholdStep(score, period float64) int {
	if !(score > 0) || !(period > 0) {
		return 0
	}
	step := math.Floor(score / period)
	if step >= maxStep || math.IsInf(step, 1) {
		return maxStep
	}
	return int(step)
}

// evaluateSpawns handles score-gated spawns. Each kind reacts at most once per
// call however many thresholds the score skipped over.
func (w *World) evaluateSpawns(events []Event) []Event {
	pickupStep := thresholdStep(w.score, w.cfg.Pickup.Period)
	if pickupStep > w.lastPickupStep {
		w.lastPickupStep = pickupStep
		if !w.pickup.Active && pickupStep > 0 {
			w.pickup = w.spawner.Pickup()
			events = append(events, w.event(EventPickupSpawned))
		}
	}

	hunterStep := thresholdStep(w.score, w.cfg.Hunter.Period)
	if hunterStep > w.lastHunterStep {
		w.lastHunterStep = hunterStep
		if hunterStep > 0 {
			speed := w.cfg.Hunter.BaseSpeed + float64(hunterStep)*w.cfg.Hunter.SpeedIncrement
			w.hunter.Speed = math.Max(w.hunter.Speed, speed)
			if !w.hunter.Active {
				w.hunter = w.spawner.Hunter(w.hunter.Speed)
				events = append(events, w.event(EventHunterSpawned))
			}
		}
	}
	return events
}

func (w *World) agePickup(dt float64, events []Event) []Event {
	if !w.pickup.Active {
		return events
	}
	w.pickup.Age += dt
	if lifetime := w.cfg.Pickup.Lifetime; lifetime > 0 && w.pickup.Age >= lifetime {
		w.pickup.Active = false
		events = append(events, w.event(EventPickupExpired))
	}
	return events
}

// resolveCollisions checks hazards, then the pickup, then the hunter.
// A fatal result stops the remaining checks.
func (w *World) resolveCollisions(events []Event) []Event {
	if !w.player.Invincible {
		for i := range w.hazards {
			if !w.player.Overlaps(w.hazards[i].Box) {
				continue
			}
			w.lives--
			w.player.Invincible = true
			w.player.InvincibleRemaining = w.cfg.Player.Invincibility
			events = append(events, w.event(EventHit))
			if w.lives < 0 {
				return w.endRun(events)
			}
			break
		}
	}

	if w.pickup.Active && w.player.Overlaps(w.pickup.Box) {
		w.pickup.Active = false
		if w.lives < w.cfg.Session.MaxLives {
			w.lives++
		}
		events = append(events, w.event(EventPickupCollected))
	}

	if w.hunter.Active && w.player.Overlaps(w.hunter.Box) {
		return w.endRun(events)
	}
	return events
}
