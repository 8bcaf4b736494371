package survival

import (
	"math"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

func (w *World) moveHazards(dt, mult float64) {
	for i := range w.hazards {
		h := &w.hazards[i]
		h.X += h.VX * dt * mult
		h.Y += h.VY * dt * mult

		if w.cfg.Policy.Hazards == config.HazardWrap {
			w.wrapHazard(h)
		} else {
			w.bounceHazard(h)
		}
	}
}

// bounceHazard reflects the velocity component of each crossed edge and
// puts the hazard back on that edge.
func (w *World) bounceHazard(h *Hazard) {
	width, height := w.cfg.Arena.Width, w.cfg.Arena.Height

	if h.X < 0 {
		h.X = 0
		h.VX = math.Abs(h.VX)
	} else if h.Right() > width {
		h.X = math.Max(0, width-h.W)
		h.VX = -math.Abs(h.VX)
	}

	if h.Y < 0 {
		h.Y = 0
		h.VY = math.Abs(h.VY)
	} else if h.Bottom() > height {
		h.Y = math.Max(0, height-h.H)
		h.VY = -math.Abs(h.VY)
	}
}

// wrapHazard moves a hazard that is completely outside the arena to the far side.
func (w *World) wrapHazard(h *Hazard) {
	width, height := w.cfg.Arena.Width, w.cfg.Arena.Height

	if (h.VX > 0 && h.X > width) || (h.VX < 0 && h.Right() < 0) {
		w.spawner.Rewrap(h, true)
	}
	if (h.VY > 0 && h.Y > height) || (h.VY < 0 && h.Bottom() < 0) {
		w.spawner.Rewrap(h, false)
	}
}

func (w *World) moveHunter(dt, mult float64, events []Event) []Event {
	if !w.hunter.Active {
		return events
	}
	w.hunter.Age += dt

	if w.cfg.Policy.Hunter == config.HunterPursuit {
		w.pursue(dt, mult)
	} else {
		w.seek(dt, mult)
	}

	if lifetime := w.cfg.Hunter.Lifetime; lifetime > 0 && w.hunter.Age >= lifetime {
		w.hunter.Active = false
		return append(events, w.event(EventHunterExpired))
	}
	if w.cfg.Policy.Hunter == config.HunterPursuit && w.hunterPassed() {
		w.hunter.Active = false
		return append(events, w.event(EventHunterExpired))
	}
	return events
}

// seek moves the hunter straight toward the player center.
// It stops on the center instead of overshooting.
func (w *World) seek(dt, mult float64) {
	delta := w.player.Center().Sub(w.hunter.Center())
	dist := delta.Len()
	if dist == 0 {
		return
	}
	step := w.hunter.Speed * mult * dt
	if step >= dist || !core.Finite(step) {
		w.hunter.X += delta.X
		w.hunter.Y += delta.Y
		return
	}
	move := delta.Normalize().Scale(step)
	w.hunter.X += move.X
	w.hunter.Y += move.Y
}

// pursue sweeps the hunter across the arena in its heading while it drifts
// toward the player's row. The vertical correction never overshoots and is
// limited to the hunter's speed.
func (w *World) pursue(dt, mult float64) {
	speed := w.hunter.Speed * mult
	w.hunter.X += w.hunter.Dir * speed * dt

	dy := w.player.Center().Y - w.hunter.Center().Y
	if dy == 0 {
		return
	}
	frac := math.Min(1, w.cfg.Hunter.Tracking*dt)
	corr := dy * frac
	limit := speed * dt
	if core.Finite(limit) {
		corr = core.ClampF(corr, -limit, limit)
	}
	w.hunter.Y += corr
}

// hunterPassed reports whether a pursuing hunter has left through the far side.
func (w *World) hunterPassed() bool {
	if !core.Finite(w.hunter.X) {
		return true
	}
	if w.hunter.Dir > 0 {
		return w.hunter.X > w.cfg.Arena.Width
	}
	return w.hunter.Right() < 0
}
