package survival

import "github.com/vovakirdan/tui-survivor/internal/core"

// PressResult tells the caller how a pointer press was dispatched.
type PressResult int

const (
	PressStarted PressResult = iota // the press started a new run
	PressDrag                       // the press began moving the player
)

// Press handles the primary interaction. While no run is in progress it starts
// one; during a run it begins a drag and moves the player to target if given.
func (w *World) Press(target *core.Vec) PressResult {
	if w.phase != PhaseRunning {
		w.Begin()
		return PressStarted
	}
	w.dragging = true
	if target != nil {
		w.moveTo(*target)
	}
	return PressDrag
}

// Release ends a drag.
func (w *World) Release() {
	w.dragging = false
}

// Dragging reports whether a drag is in progress.
func (w *World) Dragging() bool {
	return w.dragging
}

// Begin starts a fresh run. It does nothing while a run is already in progress.
func (w *World) Begin() {
	if w.phase == PhaseRunning {
		return
	}
	w.reset()
	w.phase = PhaseRunning
}

// Restart is Begin under another name, kept for callers reacting to game over.
func (w *World) Restart() {
	w.Begin()
}

func (w *World) reset() {
	w.score = 0
	w.lives = w.cfg.Session.StartLives
	w.dragging = false

	w.player.Invincible = false
	w.player.InvincibleRemaining = 0
	w.centerPlayer()

	w.pickup.Active = false
	w.pickup.Age = 0
	w.hazards = w.spawner.Hazards()

	w.hunter.Active = false
	w.hunter.Age = 0
	w.hunter.Speed = w.cfg.Hunter.BaseSpeed

	w.lastPickupStep = -1
	w.lastHunterStep = -1
}

// endRun moves to GameOver and commits the score if it is a new best.
func (w *World) endRun(events []Event) []Event {
	w.phase = PhaseGameOver
	w.dragging = false
	events = append(events, w.event(EventGameOver))

	if w.score > w.highScore {
		w.highScore = w.score
		events = append(events, w.event(EventNewHighScore))
		if w.store != nil {
			//nolint:errcheck // Best-effort commit, the in-memory best stays either way
			w.store.CommitHighScore(w.score)
		}
	}
	return events
}
