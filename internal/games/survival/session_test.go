package survival

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

func arenaBox(cfg config.SurvivalConfig) core.Box {
	return core.Box{W: cfg.Arena.Width, H: cfg.Arena.Height}
}

func TestNewWorldLoadsHighScore(t *testing.T) {
	tests := []struct {
		name  string
		store core.HighScoreStore
		want  float64
	}{
		{"nil store", nil, 0},
		{"stored value", &fakeStore{best: 42.5}, 42.5},
		{"load error", &fakeStore{best: 42.5, loadErr: errors.New("locked")}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld(config.DefaultSurvivalConfig(), 1, tc.store)
			if w.HighScore() != tc.want {
				t.Errorf("HighScore() = %f, expected %f", w.HighScore(), tc.want)
			}
			if w.Phase() != PhaseNotStarted {
				t.Errorf("new world phase = %v", w.Phase())
			}
		})
	}
}

func TestBeginResetsSession(t *testing.T) {
	cfg := config.DefaultSurvivalConfig()
	w := NewWorld(cfg, 1, nil)
	w.Begin()

	// Dirty every piece of session state, then end the run.
	w.score = 33
	w.lives = 1
	w.player.Invincible = true
	w.player.InvincibleRemaining = 0.5
	w.pickup.Active = true
	w.hunter.Active = true
	w.hunter.Speed = 999
	w.hazards = w.hazards[:2]
	w.lastPickupStep = 6
	w.lastHunterStep = 3
	w.phase = PhaseGameOver

	w.Restart()

	if w.Phase() != PhaseRunning {
		t.Fatalf("phase = %v, expected running", w.Phase())
	}
	if w.Score() != 0 || w.Lives() != cfg.Session.StartLives {
		t.Errorf("score/lives = %f/%d", w.Score(), w.Lives())
	}
	if w.player.Invincible || w.player.InvincibleRemaining != 0 {
		t.Error("invincibility should be cleared")
	}
	if w.pickup.Active || w.hunter.Active {
		t.Error("pickup and hunter should be inactive")
	}
	if w.hunter.Speed != cfg.Hunter.BaseSpeed {
		t.Errorf("hunter speed = %f, expected base %f", w.hunter.Speed, cfg.Hunter.BaseSpeed)
	}
	if len(w.hazards) != cfg.Hazards.Count {
		t.Errorf("hazards = %d, expected %d", len(w.hazards), cfg.Hazards.Count)
	}
	if w.lastPickupStep != -1 || w.lastHunterStep != -1 {
		t.Error("spawn markers should be reset")
	}
	if c := w.player.Center(); c.X != cfg.Arena.Width/2 || c.Y != cfg.Arena.Height/2 {
		t.Errorf("player should be centered, got %+v", c)
	}
}

func TestBeginIsIdempotentWhileRunning(t *testing.T) {
	w := startedWorld(quietConfig(), nil)
	w.Update(3, nil)

	w.Begin()
	if w.Score() != 3 {
		t.Errorf("Begin during a run reset the score to %f", w.Score())
	}
}

func TestPressDispatch(t *testing.T) {
	w := NewWorld(quietConfig(), 1, nil)

	if got := w.Press(&core.Vec{X: 10, Y: 10}); got != PressStarted {
		t.Fatalf("first press = %v, expected PressStarted", got)
	}
	if !w.Running() || w.Dragging() {
		t.Error("starting press should start the run without dragging")
	}
	if c := w.player.Center(); c.X != 400 {
		t.Error("starting press should not move the player")
	}

	if got := w.Press(&core.Vec{X: 200, Y: 200}); got != PressDrag {
		t.Fatalf("press while running = %v, expected PressDrag", got)
	}
	if !w.Dragging() {
		t.Error("drag should be active")
	}
	if c := w.player.Center(); c.X != 200 || c.Y != 200 {
		t.Errorf("drag press should move the player, center %+v", c)
	}

	w.Release()
	if w.Dragging() {
		t.Error("release should end the drag")
	}
}

func TestPressAfterGameOverRestarts(t *testing.T) {
	w := startedWorld(quietConfig(), nil)
	w.hunter = Hunter{Box: w.player.Box, Active: true}
	w.Update(4, nil)
	if w.Phase() != PhaseGameOver {
		t.Fatal("setup: run should be over")
	}

	if got := w.Press(nil); got != PressStarted {
		t.Errorf("press after game over = %v, expected PressStarted", got)
	}
	if !w.Running() || w.Score() != 0 {
		t.Error("press after game over should start a fresh run")
	}
	if w.HighScore() != 4 {
		t.Errorf("high score should survive restart, got %f", w.HighScore())
	}
}

func TestEventCues(t *testing.T) {
	tests := []struct {
		kind EventKind
		cue  core.Cue
	}{
		{EventHit, core.CueHit},
		{EventPickupCollected, core.CuePickup},
		{EventHunterSpawned, core.CueHunter},
		{EventGameOver, core.CueGameOver},
		{EventNewHighScore, core.CueNewRecord},
		{EventHunterExpired, core.CueNone},
	}
	for _, tc := range tests {
		if got := (Event{Kind: tc.kind}).Cue(); got != tc.cue {
			t.Errorf("%v cue = %v, expected %v", tc.kind, got, tc.cue)
		}
	}
}
