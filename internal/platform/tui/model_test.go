package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/storage"
)

// scriptedGame accumulates dt as score and ends when told to.
type scriptedGame struct {
	score    float64
	started  bool
	over     bool
	endNext  bool
	lastIn   core.InputFrame
	store    core.HighScoreStore
	resizedW int
	resets   int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.score, g.started, g.over = 0, false, false
}

func (g *scriptedGame) Step(dt float64, in core.InputFrame) core.StepResult {
	g.lastIn = in.Clone()
	if !g.started {
		if in.Has(core.ActionPrimary) {
			g.started = true
			return core.StepResult{State: g.State(), Cues: []core.Cue{core.CueStart}}
		}
		return core.StepResult{State: g.State()}
	}
	if g.over {
		return core.StepResult{State: g.State()}
	}
	g.score += dt
	if g.endNext {
		g.over = true
		if g.store != nil {
			g.store.CommitHighScore(g.score)
		}
		return core.StepResult{State: g.State(), Cues: []core.Cue{core.CueGameOver}}
	}
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState {
	return core.GameState{Score: g.score, Started: g.started, GameOver: g.over}
}
func (g *scriptedGame) SetHighScoreStore(s core.HighScoreStore) { g.store = s }
func (g *scriptedGame) Resize(w, h int)                         { g.resizedW = w }

func tick(m Model, at time.Time) Model {
	next, _ := m.Update(TickMsg(at))
	return next.(Model)
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelRunLifecycle(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{}
	m := NewModel(game, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1}, Deps{Store: store})
	game.Reset(m.config)

	if game.store == nil {
		t.Fatal("model should attach a high score store")
	}

	t0 := time.Unix(1000, 0)
	m = send(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tick(m, t0)
	if !m.State().Started {
		t.Fatal("space should start the run")
	}

	m = tick(m, t0.Add(1500*time.Millisecond))
	if m.State().Score != 1.5 {
		t.Errorf("score = %f, expected wall-clock 1.5", m.State().Score)
	}

	game.endNext = true
	m = tick(m, t0.Add(2*time.Second))
	if !m.State().GameOver {
		t.Fatal("run should be over")
	}
	m = tick(m, t0.Add(3*time.Second))

	runs, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 2 {
		t.Errorf("runs = %+v, expected a single 2s run", runs)
	}
	if best, _ := store.BestScore("scripted"); best != 2 {
		t.Errorf("best = %f, expected 2", best)
	}
}

func TestModelMouseReachesGame(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1}, Deps{})
	game.Reset(m.config)

	t0 := time.Unix(1000, 0)
	m = send(m, tea.MouseMsg{X: 4, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = send(m, tea.MouseMsg{X: 4, Y: 5, Action: tea.MouseActionRelease})
	m = tick(m, t0)

	if p := game.lastIn.Pointer; p == nil || !p.Pressed || p.Released {
		t.Fatalf("first tick should see the press only, got %+v", p)
	}

	m = tick(m, t0.Add(time.Second/60))
	if p := game.lastIn.Pointer; p == nil || !p.Released {
		t.Errorf("second tick should see the deferred release, got %+v", p)
	}

	tick(m, t0.Add(time.Second/30))
	if game.lastIn.Pointer != nil {
		t.Error("pointer should clear after it is delivered")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1}, Deps{})
	game.Reset(m.config)

	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.resizedW != 100 || game.resets != 1 {
		t.Errorf("resize should reach the game without a reset (resized %d, resets %d)", game.resizedW, game.resets)
	}
	if !strings.Contains(m.View(), "scripted") {
		t.Error("view should render the game")
	}
}

func TestModelQuitAndBack(t *testing.T) {
	game := &scriptedGame{over: true, started: true}
	m := NewModel(game, core.RuntimeConfig{ScreenW: 40, ScreenH: 10}, Deps{})
	m.inSession = true
	m = tick(m, time.Unix(1, 0))

	m = send(m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("b after game over should return to the menu")
	}

	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}
