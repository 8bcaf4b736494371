package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-survivor/internal/audio"
	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/registry"
	"github.com/vovakirdan/tui-survivor/internal/storage"
)

// Deps holds the optional collaborators of a game model. Any field may be nil.
type Deps struct {
	Store      *storage.Store
	HighScores core.HighScoreStore
	Audio      *audio.Player
	Logger     *log.Logger
}

// Model is the Bubble Tea model for running a game in the terminal.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	deps       Deps
	config     core.RuntimeConfig
	clock      core.FrameClock
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	deferred   *core.Pointer // release held back until its press has been stepped
	gameState  core.GameState
	inSession  bool // started from a menu session; Back returns to it
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been recorded for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// The first row of the terminal is reserved for the HUD.
func NewModel(game registry.Game, cfg core.RuntimeConfig, deps Deps) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	cfg.HUDRows = 1

	if hs, ok := game.(registry.HighScorer); ok {
		store := deps.HighScores
		if store == nil && deps.Store != nil {
			store = storage.NewHighScores(deps.Store, game.ID(), deps.Logger)
		}
		if store != nil {
			hs.SetHighScoreStore(store)
		}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		deps:       deps,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop. The game itself is reset by the caller or by Run.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "m":
		muted := m.deps.Audio.ToggleMute()
		m.logger().Debug("audio toggled", "muted", muted)
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inSession && m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
	}

	return m, nil
}

// handleMouse queues the pointer sample for the next tick.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p, ok := m.keyMapper.MapMouse(msg)
	if !ok {
		return m, nil
	}
	merged, deferred := MergePointer(m.inputFrame.Pointer, p)
	m.inputFrame.SetPointer(merged)
	if deferred != nil {
		m.deferred = deferred
	}
	return m, nil
}

// handleResize follows the terminal size without restarting the run when the game allows it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick advances the game by the wall-clock time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	dt := m.clock.Tick(now)
	result := m.game.Step(dt, m.inputFrame)
	m.gameState = result.State

	for _, c := range result.Cues {
		m.deps.Audio.Play(c)
		m.logger().Debug("cue", "game", m.game.ID(), "cue", c)
	}

	if !m.gameState.GameOver {
		m.scoreSaved = false
	} else if !m.scoreSaved {
		m.recordRun()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	if m.deferred != nil {
		m.inputFrame.SetPointer(*m.deferred)
		m.deferred = nil
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the finished run in the history table.
func (m *Model) recordRun() {
	m.logger().Info("run ended",
		"game", m.game.ID(),
		"survived", fmt.Sprintf("%.2fs", m.gameState.Score),
		"best", fmt.Sprintf("%.2fs", m.gameState.HighScore),
	)
	if m.deps.Store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.deps.Store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		m.logger().Warn("could not save run", "game", m.game.ID(), "error", err)
	}
}

func (m Model) logger() *log.Logger {
	if m.deps.Logger != nil {
		return m.deps.Logger
	}
	return log.New(io.Discard)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last stepped game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run resets the game and runs it until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, deps Deps) error {
	model := NewModel(game, cfg, deps)
	game.Reset(model.config)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
