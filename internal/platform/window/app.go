// Package window runs the survival game in a desktop or mobile window with Ebiten.
// Mouse and touch steer the player directly; the arena maps 1:1 to window pixels.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-survivor/internal/audio"
	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/games/survival"
	"github.com/vovakirdan/tui-survivor/internal/storage"
)

// glyph size of the ebitenutil debug font
const charW, charH = 6, 16

// Options configures a window run. Store, HighScores, Audio and Logger may be nil.
type Options struct {
	Seed       int64
	TickRate   int
	Store      *storage.Store
	HighScores core.HighScoreStore
	Audio      *audio.Player
	Logger     *log.Logger
}

// App implements ebiten.Game around a survival.Game.
type App struct {
	game       *survival.Game
	opts       Options
	clock      core.FrameClock
	prev       contact
	frame      int
	scoreSaved bool
}

// NewApp resets game for a window the size of its arena.
func NewApp(game *survival.Game, opts Options) *App {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	switch {
	case opts.HighScores != nil:
		game.SetHighScoreStore(opts.HighScores)
	case opts.Store != nil:
		game.SetHighScoreStore(storage.NewHighScores(opts.Store, game.ID(), opts.Logger))
	}

	game.Reset(core.RuntimeConfig{TickRate: opts.TickRate, Seed: opts.Seed})
	cfg := game.World().Config()
	game.Resize(int(cfg.Arena.Width), int(cfg.Arena.Height))

	return &App{game: game, opts: opts}
}

// Update reads input and steps the game by the wall-clock time since the last frame.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.opts.Logger.Debug("audio toggled", "muted", a.opts.Audio.ToggleMute())
	}

	in := a.readInput()
	result := a.game.Step(a.clock.Tick(time.Now()), in)
	a.frame++

	for _, c := range result.Cues {
		a.opts.Audio.Play(c)
		a.opts.Logger.Debug("cue", "game", a.game.ID(), "cue", c)
	}

	state := result.State
	if !state.GameOver {
		a.scoreSaved = false
	} else if !a.scoreSaved {
		a.scoreSaved = true
		a.opts.Logger.Info("run ended", "game", a.game.ID(), "survived", fmt.Sprintf("%.2fs", state.Score))
		if a.opts.Store != nil && state.Score > 0 {
			if _, err := a.opts.Store.SaveScore(a.game.ID(), state.Score); err != nil {
				a.opts.Logger.Warn("could not save run", "error", err)
			}
		}
	}
	return nil
}

// readInput collects keys and the primary contact for this frame.
func (a *App) readInput() core.InputFrame {
	in := core.NewInputFrame()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		in.Set(core.ActionPrimary)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Set(core.ActionPause)
	}

	nudges := []struct {
		action core.Action
		keys   []ebiten.Key
	}{
		{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
		{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
		{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
		{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	}
	for _, n := range nudges {
		for _, k := range n.keys {
			if repeating(inpututil.KeyPressDuration(k)) {
				in.Set(n.action)
			}
		}
	}

	cur := currentContact()
	if p, ok := pointerEdge(a.prev, cur); ok {
		in.SetPointer(p)
	}
	a.prev = cur
	return in
}

// currentContact prefers the first touch over the mouse.
func currentContact() contact {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return contact{Down: true, X: float64(x), Y: float64(y), Touch: true}
	}
	x, y := ebiten.CursorPosition()
	return contact{
		Down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:    float64(x),
		Y:    float64(y),
	}
}

// Draw renders the snapshot as filled rectangles with a debug-font HUD.
func (a *App) Draw(screen *ebiten.Image) {
	snap := a.game.Snapshot()

	for _, r := range drawList(snap, a.frame) {
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, r.Color, false)
	}

	left, right := hudText(snap)
	ebitenutil.DebugPrintAt(screen, left, 8, 4)
	ebitenutil.DebugPrintAt(screen, right, int(snap.ArenaW)-len(right)*charW-8, 4)

	lines := overlayText(snap, a.game.Paused())
	top := int(snap.ArenaH)/2 - len(lines)*charH/2
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, (int(snap.ArenaW)-len(line)*charW)/2, top+i*charH)
	}
}

// Layout keeps the logical screen at arena size; Ebiten scales it to the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := a.game.World().Config()
	return int(cfg.Arena.Width), int(cfg.Arena.Height)
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(game *survival.Game, opts Options) error {
	app := NewApp(game, opts)
	w, h := app.Layout(0, 0)

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(app.opts.TickRate)

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
