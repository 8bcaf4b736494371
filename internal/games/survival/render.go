package survival

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-survivor/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar  = '█'
	HazardChar  = '▲'
	HunterChar  = '▓'
	PickupChar  = '◎'
	LifeChar    = '♥'
	BorderHoriz = '─'
)

const (
	minScreenW = 30
	minScreenH = 12
)

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	snap := g.world.Snapshot()
	view := newViewport(dst, snap.ArenaW, snap.ArenaH, g.runtime.HUDRows)

	g.renderHUD(dst, snap)

	if snap.PickupActive {
		view.fill(dst, snap.Pickup, PickupChar, core.ColorBrightYellow)
	}
	for _, h := range snap.Hazards {
		view.fill(dst, h, HazardChar, core.ColorBrightRed)
	}
	if snap.HunterActive {
		view.fill(dst, snap.Hunter, HunterChar, core.ColorBrightMagenta)
	}
	if !snap.Invincible || g.frames/4%2 == 0 {
		view.fill(dst, snap.Player, PlayerChar, core.ColorBrightCyan)
	}

	g.renderOverlay(dst, snap)
}

// renderHUD draws score, best, lives and tier on the top row.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %.1f", snap.Score))

	lives := strings.Repeat(string(LifeChar), snap.DisplayLives())
	dst.DrawTextColored((dst.Width()-len([]rune(lives)))/2, 0, lives, core.ColorBrightRed)

	right := fmt.Sprintf("Best: %.1f", snap.HighScore)
	if snap.Tier > 0 {
		right = fmt.Sprintf("x%.2f  %s", snap.Multiplier, right)
	}
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	if g.runtime.HUDRows > 1 {
		dst.DrawHLine(0, 1, dst.Width(), BorderHoriz)
	}
}

// renderOverlay draws start, pause and game over boxes.
func (g *Game) renderOverlay(dst *core.Screen, snap Snapshot) {
	switch {
	case snap.Phase == PhaseNotStarted:
		drawCenteredBox(dst, g.Title(),
			"Drag to move, dodge ▲ spikes, grab ◎ donuts",
			"Click or press Space to start")
	case snap.Phase == PhaseGameOver:
		result := fmt.Sprintf("Survived %.1fs  Best %.1fs", snap.Score, snap.HighScore)
		drawCenteredBox(dst, "GAME OVER", result, "Click or press R to restart")
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "", "Press P to resume")
	}
}

func drawCenteredBox(dst *core.Screen, title, body, hint string) {
	w := dst.Width()
	h := dst.Height()

	textW := core.Max(len([]rune(title)), core.Max(len([]rune(body)), len([]rune(hint))))
	boxW := core.Min(textW+4, w)
	boxH := 7
	boxX := (w - boxW) / 2
	boxY := core.Clamp((h-boxH)/2, 0, core.Max(h-1, 0))

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	if body != "" {
		dst.DrawText(boxX+(boxW-len([]rune(body)))/2, boxY+3, body)
	}
	dst.DrawTextColored(boxX+(boxW-len([]rune(hint)))/2, boxY+5, hint, core.ColorGray)
}

// viewport maps arena coordinates onto the playfield cells below the HUD.
type viewport struct {
	top    int
	width  int
	height int
	sx, sy float64
}

func newViewport(dst *core.Screen, arenaW, arenaH float64, hudRows int) viewport {
	v := viewport{
		top:    hudRows,
		width:  dst.Width(),
		height: dst.Height() - hudRows,
	}
	v.sx = float64(v.width) / arenaW
	v.sy = float64(v.height) / arenaH
	return v
}

// cells converts a box to the playfield cells it covers, clipped to the playfield.
// Any visible box covers at least one cell.
func (v viewport) cells(b core.Box) (core.Rect, bool) {
	toCell := func(f float64, limit int) int {
		return int(core.ClampF(f, -1, float64(limit)+1))
	}
	x0 := toCell(math.Floor(b.X*v.sx), v.width)
	y0 := toCell(math.Floor(b.Y*v.sy), v.height)
	x1 := core.Max(x0+1, toCell(math.Ceil(b.Right()*v.sx), v.width))
	y1 := core.Max(y0+1, toCell(math.Ceil(b.Bottom()*v.sy), v.height))

	x0, x1 = core.Max(x0, 0), core.Min(x1, v.width)
	y0, y1 = core.Max(y0, 0), core.Min(y1, v.height)
	if x0 >= x1 || y0 >= y1 {
		return core.Rect{}, false
	}
	return core.NewRect(x0, y0+v.top, x1-x0, y1-y0), true
}

func (v viewport) fill(dst *core.Screen, b core.Box, r rune, c core.Color) {
	if !core.Finite(b.X) || !core.Finite(b.Y) {
		return
	}
	if rect, ok := v.cells(b); ok {
		dst.DrawRectColored(rect, r, c)
	}
}
