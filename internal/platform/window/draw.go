package window

import (
	"fmt"
	"image/color"
	"math"

	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/games/survival"
)

var (
	colorBackground = color.RGBA{0x12, 0x14, 0x1c, 0xff}
	colorPlayer     = color.RGBA{0x4d, 0xe1, 0xff, 0xff}
	colorHazard     = color.RGBA{0xff, 0x4d, 0x5e, 0xff}
	colorHunter     = color.RGBA{0xc8, 0x5c, 0xff, 0xff}
	colorPickup     = color.RGBA{0xff, 0xd8, 0x4d, 0xff}
	colorLife       = color.RGBA{0xff, 0x4d, 0x5e, 0xff}
	colorShade      = color.RGBA{0x00, 0x00, 0x00, 0xa0}
)

// rect is one filled rectangle in arena pixels.
type rect struct {
	X, Y, W, H float32
	Color      color.RGBA
}

func boxRect(b core.Box, c color.RGBA) rect {
	return rect{X: float32(b.X), Y: float32(b.Y), W: float32(b.W), H: float32(b.H), Color: c}
}

// drawList lists the rectangles for one frame back to front.
// The invincible player blinks every few frames.
func drawList(s survival.Snapshot, frame int) []rect {
	out := make([]rect, 0, len(s.Hazards)+8)
	out = append(out, rect{W: float32(s.ArenaW), H: float32(s.ArenaH), Color: colorBackground})

	if s.PickupActive {
		out = append(out, boxRect(s.Pickup, colorPickup))
	}
	for _, h := range s.Hazards {
		out = append(out, boxRect(h, colorHazard))
	}
	if s.HunterActive {
		out = append(out, boxRect(s.Hunter, colorHunter))
	}
	if !s.Invincible || frame/4%2 == 0 {
		out = append(out, boxRect(s.Player, colorPlayer))
	}

	// Lives as small squares along the top edge.
	const pip, gap = 12, 6
	lives := s.DisplayLives()
	x := float32(s.ArenaW)/2 - float32(lives*(pip+gap)-gap)/2
	for i := 0; i < lives; i++ {
		out = append(out, rect{X: x + float32(i*(pip+gap)), Y: 8, W: pip, H: pip, Color: colorLife})
	}

	if s.Phase != survival.PhaseRunning {
		out = append(out, rect{W: float32(s.ArenaW), H: float32(s.ArenaH), Color: colorShade})
	}
	return out
}

// hudText returns the left and right HUD strings.
func hudText(s survival.Snapshot) (left, right string) {
	return fmt.Sprintf("Score: %.1f", s.Score),
		fmt.Sprintf("x%.2f  Best: %.1f", s.Multiplier, s.HighScore)
}

// overlayText returns the centered message lines for non-running phases.
func overlayText(s survival.Snapshot, paused bool) []string {
	switch {
	case paused:
		return []string{"PAUSED", "", "Press P to resume"}
	case s.Phase == survival.PhaseNotStarted:
		return []string{"SURVIVOR", "", "Dodge the spikes. Grab hearts.", "Click, tap or press Space to start"}
	case s.Phase == survival.PhaseGameOver:
		return []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Survived %.1fs  Best %.1fs", s.Score, math.Max(s.Score, s.HighScore)),
			"Click, tap or press R to restart",
		}
	}
	return nil
}
