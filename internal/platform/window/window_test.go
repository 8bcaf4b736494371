package window

import (
	"image/color"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/games/survival"
)

func TestPointerEdge(t *testing.T) {
	up := contact{X: 10, Y: 20}
	down := contact{Down: true, X: 30, Y: 40}
	touch := contact{Down: true, X: 5, Y: 6, Touch: true}

	tests := []struct {
		name      string
		prev, cur contact
		ok        bool
		want      core.Pointer
	}{
		{"idle", up, up, false, core.Pointer{}},
		{"press", up, down, true, core.Pointer{X: 30, Y: 40, Down: true, Pressed: true}},
		{"hold", down, down, true, core.Pointer{X: 30, Y: 40, Down: true}},
		{"release keeps last position", down, up, true, core.Pointer{X: 30, Y: 40, Released: true}},
		{"touch press", up, touch, true, core.Pointer{X: 5, Y: 6, Down: true, Pressed: true, Touch: true}},
		{"touch lift", touch, contact{}, true, core.Pointer{X: 5, Y: 6, Released: true, Touch: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := pointerEdge(tc.prev, tc.cur)
			if ok != tc.ok {
				t.Fatalf("ok = %v, expected %v", ok, tc.ok)
			}
			if ok && p != tc.want {
				t.Errorf("pointer = %+v, expected %+v", p, tc.want)
			}
		})
	}
}

func TestRepeating(t *testing.T) {
	var fired []int
	for d := 0; d <= 27; d++ {
		if repeating(d) {
			fired = append(fired, d)
		}
	}
	want := []int{1, 15, 19, 23, 27}
	if len(fired) != len(want) {
		t.Fatalf("fired on %v, expected %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("fired on %v, expected %v", fired, want)
		}
	}
}

func sampleSnapshot() survival.Snapshot {
	return survival.Snapshot{
		ArenaW:       800,
		ArenaH:       600,
		Player:       core.Box{X: 360, Y: 252.5, W: 80, H: 95},
		Hazards:      []core.Box{{X: 10, Y: 10, W: 40, H: 40}, {X: 100, Y: 100, W: 40, H: 40}},
		Hunter:       core.Box{X: -200, Y: 0, W: 130, H: 140},
		Pickup:       core.Box{X: 300, Y: 300, W: 70, H: 70},
		PickupActive: true,
		Lives:        3,
		Phase:        survival.PhaseRunning,
		Multiplier:   1,
	}
}

func countColor(rs []rect, c color.RGBA) int {
	n := 0
	for _, r := range rs {
		if r.Color == c {
			n++
		}
	}
	return n
}

func TestDrawList(t *testing.T) {
	s := sampleSnapshot()
	rs := drawList(s, 0)

	if rs[0].Color != colorBackground || rs[0].W != 800 {
		t.Errorf("first rect should clear the arena, got %+v", rs[0])
	}
	if n := countColor(rs, colorPlayer); n != 1 {
		t.Errorf("player rects = %d", n)
	}
	if n := countColor(rs, colorHunter); n != 0 {
		t.Error("inactive hunter should not be drawn")
	}
	if n := countColor(rs, colorPickup); n != 1 {
		t.Errorf("pickup rects = %d", n)
	}
	// Hazards and life pips share a color.
	if n := countColor(rs, colorHazard); n != len(s.Hazards)+s.Lives {
		t.Errorf("hazard+life rects = %d", n)
	}
	if n := countColor(rs, colorShade); n != 0 {
		t.Error("running game should not be shaded")
	}
}

func TestDrawListFlickerAndOverlay(t *testing.T) {
	s := sampleSnapshot()
	s.Invincible = true
	if countColor(drawList(s, 0), colorPlayer) != 1 || countColor(drawList(s, 4), colorPlayer) != 0 {
		t.Error("invincible player should blink every four frames")
	}

	s.Phase = survival.PhaseGameOver
	s.Score = 12.3
	s.HighScore = 10
	if countColor(drawList(s, 0), colorShade) != 1 {
		t.Error("game over should shade the arena")
	}
	lines := overlayText(s, false)
	if lines[0] != "GAME OVER" || !strings.Contains(lines[2], "Best 12.3") {
		t.Errorf("overlay = %q", lines)
	}
	if overlayText(s, true)[0] != "PAUSED" {
		t.Error("pause overlay should win")
	}

	s.Phase = survival.PhaseRunning
	if overlayText(s, false) != nil {
		t.Error("running game has no overlay")
	}
	left, right := hudText(s)
	if left != "Score: 12.3" {
		t.Errorf("left HUD = %q", left)
	}
	if !strings.HasPrefix(right, "x1.00") {
		t.Errorf("right HUD = %q", right)
	}
}
