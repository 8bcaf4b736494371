package window

import "github.com/vovakirdan/tui-survivor/internal/core"

// contact is the raw state of the mouse button or the first touch in one frame.
type contact struct {
	Down  bool
	X, Y  float64
	Touch bool
}

// pointerEdge turns two consecutive contact samples into the frame's pointer.
// ok is false when nothing is held and nothing was just released.
func pointerEdge(prev, cur contact) (p core.Pointer, ok bool) {
	switch {
	case cur.Down && !prev.Down:
		return core.Pointer{X: cur.X, Y: cur.Y, Down: true, Pressed: true, Touch: cur.Touch}, true
	case cur.Down:
		return core.Pointer{X: cur.X, Y: cur.Y, Down: true, Touch: cur.Touch}, true
	case prev.Down:
		return core.Pointer{X: prev.X, Y: prev.Y, Released: true, Touch: prev.Touch}, true
	}
	return core.Pointer{}, false
}

// Held direction keys nudge once on press, then repeat after a short delay.
const (
	repeatDelay    = 15 // frames before auto-repeat starts
	repeatInterval = 4  // frames between repeats
)

// repeating reports whether a key held for d frames fires this frame.
func repeating(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}
