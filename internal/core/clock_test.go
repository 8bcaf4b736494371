package core

import (
	"testing"
	"time"
)

func TestFrameClock(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var c FrameClock

	if dt := c.Tick(base); dt != 0 {
		t.Errorf("first tick should be 0, got %f", dt)
	}
	if dt := c.Tick(base.Add(16 * time.Millisecond)); dt != 0.016 {
		t.Errorf("second tick = %f, expected 0.016", dt)
	}
	if dt := c.Tick(base); dt != 0 {
		t.Errorf("backwards timestamp should yield 0, got %f", dt)
	}

	c.Reset()
	if dt := c.Tick(base.Add(time.Hour)); dt != 0 {
		t.Errorf("tick after reset should be 0, got %f", dt)
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.SetPointer(Pointer{X: 3, Y: 4, Down: true})

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionPause) {
		t.Error("clone should keep actions after original is cleared")
	}
	if c.Pointer == nil || c.Pointer.X != 3 || !c.Pointer.Down {
		t.Errorf("clone pointer = %+v", c.Pointer)
	}
	if f.Pointer != nil || f.Has(ActionPause) {
		t.Error("Clear should drop actions and pointer")
	}
}

func TestCueString(t *testing.T) {
	tests := []struct {
		cue  Cue
		want string
	}{
		{CueHit, "hit"},
		{CueGameOver, "game_over"},
		{Cue(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.cue.String(); got != tc.want {
			t.Errorf("Cue(%d).String() = %q, expected %q", tc.cue, got, tc.want)
		}
	}
}
