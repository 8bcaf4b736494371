package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-survivor/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w", runeKey('w'), core.ActionUp, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPrimary, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestEnterStartsRun(t *testing.T) {
	frame := core.NewInputFrame()
	NewKeyMapper().MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEnter}, &frame)
	if !frame.Has(core.ActionPrimary) || !frame.Has(core.ActionConfirm) {
		t.Errorf("enter should set primary and confirm, got %v", frame.Actions)
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.MouseMsg
		ok   bool
		want core.Pointer
	}{
		{
			"left press",
			tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			true, core.Pointer{X: 3.5, Y: 4.5, Down: true, Pressed: true},
		},
		{
			"drag",
			tea.MouseMsg{X: 10, Y: 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
			true, core.Pointer{X: 10.5, Y: 2.5, Down: true},
		},
		{
			"release",
			tea.MouseMsg{X: 10, Y: 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone},
			true, core.Pointer{X: 10.5, Y: 2.5, Released: true},
		},
		{
			"right press",
			tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
			false, core.Pointer{},
		},
		{
			"wheel",
			tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
			false, core.Pointer{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := km.MapMouse(tc.msg)
			if ok != tc.ok {
				t.Fatalf("ok = %v, expected %v", ok, tc.ok)
			}
			if ok && p != tc.want {
				t.Errorf("pointer = %+v, expected %+v", p, tc.want)
			}
		})
	}
}

func TestMergePointer(t *testing.T) {
	press := core.Pointer{X: 1, Y: 1, Down: true, Pressed: true}
	drag := core.Pointer{X: 5, Y: 5, Down: true}
	release := core.Pointer{X: 6, Y: 6, Released: true}

	merged, deferred := MergePointer(nil, press)
	if merged != press || deferred != nil {
		t.Errorf("first sample should pass through, got %+v", merged)
	}

	merged, deferred = MergePointer(&press, drag)
	if !merged.Pressed || merged.X != 5 || deferred != nil {
		t.Errorf("press then drag = %+v, expected pressed at the drag position", merged)
	}

	merged, deferred = MergePointer(&press, release)
	if !merged.Pressed || merged.Released || deferred == nil || !deferred.Released {
		t.Errorf("press then release = %+v deferred %+v", merged, deferred)
	}

	merged, deferred = MergePointer(&drag, release)
	if !merged.Released || deferred != nil {
		t.Errorf("drag then release = %+v", merged)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
	}
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("%q -> %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}
