package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-survivor/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionPrimary, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Enter doubles as the primary action so a run can start from either key.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action == core.ActionConfirm {
		frame.Set(core.ActionPrimary)
	}
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse converts a left-button mouse message into a pointer sample in cell units.
// The pointer sits at the cell center. Other buttons report ok=false.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (p core.Pointer, ok bool) {
	p.X = float64(msg.X) + 0.5
	p.Y = float64(msg.Y) + 0.5

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return p, false
		}
		p.Down = true
		p.Pressed = true
	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return p, false
		}
		p.Down = true
	case tea.MouseActionRelease:
		p.Released = true
	default:
		return p, false
	}
	return p, true
}

// MergePointer folds a new pointer sample into the one already queued for this frame.
// A press that arrives before the frame is stepped is never lost to a later motion
// sample. A release in the same frame as its press is returned as deferred so the
// press is seen first.
func MergePointer(queued *core.Pointer, next core.Pointer) (merged core.Pointer, deferred *core.Pointer) {
	if queued == nil {
		return next, nil
	}
	merged = next
	if queued.Pressed {
		merged.Pressed = true
		merged.Down = true
		if next.Released {
			merged.Released = false
			return merged, &next
		}
	}
	return merged, nil
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
