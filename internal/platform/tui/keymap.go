package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shop-escalation/internal/core"
)

// DefaultHoldTicks is how long one key press keeps a movement or fire intent
// alive. Terminals report repeats, not releases, so a held key refreshes it.
const DefaultHoldTicks = 8

// KeyMapper translates Bubble Tea key messages to game actions and turns them
// into one input frame per tick.
type KeyMapper struct {
	holdTicks int
	left      int
	right     int
	shoot     int
	pending   core.InputFrame
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		holdTicks: DefaultHoldTicks,
		pending:   core.NewInputFrame(),
	}
}

// MapKey translates a key message to an action. Digit keys return ActionNone
// with the one-based shop slot.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, slot int, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c":
		return core.ActionQuit, 0, true
	case "left", "a":
		return core.ActionLeft, 0, false
	case "right", "d":
		return core.ActionRight, 0, false
	case " ":
		return core.ActionShoot, 0, false
	case "enter":
		return core.ActionStart, 0, false
	case "p":
		return core.ActionPause, 0, false
	case "r":
		return core.ActionRestart, 0, false
	case "e":
		return core.ActionInfLives, 0, false
	case "q":
		return core.ActionDoubleXP, 0, false
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return core.ActionNone, int(key[0] - '0'), false
	}

	return core.ActionNone, 0, false
}

// Press records a key for the next frame. Returns true if the key was a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg) bool {
	action, slot, isQuit := km.MapKey(msg)
	if isQuit {
		return true
	}
	if slot > 0 {
		km.pending.Buy(slot)
		return false
	}

	switch action {
	case core.ActionLeft:
		km.left, km.right = km.holdTicks, 0
	case core.ActionRight:
		km.right, km.left = km.holdTicks, 0
	case core.ActionShoot:
		km.shoot = km.holdTicks
	case core.ActionStart:
		// Enter leaves both the title screen and the shop.
		km.pending.Set(core.ActionStart)
		km.pending.Set(core.ActionConfirm)
	case core.ActionNone:
	default:
		km.pending.Set(action)
	}
	return false
}

// Frame returns the input for one tick: one-shot presses since the last frame
// plus any movement or fire still being held.
func (km *KeyMapper) Frame() core.InputFrame {
	frame := km.pending.Clone()
	km.pending.Clear()

	if km.left > 0 {
		frame.Set(core.ActionLeft)
		km.left--
	}
	if km.right > 0 {
		frame.Set(core.ActionRight)
		km.right--
	}
	if km.shoot > 0 {
		frame.Set(core.ActionShoot)
		km.shoot--
	}
	return frame
}

// Release drops every held intent, used when the game leaves play.
func (km *KeyMapper) Release() {
	km.left, km.right, km.shoot = 0, 0, 0
	km.pending.Clear()
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
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
