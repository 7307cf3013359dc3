package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone             Action = iota
	ActionLeft                    // A, Left arrow - move ship left
	ActionRight                   // D, Right arrow - move ship right
	ActionShoot                   // Space - fire
	ActionStart                   // Enter - leave the title screen
	ActionConfirm                 // Enter - continue after intermission
	ActionPause                   // P - pause/unpause
	ActionRestart                 // R - restart with the same seed
	ActionInfLives                // E - activate an infinite-lives charge
	ActionDoubleXP                // Q - activate a double-xp charge
	ActionQuit                    // Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionShoot:
		return "Shoot"
	case ActionStart:
		return "Start"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionInfLives:
		return "InfLives"
	case ActionDoubleXP:
		return "DoubleXP"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// BuySlot is the one-based shop row selected this frame; 0 means none.
	BuySlot int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Buy selects a one-based shop row for this frame.
func (f *InputFrame) Buy(slot int) {
	f.BuySlot = slot
}

// BuyIndex returns the zero-based shop row, if one was selected.
func (f InputFrame) BuyIndex() (int, bool) {
	if f.BuySlot <= 0 {
		return 0, false
	}
	return f.BuySlot - 1, true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.BuySlot = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.BuySlot = f.BuySlot
	return clone
}
