package core

// Action represents a semantic control, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionYawLeft          // A - turn left around the up axis
	ActionYawRight         // D - turn right around the up axis
	ActionPitchUp          // W - nose up around the right axis
	ActionPitchDown        // S - nose down around the right axis
	ActionRollLeft         // Q - roll counter-clockwise around forward
	ActionRollRight        // E - roll clockwise around forward
	ActionBoost            // Shift - move at boosted speed
	ActionRestart          // R - restart after game over
	ActionPause            // P, Escape - pause/unpause
	ActionQuit             // Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionYawLeft:
		return "YawLeft"
	case ActionYawRight:
		return "YawRight"
	case ActionPitchUp:
		return "PitchUp"
	case ActionPitchDown:
		return "PitchDown"
	case ActionRollLeft:
		return "RollLeft"
	case ActionRollRight:
		return "RollRight"
	case ActionBoost:
		return "Boost"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsRotation reports whether the action turns the head.
func (a Action) IsRotation() bool {
	return a >= ActionYawLeft && a <= ActionRollRight
}

// InputFrame represents the control state during one simulation tick.
// It contains all actions that were held or triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
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

// Rotating returns true if any rotation action is held.
func (f InputFrame) Rotating() bool {
	for a, on := range f.Actions {
		if on && a.IsRotation() {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
