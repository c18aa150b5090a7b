package core

// Action represents a semantic game action, abstracted from whatever drives the player.
// Keyboards and autopilots both produce actions.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // steer up
	ActionDown             // steer down
	ActionLeft             // steer left
	ActionRight            // steer right
	ActionRestart          // restart after game over
	ActionPause            // pause/unpause
	ActionSkipWave         // debug: force the next wave
	ActionSkipLevel        // debug: finish the current level
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionSkipWave:
		return "SkipWave"
	case ActionSkipLevel:
		return "SkipLevel"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for the player during one simulation tick.
// It contains all actions that were triggered during this frame.
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

// Heading returns the steering direction encoded by the directional actions.
// Opposing actions cancel out. ok is false when no directional action is set.
func (f InputFrame) Heading() (dir Vec, ok bool) {
	if f.Has(ActionLeft) {
		dir.X--
		ok = true
	}
	if f.Has(ActionRight) {
		dir.X++
		ok = true
	}
	if f.Has(ActionUp) {
		dir.Y--
		ok = true
	}
	if f.Has(ActionDown) {
		dir.Y++
		ok = true
	}
	return dir, ok
}

// Steer builds an input frame whose directional actions point roughly along dir.
// Components smaller than deadzone in magnitude are ignored.
func Steer(dir Vec, deadzone float64) InputFrame {
	in := NewInputFrame()
	switch {
	case dir.X < -deadzone:
		in.Set(ActionLeft)
	case dir.X > deadzone:
		in.Set(ActionRight)
	}
	switch {
	case dir.Y < -deadzone:
		in.Set(ActionUp)
	case dir.Y > deadzone:
		in.Set(ActionDown)
	}
	return in
}
