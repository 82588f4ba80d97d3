package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, h, a - move one tile left
	ActionUp             // Up arrow, k, w - move one tile up
	ActionRight          // Right arrow, l, d - move one tile right
	ActionDown           // Down arrow, j, s - move one tile down
	ActionConfirm        // Enter, Space - start/replay from an overlay
	ActionRestart        // R key - replay after game over
	ActionPause          // P key - pause/unpause game
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
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

// InputFrame represents the input state for the player during one simulation tick.
// It contains all actions that were triggered during this frame, in order,
// plus the last pointer click if there was one.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Moves keeps directional actions in arrival order, so several taps
	// between two ticks are all applied.
	Moves []Action

	// Click is the screen cell of the last pointer press, valid when Clicked is set.
	Click   Point
	Clicked bool
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
	if a.IsDirection() {
		f.Moves = append(f.Moves, a)
	}
}

// SetClick records a pointer press at the given screen cell.
func (f *InputFrame) SetClick(x, y int) {
	f.Click = Point{X: x, Y: y}
	f.Clicked = true
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
	f.Moves = f.Moves[:0]
	f.Click = Point{}
	f.Clicked = false
}

// IsDirection reports whether the action is one of the four moves.
func (a Action) IsDirection() bool {
	switch a {
	case ActionLeft, ActionUp, ActionRight, ActionDown:
		return true
	}
	return false
}
