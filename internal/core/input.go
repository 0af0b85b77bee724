package core

// Action is a discrete command, abstracted from physical keys or pointer regions.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow, A, ◀ button
	ActionRight             // Right arrow, D, ▶ button
	ActionJump              // Up arrow, W, Space, ▲ button
	ActionPause             // P, Esc, Ⅱ button
	ActionRestart           // R
	ActionQuit              // Q, Ctrl+C
	ActionScreenshot        // Ctrl+S
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
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// ControlState is the normalized movement intent for one frame.
// It is overwritten every frame by the input adapter and only read by the game.
type ControlState struct {
	MoveLeft      bool
	MoveRight     bool
	JumpRequested bool
}

// Horizontal returns -1, 0 or +1 for the requested horizontal direction.
func (c ControlState) Horizontal() float64 {
	var move float64
	if c.MoveLeft {
		move--
	}
	if c.MoveRight {
		move++
	}
	return move
}

// Neutral reports whether no control is active.
func (c ControlState) Neutral() bool {
	return !c.MoveLeft && !c.MoveRight && !c.JumpRequested
}

// InputFrame is everything the platform hands to a game for one frame:
// the held controls plus the discrete commands triggered since the last frame.
type InputFrame struct {
	Control ControlState

	// Actions holds discrete commands (pause, restart) triggered this frame.
	Actions map[Action]bool

	// DT is the elapsed wall time divided by the reference frame duration.
	DT float64
}

// NewInputFrame creates an empty input frame with dt of one reference frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		DT:      1,
	}
}

// Set marks a discrete action as triggered for this frame.
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

// Clear drops all discrete actions. Held controls are left to the adapter.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
