package core

import "sync/atomic"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - run left (held)
	ActionRight          // D, Right arrow - run right (held)
	ActionJump           // Space, W, Up - jump (double jump allowed)
	ActionPause          // P - pause/unpause game
	ActionRestart        // R key - restart after game over or win
	ActionQuit           // Q, Ctrl+C - leave the session
	ActionUp             // menu navigation
	ActionDown           // menu navigation
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - back to menu
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// Size is a width/height pair in world units.
type Size struct {
	W, H int
}

// InputFrame represents the input state consumed by one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were active this frame.
	Actions map[Action]bool

	// Viewport is non-nil when the visible area changed since the last frame.
	Viewport *Size
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
	f.Viewport = nil
}

// Intents is the only state shared between the input side and the
// simulation goroutine. Movement is level-triggered; jump, pause and
// restart are edge-triggered and consumed once by Take.
// The zero value is ready to use.
type Intents struct {
	left    atomic.Bool
	right   atomic.Bool
	jump    atomic.Bool
	pause   atomic.Bool
	restart atomic.Bool
	quit    atomic.Bool

	viewport atomic.Pointer[Size]
}

// SetLeft sets whether the player is holding left.
func (in *Intents) SetLeft(held bool) {
	in.left.Store(held)
}

// SetRight sets whether the player is holding right.
func (in *Intents) SetRight(held bool) {
	in.right.Store(held)
}

// Press records an edge-triggered action. Movement actions are treated
// as holds; use SetLeft/SetRight to release them.
func (in *Intents) Press(a Action) {
	switch a {
	case ActionLeft:
		in.left.Store(true)
	case ActionRight:
		in.right.Store(true)
	case ActionJump:
		in.jump.Store(true)
	case ActionPause:
		in.pause.Store(true)
	case ActionRestart:
		in.restart.Store(true)
	case ActionQuit:
		in.quit.Store(true)
	}
}

// Resize queues a viewport change for the next tick.
func (in *Intents) Resize(w, h int) {
	in.viewport.Store(&Size{W: w, H: h})
}

// Quitting reports whether quit was requested. It is not consumed.
func (in *Intents) Quitting() bool {
	return in.quit.Load()
}

// Take builds the frame for one tick, consuming every edge-triggered flag.
func (in *Intents) Take() InputFrame {
	f := NewInputFrame()
	if in.left.Load() {
		f.Set(ActionLeft)
	}
	if in.right.Load() {
		f.Set(ActionRight)
	}
	if in.jump.Swap(false) {
		f.Set(ActionJump)
	}
	if in.pause.Swap(false) {
		f.Set(ActionPause)
	}
	if in.restart.Swap(false) {
		f.Set(ActionRestart)
	}
	f.Viewport = in.viewport.Swap(nil)
	return f
}
