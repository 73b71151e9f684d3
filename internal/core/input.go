package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move paddle left
	ActionRight          // Right arrow, D - move paddle right
	ActionConfirm        // Space, Enter - start a round
	ActionBack           // Esc, B - back to the picker
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is the mouse/touch state for one frame, in terminal cells.
type Pointer struct {
	X, Y    int
	Moved   bool // A position was reported this frame
	Pressed bool // A button press or tap happened this frame
}

// InputFrame is the input snapshot for a single simulation tick.
// The platform fills it from key and mouse messages, the game reads it,
// and the platform clears it before the next tick.
type InputFrame struct {
	Actions map[Action]bool
	Pointer Pointer
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

// MovePointer records a pointer position.
func (f *InputFrame) MovePointer(x, y int) {
	f.Pointer.X = x
	f.Pointer.Y = y
	f.Pointer.Moved = true
}

// PressPointer records a pointer press at a position.
func (f *InputFrame) PressPointer(x, y int) {
	f.MovePointer(x, y)
	f.Pointer.Pressed = true
}

// Clear resets all actions and pointer events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = Pointer{}
}
