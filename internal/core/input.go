package core

import "sync"

// Action represents a semantic menu action, abstracted from physical key presses.
// Gameplay itself only consumes pointer taps; actions drive the menus and
// screen transitions around it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move selection up
	ActionDown           // S, Down arrow - move selection down
	ActionTap            // Space - tap at the keyboard cursor
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - start again after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
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
	case ActionTap:
		return "Tap"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerSignal is the input a variant sees for one frame: at most one tap,
// in logical coordinates.
type PointerSignal struct {
	X, Y   float64
	Tapped bool
}

// Pos returns the tap position as a vector.
func (p PointerSignal) Pos() Vec {
	return Vec{X: p.X, Y: p.Y}
}

// Tap builds a tapped signal at (x, y).
func Tap(x, y float64) PointerSignal {
	return PointerSignal{X: x, Y: y, Tapped: true}
}

// TapBuffer collects pointer presses between frames. Several presses in one
// frame collapse into one; the last position wins.
type TapBuffer struct {
	mu      sync.Mutex
	pending PointerSignal
}

// Push records a press at logical (x, y).
func (b *TapBuffer) Push(x, y float64) {
	b.mu.Lock()
	b.pending = Tap(x, y)
	b.mu.Unlock()
}

// Take returns the buffered signal and clears it.
func (b *TapBuffer) Take() PointerSignal {
	b.mu.Lock()
	defer b.mu.Unlock()
	p := b.pending
	b.pending = PointerSignal{}
	return p
}
