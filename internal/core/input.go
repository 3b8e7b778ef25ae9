package core

// Action represents a semantic game command, abstracted from physical key presses.
// The presentation layer maps keys to actions; the engine only sees actions.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left, H
	ActionMoveRight        // Right, L
	ActionSoftDrop         // Down, J - one row
	ActionHardDrop         // Space - drop to rest and lock
	ActionRotate           // Up, K, X - clockwise
	ActionPause            // P - pause/resume toggle
	ActionResume           // reported by a resume; input uses ActionPause
	ActionStart            // Enter, S
	ActionReset            // R
	ActionQuit             // Q, Ctrl+C - handled by the platform
)

// String returns the command name used in logs.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMoveLeft:
		return "move_left"
	case ActionMoveRight:
		return "move_right"
	case ActionSoftDrop:
		return "soft_drop"
	case ActionHardDrop:
		return "hard_drop"
	case ActionRotate:
		return "rotate_clockwise"
	case ActionPause:
		return "pause_toggle"
	case ActionResume:
		return "resume"
	case ActionStart:
		return "start"
	case ActionReset:
		return "reset"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}
