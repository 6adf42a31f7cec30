package core

// Action represents a semantic game action, abstracted from physical key
// presses, touches and clicks.
type Action int

const (
	ActionNone    Action = iota
	ActionFlap           // Space, Up, W, mouse press, touch start
	ActionRestart        // R, Enter - activate the restart affordance
	ActionQuit           // Q, Ctrl+C, Esc - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
