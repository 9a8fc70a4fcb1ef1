package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionP1Up           // W - move left paddle up
	ActionP1Down         // S - move left paddle down
	ActionP2Up           // Up arrow - move right paddle up
	ActionP2Down         // Down arrow - move right paddle down
	ActionPause          // P, Space - pause/unpause
	ActionRestart        // R - start a fresh match
	ActionHelp           // ? - toggle full help
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionP1Up:
		return "P1Up"
	case ActionP1Down:
		return "P1Down"
	case ActionP2Up:
		return "P2Up"
	case ActionP2Down:
		return "P2Down"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the keyboard actions triggered between two ticks.
// Repeated presses of the same action within one frame are counted.
type InputFrame struct {
	Actions map[Action]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]int),
	}
}

// Set records one occurrence of an action for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

// Count returns how many times the action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	if f.Actions == nil {
		return 0
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
