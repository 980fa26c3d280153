package core

// Action is a semantic input action, abstracted from physical key presses
// and mouse buttons. The platform maps raw input to actions; the game only
// sees these.
type Action int

const (
	ActionNone      Action = iota
	ActionAnyKey           // any key with no other binding; starts a round from the menu
	ActionSteerBlue        // A - toggle the blue car's lane
	ActionSteerRed         // D - toggle the red car's lane
	ActionRestart          // R - restart from the death screen
	ActionHome             // H - back to the menu from the death screen
	ActionBack             // Escape - abandon the round
	ActionClick            // left mouse click, carries logical coordinates
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAnyKey:
		return "AnyKey"
	case ActionSteerBlue:
		return "SteerBlue"
	case ActionSteerRed:
		return "SteerRed"
	case ActionRestart:
		return "Restart"
	case ActionHome:
		return "Home"
	case ActionBack:
		return "Back"
	case ActionClick:
		return "Click"
	default:
		return "Unknown"
	}
}

// Event is the single input event a simulation step consumes. At most one
// event is processed per frame; a burst of input within one frame is
// throttled to the first event by the platform, not queued.
type Event struct {
	Action Action
	X, Y   int // Logical viewport coordinates, valid for ActionClick only
}

// NoEvent is the zero event, consumed by frames without input.
var NoEvent = Event{}
