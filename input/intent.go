package input

// Action is a semantic control the frontend can trigger
type Action uint8

const (
	ActionNone Action = iota

	// Simulation controls, sampled as held state each frame
	ActionRotateLeft
	ActionRotateRight
	ActionThrustLeft
	ActionThrustRight
	ActionWindLeft
	ActionWindRight
	ActionEmit
	ActionTogglePalette
	ActionReset

	// Frontend only
	ActionQuit
	ActionToggleMute

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:          "none",
	ActionRotateLeft:    "rotate-left",
	ActionRotateRight:   "rotate-right",
	ActionThrustLeft:    "thrust-left",
	ActionThrustRight:   "thrust-right",
	ActionWindLeft:      "wind-left",
	ActionWindRight:     "wind-right",
	ActionEmit:          "emit",
	ActionTogglePalette: "toggle-palette",
	ActionReset:         "reset",
	ActionQuit:          "quit",
	ActionToggleMute:    "toggle-mute",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// Intent is the per-frame held state of every simulation control
// Edge detection (toggle, reset) is done by the consumer against the previous frame
type Intent struct {
	RotateLeft    bool
	RotateRight   bool
	ThrustLeft    bool
	ThrustRight   bool
	WindLeft      bool
	WindRight     bool
	Emit          bool
	TogglePalette bool
	Reset         bool
}

// axis folds an opposing pair of controls into -1, 0 or +1
func axis(neg, pos bool) int {
	switch {
	case neg && !pos:
		return -1
	case pos && !neg:
		return 1
	}
	return 0
}

// Rotate returns the rotation override direction
func (in Intent) Rotate() int { return axis(in.RotateLeft, in.RotateRight) }

// Thrust returns the horizontal thrust direction
func (in Intent) Thrust() int { return axis(in.ThrustLeft, in.ThrustRight) }

// Wind returns the wind direction
func (in Intent) Wind() int { return axis(in.WindLeft, in.WindRight) }

// Set marks the control for action a; frontend-only actions are ignored
func (in *Intent) Set(a Action, held bool) {
	switch a {
	case ActionRotateLeft:
		in.RotateLeft = held
	case ActionRotateRight:
		in.RotateRight = held
	case ActionThrustLeft:
		in.ThrustLeft = held
	case ActionThrustRight:
		in.ThrustRight = held
	case ActionWindLeft:
		in.WindLeft = held
	case ActionWindRight:
		in.WindRight = held
	case ActionEmit:
		in.Emit = held
	case ActionTogglePalette:
		in.TogglePalette = held
	case ActionReset:
		in.Reset = held
	}
}
