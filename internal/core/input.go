package core

// Action is a discrete player intent, abstracted from physical keys.
// Horizontal motion is continuous and carried separately on InputFrame.
type Action int

const (
	ActionNone        Action = iota
	ActionTogglePause        // P, F, Space
	ActionReset              // R
	ActionQuit               // Esc, Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTogglePause:
		return "TogglePause"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects everything the player did between two ticks.
// Frontends fill it as events arrive and the game consumes it once per tick.
type InputFrame struct {
	// Actions records which discrete actions fired this frame.
	// Pause is a toggle, so it is counted rather than flagged.
	Actions map[Action]int

	// MotionX is the signed horizontal pointer motion accumulated since the
	// last poll, in reference pixels (1000 per field width).
	MotionX float64

	// StepX is the signed keyboard paddle step accumulated this frame, in
	// reference pixels. Unlike MotionX it is applied as-is, not per second.
	StepX float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]int),
	}
}

// Set records one occurrence of an action.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

// Has returns true if the given action fired at least once this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how many times the action fired this frame.
func (f InputFrame) Count(a Action) int {
	if f.Actions == nil {
		return 0
	}
	return f.Actions[a]
}

// MoveRelative accumulates horizontal pointer motion.
func (f *InputFrame) MoveRelative(dx float64) {
	f.MotionX += dx
}

// Nudge accumulates a discrete keyboard paddle step.
func (f *InputFrame) Nudge(dx float64) {
	f.StepX += dx
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.MotionX = 0
	f.StepX = 0
}
