package state

// Mode selects what a press does: ignite burns fuel for power, refuel pumps fuel.
type Mode int

const (
	ModeIgnite Mode = iota
	ModeRefuel
)

// String returns the display name of a mode.
func (m Mode) String() string {
	if m == ModeRefuel {
		return "Refuel"
	}
	return "Ignite"
}

// Meter bounds. Power, Fuel and ClearProgress are always clamped into this range.
const (
	MeterMin = 0.0
	MeterMax = 100.0
)

// ClearTarget is the ClearProgress value at which the canopy is fully clear
// and the launch (win) triggers.
const ClearTarget = 100.0

// Session represents one launch attempt for Liftoff.
// It is the single mutable game state: a handful of clamped meters plus the
// one-shot Won/Locked pair. The gameplay package owns all mutation; renderers
// only read it.
type Session struct {
	Mode          Mode
	Power         float64 // launch power, [0,100]
	Fuel          float64 // consumable fuel, [0,100]
	ClearProgress float64 // canopy clearing progress, [0,100]; win at 100

	Won    bool // set once, on the first tick that sees ClearProgress at target
	Locked bool // true after the win; suppresses presses and ticks until restart

	Messages []string
	Hints    []string

	// Debug counters (session report / diagnostics only, no gameplay effect)
	PressCount int
	TickCount  int
	PeakPower  float64
}

// NewSession creates a session with the initial launch-pad state.
func NewSession() *Session {
	s := &Session{}
	s.Reset()
	return s
}

// Reset returns every field to its initial value: Ignite mode, empty power,
// full fuel, frosted canopy, unlocked. Hints survive a reset; they describe
// the game, not the attempt.
func (s *Session) Reset() {
	s.Mode = ModeIgnite
	s.Power = MeterMin
	s.Fuel = MeterMax
	s.ClearProgress = MeterMin
	s.Won = false
	s.Locked = false
	s.Messages = make([]string, 0)
	s.PressCount = 0
	s.TickCount = 0
	s.PeakPower = 0
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	const maxMessages = 5
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}

// AddHint adds a hint to the session
func (s *Session) AddHint(hint string) {
	s.Hints = append(s.Hints, hint)
}

// Clamp forces a meter value into [MeterMin, MeterMax].
func Clamp(v float64) float64 {
	if v < MeterMin {
		return MeterMin
	}
	if v > MeterMax {
		return MeterMax
	}
	return v
}
