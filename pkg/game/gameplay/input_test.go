package gameplay

import (
	"testing"

	engineinput "liftoff/pkg/engine/input"
	"liftoff/pkg/game/state"
)

// recordingClock counts pause/resume calls in place of the real ticker.
type recordingClock struct {
	pauses  int
	resumes int
}

func (c *recordingClock) Pause()  { c.pauses++ }
func (c *recordingClock) Resume() { c.resumes++ }

func TestOpenMenuPausesTheClock(t *testing.T) {
	s := state.NewSession()
	clk := &recordingClock{}

	// The queued OpenMenu intent dismisses the menu straight away.
	intents := make(chan engineinput.Intent, 1)
	intents <- engineinput.Intent{Action: engineinput.ActionOpenMenu}

	ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionOpenMenu}, intents, clk)

	if clk.pauses != 1 {
		t.Errorf("got %d pauses, want 1: the tick must not run behind the menu", clk.pauses)
	}
	if clk.resumes != 1 {
		t.Errorf("got %d resumes, want 1 after the menu closes", clk.resumes)
	}
}

func TestOpenMenuOnLockedSessionStaysPaused(t *testing.T) {
	s := state.NewSession()
	s.Won = true
	s.Locked = true
	clk := &recordingClock{}

	intents := make(chan engineinput.Intent, 1)
	intents <- engineinput.Intent{Action: engineinput.ActionOpenMenu}

	ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionOpenMenu}, intents, clk)

	if clk.resumes != 0 {
		t.Errorf("got %d resumes, want 0 while the session is locked", clk.resumes)
	}
}

func TestProcessIntentModeAndPress(t *testing.T) {
	s := state.NewSession()

	ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionRefuelMode}, nil, nil)
	if s.Mode != state.ModeRefuel {
		t.Errorf("got mode %v, want Refuel", s.Mode)
	}

	fx := ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionPress}, nil, nil)
	if len(fx) != 1 {
		t.Errorf("got %d effects from a refuel press, want 1", len(fx))
	}
	if s.Fuel != 100 {
		t.Errorf("got fuel %v, want 100 (clamped)", s.Fuel)
	}
}
