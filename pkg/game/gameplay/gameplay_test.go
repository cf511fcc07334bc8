package gameplay

import (
	"strings"
	"testing"

	"liftoff/pkg/game/effect"
	"liftoff/pkg/game/state"
)

func newTestSession(t *testing.T) *state.Session {
	t.Helper()
	return state.NewSession()
}

func TestBuildSessionInitialState(t *testing.T) {
	s := BuildSession()

	if s.Mode != state.ModeIgnite {
		t.Errorf("got mode %v, want Ignite", s.Mode)
	}
	if s.Power != 0 {
		t.Errorf("got power %v, want 0", s.Power)
	}
	if s.Fuel != 100 {
		t.Errorf("got fuel %v, want 100", s.Fuel)
	}
	if s.ClearProgress != 0 {
		t.Errorf("got clear progress %v, want 0", s.ClearProgress)
	}
	if s.Won || s.Locked {
		t.Errorf("got won=%v locked=%v, want both false", s.Won, s.Locked)
	}
	if len(s.Hints) == 0 {
		t.Error("expected hints to be seeded")
	}
}

func TestBuildSessionMessagesAreFullyFormatted(t *testing.T) {
	s := BuildSession()

	var found bool
	for _, msg := range s.Messages {
		if strings.Contains(msg, "%") {
			t.Errorf("message %q has an unexpanded format verb", msg)
		}
		if strings.Contains(msg, "Hold power above 95") {
			found = true
		}
	}
	if !found {
		t.Errorf("no message states the hold threshold as a whole number: %v", s.Messages)
	}
}

func TestIgnitePressBurnsFuelForPower(t *testing.T) {
	s := newTestSession(t)

	fx := Press(s)

	if s.Power != 5 {
		t.Errorf("got power %v, want 5", s.Power)
	}
	if s.Fuel != 95 {
		t.Errorf("got fuel %v, want 95", s.Fuel)
	}

	flames, shakes := countPressEffects(fx)
	if flames != 3 {
		t.Errorf("got %d flames, want 3", flames)
	}
	if shakes != 1 {
		t.Errorf("got %d shakes, want 1", shakes)
	}
}

func TestIgnitePressOnEmptyTank(t *testing.T) {
	s := newTestSession(t)
	s.Fuel = 0

	fx := Press(s)

	if s.Power != 2 {
		t.Errorf("got power %v, want 2 (starved gain)", s.Power)
	}
	if s.Fuel != 0 {
		t.Errorf("got fuel %v, want 0", s.Fuel)
	}

	flames, _ := countPressEffects(fx)
	if flames != 1 {
		t.Errorf("got %d flames, want 1 on an empty tank", flames)
	}
}

func TestIgnitePressBurningLastFuel(t *testing.T) {
	s := newTestSession(t)
	s.Fuel = 5

	fx := Press(s)

	// The tank had fuel before the press, so the full gain applies, but the
	// flame reflects the now-empty tank.
	if s.Power != 5 {
		t.Errorf("got power %v, want 5", s.Power)
	}
	if s.Fuel != 0 {
		t.Errorf("got fuel %v, want 0", s.Fuel)
	}

	flames, _ := countPressEffects(fx)
	if flames != 1 {
		t.Errorf("got %d flames, want 1 after burning the last fuel", flames)
	}
}

func TestIgnitePressWithFractionalFuel(t *testing.T) {
	s := newTestSession(t)
	s.Fuel = 3

	Press(s)

	if s.Fuel != 0 {
		t.Errorf("got fuel %v, want 0 (clamped)", s.Fuel)
	}
	if s.Power != 5 {
		t.Errorf("got power %v, want 5", s.Power)
	}
}

func TestRefuelPress(t *testing.T) {
	s := newTestSession(t)
	s.Mode = state.ModeRefuel
	s.Fuel = 40

	fx := Press(s)

	if s.Fuel != 55 {
		t.Errorf("got fuel %v, want 55", s.Fuel)
	}

	if len(fx) != 1 {
		t.Fatalf("got %d effects, want 1", len(fx))
	}
	puff, ok := fx[0].(effect.FuelPuff)
	if !ok {
		t.Fatalf("got effect %T, want FuelPuff", fx[0])
	}
	if puff.Count != 2 {
		t.Errorf("got puff count %d, want 2", puff.Count)
	}
}

func TestRefuelPressClampsAtFull(t *testing.T) {
	s := newTestSession(t)
	s.Mode = state.ModeRefuel
	s.Fuel = 95

	Press(s)

	if s.Fuel != 100 {
		t.Errorf("got fuel %v, want 100", s.Fuel)
	}
}

func TestPressClampsPowerAtFull(t *testing.T) {
	s := newTestSession(t)
	s.Power = 98

	Press(s)

	if s.Power != 100 {
		t.Errorf("got power %v, want 100", s.Power)
	}
}

func TestTickDecaysPowerBeforeHoldCheck(t *testing.T) {
	s := newTestSession(t)

	// 99 decays to 95, which still holds the threshold.
	s.Power = 99
	Tick(s)
	if s.Power != 95 {
		t.Errorf("got power %v, want 95", s.Power)
	}
	if s.ClearProgress != 20 {
		t.Errorf("got clear progress %v, want 20", s.ClearProgress)
	}

	// 98 decays to 94, which does not.
	s = newTestSession(t)
	s.Power = 98
	s.ClearProgress = 60
	Tick(s)
	if s.Power != 94 {
		t.Errorf("got power %v, want 94", s.Power)
	}
	if s.ClearProgress != 40 {
		t.Errorf("got clear progress %v, want 40", s.ClearProgress)
	}
}

func TestTickClampsClearProgressAtZero(t *testing.T) {
	s := newTestSession(t)
	s.Power = 10

	Tick(s)

	if s.ClearProgress != 0 {
		t.Errorf("got clear progress %v, want 0", s.ClearProgress)
	}
}

func TestWinFiresOnceAndLocks(t *testing.T) {
	s := newTestSession(t)
	s.Power = 100
	s.ClearProgress = 80

	fx := Tick(s)

	if !s.Won {
		t.Error("expected Won after reaching full clear progress")
	}
	if !s.Locked {
		t.Error("expected Locked after the win")
	}
	if s.ClearProgress != 100 {
		t.Errorf("got clear progress %v, want 100", s.ClearProgress)
	}

	if len(fx) != 1 {
		t.Fatalf("got %d effects, want 1", len(fx))
	}
	win, ok := fx[0].(effect.WinSequence)
	if !ok {
		t.Fatalf("got effect %T, want WinSequence", fx[0])
	}
	if win.MessageDelay != effect.SuccessMessageDelay {
		t.Errorf("got message delay %v, want %v", win.MessageDelay, effect.SuccessMessageDelay)
	}
}

func TestLockedSessionIgnoresPressesAndTicks(t *testing.T) {
	s := newTestSession(t)
	s.Power = 100
	s.ClearProgress = 80
	Tick(s)

	power, fuel, ticks, presses := s.Power, s.Fuel, s.TickCount, s.PressCount

	if fx := Press(s); fx != nil {
		t.Errorf("got %d effects from a locked press, want none", len(fx))
	}
	if fx := Tick(s); fx != nil {
		t.Errorf("got %d effects from a locked tick, want none", len(fx))
	}

	if s.Power != power || s.Fuel != fuel {
		t.Errorf("locked session mutated: power %v->%v fuel %v->%v", power, s.Power, fuel, s.Fuel)
	}
	if s.TickCount != ticks || s.PressCount != presses {
		t.Error("locked session still counted operations")
	}
}

func TestSetModeAllowedWhileLocked(t *testing.T) {
	s := newTestSession(t)
	s.Won = true
	s.Locked = true

	SetMode(s, state.ModeRefuel)

	if s.Mode != state.ModeRefuel {
		t.Errorf("got mode %v, want Refuel", s.Mode)
	}
}

func TestSetModeSameModeIsSilent(t *testing.T) {
	s := newTestSession(t)
	s.ClearMessages()

	SetMode(s, state.ModeIgnite)

	if len(s.Messages) != 0 {
		t.Errorf("got %d messages, want 0 for a no-op mode switch", len(s.Messages))
	}
}

func TestRestartUnlocksAndResets(t *testing.T) {
	s := newTestSession(t)
	s.Power = 100
	s.ClearProgress = 80
	Tick(s)

	Restart(s)

	if s.Won || s.Locked {
		t.Errorf("got won=%v locked=%v after restart, want both false", s.Won, s.Locked)
	}
	if s.Power != 0 || s.Fuel != 100 || s.ClearProgress != 0 {
		t.Errorf("got power=%v fuel=%v clear=%v, want 0/100/0", s.Power, s.Fuel, s.ClearProgress)
	}
	if s.Mode != state.ModeIgnite {
		t.Errorf("got mode %v, want Ignite", s.Mode)
	}

	// A fresh attempt can win again.
	s.Power = 100
	s.ClearProgress = 80
	fx := Tick(s)
	if len(fx) != 1 {
		t.Errorf("got %d effects, want a second WinSequence after restart", len(fx))
	}
}

// TestFullLaunchSequence plays a complete winning session: pump the meter to
// full, then keep it topped up against decay until the canopy clears.
func TestFullLaunchSequence(t *testing.T) {
	s := newTestSession(t)

	// 20 ignite presses empty the tank and fill the power meter.
	for i := 0; i < 20; i++ {
		Press(s)
	}
	if s.Power != 100 {
		t.Fatalf("got power %v after 20 presses, want 100", s.Power)
	}
	if s.Fuel != 0 {
		t.Fatalf("got fuel %v after 20 presses, want 0", s.Fuel)
	}

	// First tick: decay to 96, still holding, first slice of progress.
	Tick(s)
	if s.Power != 96 {
		t.Fatalf("got power %v, want 96", s.Power)
	}
	if s.ClearProgress != 20 {
		t.Fatalf("got clear progress %v, want 20", s.ClearProgress)
	}

	// Four more rounds: two starved presses top power back to 100 (clamped),
	// each tick then lands at 96 and clears another slice.
	for round := 0; round < 4; round++ {
		Press(s)
		Press(s)
		Tick(s)
	}

	if !s.Won {
		t.Errorf("expected a win, got clear progress %v", s.ClearProgress)
	}
	if s.TickCount != 5 {
		t.Errorf("got %d ticks, want 5", s.TickCount)
	}
}

// countPressEffects tallies the cosmetic effects of an ignite press.
func countPressEffects(fx []effect.Effect) (flames int, shakes int) {
	for _, e := range fx {
		switch eff := e.(type) {
		case effect.FlameBurst:
			flames = eff.Count
		case effect.Shake:
			shakes++
		}
	}
	return flames, shakes
}
