package gameplay

import (
	"math/rand"
	"testing"

	"liftoff/pkg/game/state"
)

// checkMeterBounds fails the test if any meter has escaped [0,100].
func checkMeterBounds(t *testing.T, s *state.Session, step int) {
	t.Helper()
	for name, v := range map[string]float64{
		"power":  s.Power,
		"fuel":   s.Fuel,
		"canopy": s.ClearProgress,
	} {
		if v < state.MeterMin || v > state.MeterMax {
			t.Fatalf("step %d: %s = %v, out of [%v,%v]", step, name, v, state.MeterMin, state.MeterMax)
		}
	}
}

// TestInvariantsUnderRandomOperations drives random operation sequences and
// checks after every step that the meters stay bounded, that Won never
// reverts without a restart, and that a locked session stays frozen.
func TestInvariantsUnderRandomOperations(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		s := state.NewSession()
		wonAt := -1

		for step := 0; step < 2000; step++ {
			prePower, preFuel, preClear := s.Power, s.Fuel, s.ClearProgress

			op := rng.Intn(10)
			switch {
			case op < 5:
				Press(s)
			case op < 8:
				Tick(s)
			case op < 9:
				if rng.Intn(2) == 0 {
					SetMode(s, state.ModeIgnite)
				} else {
					SetMode(s, state.ModeRefuel)
				}
			default:
				// Restart rarely, so sessions get a chance to reach the win.
				if rng.Intn(20) == 0 {
					Restart(s)
					wonAt = -1
				}
			}

			checkMeterBounds(t, s, step)

			if s.Won && wonAt == -1 {
				wonAt = step
				if !s.Locked {
					t.Fatalf("seed %d step %d: won but not locked", seed, step)
				}
				if s.ClearProgress < state.ClearTarget {
					t.Fatalf("seed %d step %d: won at clear progress %v", seed, step, s.ClearProgress)
				}
			}
			if wonAt >= 0 && !s.Won {
				t.Fatalf("seed %d step %d: Won reverted without a restart", seed, step)
			}

			// Locked sessions must not move their meters on press or tick.
			if s.Locked && op < 8 {
				if s.Power != prePower || s.Fuel != preFuel || s.ClearProgress != preClear {
					// The locking step itself may move meters; only later
					// operations must be frozen.
					if wonAt != step {
						t.Fatalf("seed %d step %d: locked session moved meters", seed, step)
					}
				}
			}
		}
	}
}
