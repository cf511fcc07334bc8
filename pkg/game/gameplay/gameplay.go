// Package gameplay provides the core game logic for Liftoff: mode switching,
// the press (click) handler, the once-per-second tick and session restart.
package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"liftoff/pkg/game/effect"
	"liftoff/pkg/game/state"
)

// Gameplay tuning. All meter arithmetic goes through state.Clamp so every
// value stays inside [0,100] no matter what sequence of presses and ticks
// the player produces.
const (
	ignitePowerGain   = 5.0  // power per ignite press while fuel remains
	starvedPowerGain  = 2.0  // power per ignite press on an empty tank
	igniteFuelCost    = 5.0  // fuel burned per ignite press
	refuelGain        = 15.0 // fuel added per refuel press
	powerDecayPerTick = 4.0  // passive power loss, applied before the hold check
	holdThreshold     = 95.0 // power needed at tick time to keep clearing the canopy
	clearPerTick      = 20.0 // canopy progress gained (or lost) per tick
)

// BuildSession creates a new session and seeds the message log and hints.
func BuildSession() *state.Session {
	s := state.NewSession()

	logMessage(s, "%s", gotext.Get("Welcome to the launch pad."))
	logMessage(s, "%s", gotext.Get("Hold power above %.0f to clear the canopy.", holdThreshold))

	s.AddHint(gotext.Get("Ignite presses burn fuel. An empty tank still sparks, barely."))
	s.AddHint(gotext.Get("Power bleeds away every second. Keep pressing."))
	s.AddHint(gotext.Get("Switch to refuel mode before the tank runs dry."))
	s.AddHint(gotext.Get("The canopy only clears while power holds above the line."))

	return s
}

// SetMode switches the press behaviour. Allowed even after the win: the mode
// has no gameplay effect once the session is locked, so there is nothing to
// guard against.
func SetMode(s *state.Session, target state.Mode) {
	if s.Mode == target {
		return
	}
	s.Mode = target
	if target == state.ModeRefuel {
		logMessage(s, "Mode: ACTION{Refuel}")
	} else {
		logMessage(s, "Mode: ACTION{Ignite}")
	}
}

// Press handles the main click. In Ignite mode it converts fuel to power; in
// Refuel mode it pumps fuel. Returns the cosmetic effects for the renderer.
// No-op while the session is locked.
func Press(s *state.Session) []effect.Effect {
	if s.Locked {
		return nil
	}
	s.PressCount++

	if s.Mode == state.ModeRefuel {
		s.Fuel = state.Clamp(s.Fuel + refuelGain)
		return []effect.Effect{effect.FuelPuff{Count: 2}}
	}

	// Ignite: the gain depends on whether any fuel was left to burn.
	gain := ignitePowerGain
	if s.Fuel <= state.MeterMin {
		gain = starvedPowerGain
	}
	s.Power = state.Clamp(s.Power + gain)
	s.Fuel = state.Clamp(s.Fuel - igniteFuelCost)
	if s.Power > s.PeakPower {
		s.PeakPower = s.Power
	}

	// Flame size reflects the tank after this burn, not before it.
	flames := 1
	if s.Fuel > state.MeterMin {
		flames = 3
	}
	return []effect.Effect{
		effect.FlameBurst{Count: flames},
		effect.Shake{},
	}
}

// Tick applies one second of passive simulation: power decay first, then the
// canopy check against the post-decay value. Reordering those two steps would
// change how many ticks a launch takes, so keep decay first.
// No-op while the session is locked.
func Tick(s *state.Session) []effect.Effect {
	if s.Locked {
		return nil
	}
	s.TickCount++

	s.Power = state.Clamp(s.Power - powerDecayPerTick)

	if s.Power >= holdThreshold {
		s.ClearProgress = state.Clamp(s.ClearProgress + clearPerTick)
	} else {
		s.ClearProgress = state.Clamp(s.ClearProgress - clearPerTick)
	}

	// The win fires at most once: Won guards the transition and Locked stops
	// every later press and tick until an explicit restart.
	if s.ClearProgress >= state.ClearTarget && !s.Won {
		s.Won = true
		s.Locked = true
		logMessage(s, "%s", gotext.Get("Canopy clear. LAUNCH!"))
		return []effect.Effect{
			effect.WinSequence{MessageDelay: effect.SuccessMessageDelay},
		}
	}

	return nil
}

// Restart puts the session back to its initial state, whatever state it is
// in. Always succeeds; this is the only way out of a locked session.
func Restart(s *state.Session) {
	s.Reset()
	logMessage(s, "%s", gotext.Get("Systems reset. Ready for a new launch."))
}
