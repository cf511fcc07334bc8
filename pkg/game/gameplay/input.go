package gameplay

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/leonelquinteros/gotext"

	engineinput "liftoff/pkg/engine/input"
	"liftoff/pkg/game/config"
	"liftoff/pkg/game/devtools"
	"liftoff/pkg/game/effect"
	gamemenu "liftoff/pkg/game/menu"
	"liftoff/pkg/game/renderer"
	"liftoff/pkg/game/state"
)

// Clock is the slice of the simulation ticker the menu flow needs: menus
// suspend the tick so a visit cannot cost the player canopy progress.
type Clock interface {
	Pause()
	Resume()
}

// ProcessIntent handles a high-level input intent from the tiered input
// system and returns any cosmetic effects the operation emitted. The intents
// channel is the stream the logic loop owns; it is handed through so menus
// can consume follow-up keys. clk may be nil when no simulation clock runs.
func ProcessIntent(s *state.Session, intent engineinput.Intent, intents <-chan engineinput.Intent, clk Clock) []effect.Effect {
	switch intent.Action {
	case engineinput.ActionNone:
		return nil

	case engineinput.ActionIgniteMode:
		SetMode(s, state.ModeIgnite)
		return nil

	case engineinput.ActionRefuelMode:
		SetMode(s, state.ModeRefuel)
		return nil

	case engineinput.ActionPress:
		return Press(s)

	case engineinput.ActionRestart:
		Restart(s)
		return nil

	case engineinput.ActionHint:
		if len(s.Hints) > 0 {
			idx := rand.Intn(len(s.Hints))
			logMessage(s, "%s", s.Hints[idx])
		}
		return nil

	case engineinput.ActionReport:
		path, err := devtools.SaveReport(s)
		if err != nil {
			logMessage(s, "Report failed: %v", err)
		} else {
			logMessage(s, "Report saved to ITEM{%s}", path)
		}
		return nil

	case engineinput.ActionOpenMenu:
		// Pause drops ticks instead of queueing them, so no stale tick
		// lands on the session the moment the menu closes.
		if clk != nil {
			clk.Pause()
		}
		RunSessionMenu(s, intents)
		if clk != nil && !s.Locked {
			clk.Resume()
		}
		return nil

	case engineinput.ActionQuit:
		fmt.Println(gotext.Get("Goodbye."))
		os.Exit(0)
	}

	// NavUp/NavDown and zoom only mean something inside menus and renderers.
	return nil
}

// RunSessionMenu runs the in-game menu and acts on the player's choice.
// Returns once the player resumes play.
func RunSessionMenu(s *state.Session, intents <-chan engineinput.Intent) {
	for {
		handler := gamemenu.NewSessionMenuHandler()
		gamemenu.RunMenuDynamic(s, handler, intents)

		switch handler.SelectedAction() {
		case gamemenu.SessionMenuActionRestart:
			Restart(s)
			return

		case gamemenu.SessionMenuActionBindings:
			gamemenu.RunMenuDynamic(s, gamemenu.NewBindingsMenuHandler(), intents)
			if err := config.SaveBindings(); err != nil {
				logMessage(s, "Could not save bindings: %v", err)
			}
			// Back to the session menu so the player sees where they were.
			continue

		case gamemenu.SessionMenuActionQuit:
			fmt.Println(gotext.Get("Goodbye."))
			os.Exit(0)

		default:
			// Resume
			return
		}
	}
}

// logMessage formats a message with markup and appends it to the session log.
func logMessage(s *state.Session, msg string, a ...any) {
	s.AddMessage(renderer.ApplyMarkup(msg, a...))
}
