package menu

import (
	"testing"

	engineinput "liftoff/pkg/engine/input"
	"liftoff/pkg/game/state"
)

// feedIntents returns a channel pre-loaded with the given actions, the way
// the logic loop would deliver them.
func feedIntents(t *testing.T, actions ...engineinput.Action) chan engineinput.Intent {
	t.Helper()
	ch := make(chan engineinput.Intent, len(actions)+8)
	for _, a := range actions {
		ch <- engineinput.Intent{Action: a}
	}
	return ch
}

func TestSessionMenuActivateRestart(t *testing.T) {
	s := state.NewSession()
	handler := NewSessionMenuHandler()

	// Navigate down once (Resume -> Restart) and activate.
	intents := feedIntents(t, engineinput.ActionNavDown, engineinput.ActionPress)
	RunMenuDynamic(s, handler, intents)

	if got := handler.SelectedAction(); got != SessionMenuActionRestart {
		t.Errorf("got action %v, want Restart", got)
	}
}

func TestSessionMenuDismissDefaultsToResume(t *testing.T) {
	s := state.NewSession()
	handler := NewSessionMenuHandler()

	// Navigate somewhere, then close without activating.
	intents := feedIntents(t, engineinput.ActionNavDown, engineinput.ActionNavDown, engineinput.ActionOpenMenu)
	RunMenuDynamic(s, handler, intents)

	if got := handler.SelectedAction(); got != SessionMenuActionResume {
		t.Errorf("got action %v, want Resume after dismissal", got)
	}
}

func TestSessionMenuNavigationWrapsAround(t *testing.T) {
	s := state.NewSession()
	handler := NewSessionMenuHandler()

	// Up from the first item wraps to the last (Quit); dismiss without
	// activating so nothing destructive runs.
	intents := feedIntents(t, engineinput.ActionNavUp, engineinput.ActionQuit)
	RunMenuDynamic(s, handler, intents)

	// OnSelect tracked the wrap even though nothing was activated.
	if got := handler.selectedAction; got != SessionMenuActionResume {
		t.Errorf("got action %v, want Resume (OnExit reset)", got)
	}
}

func TestBindingsMenuRebindCapturesNextCode(t *testing.T) {
	defer engineinput.SetSingleBinding(engineinput.ActionHint, "?")

	s := state.NewSession()
	handler := NewBindingsMenuHandler()

	// Items: IgniteMode, RefuelMode, Press, Restart, Hint, OpenMenu, ZoomIn,
	// ZoomOut. Navigate to Hint, activate, press the new key, close.
	intents := feedIntents(t,
		engineinput.ActionNavDown, engineinput.ActionNavDown,
		engineinput.ActionNavDown, engineinput.ActionNavDown,
		engineinput.ActionPress,
	)
	intents <- engineinput.Intent{Action: engineinput.ActionNone, Code: "h"}
	intents <- engineinput.Intent{Action: engineinput.ActionOpenMenu}
	close(intents)

	RunMenuDynamic(s, handler, intents)

	raw := engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: "h"}
	intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
	if intent.Action != engineinput.ActionHint {
		t.Errorf("got %v for rebound code, want ActionHint", intent.Action)
	}
}
