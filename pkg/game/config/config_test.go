package config

import (
	"testing"

	engineinput "liftoff/pkg/engine/input"
)

func actionFor(t *testing.T, code string) engineinput.Action {
	t.Helper()
	raw := engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code}
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(raw)).Action
}

func TestApplyBindings(t *testing.T) {
	defer engineinput.SetSingleBinding(engineinput.ActionHint, "?")

	p := &Preferences{Bindings: map[string]string{
		"Hint":          "h",
		"Not An Action": "z",
		"Quit":          "",
	}}
	ApplyBindings(p)

	if got := actionFor(t, "h"); got != engineinput.ActionHint {
		t.Errorf("got %v for rebound code, want ActionHint", got)
	}
	if got := actionFor(t, "z"); got != engineinput.ActionNone {
		t.Errorf("got %v for an unknown action's code, want ActionNone", got)
	}
	// The empty Quit entry must not have cleared the defaults.
	if got := actionFor(t, "q"); got != engineinput.ActionQuit {
		t.Errorf("got %v for q, want ActionQuit", got)
	}
}
