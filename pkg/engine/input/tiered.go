package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Gameplay
	ActionIgniteMode // switch the press behaviour to ignition
	ActionRefuelMode // switch the press behaviour to refuelling
	ActionPress      // the main click: burn fuel or pump fuel, depending on mode
	ActionRestart    // reset the session to its initial state

	// Meta / UI
	ActionHint
	ActionQuit
	ActionOpenMenu
	ActionReport  // dump a session report to disk (F8)
	ActionNavUp   // menu navigation
	ActionNavDown // menu navigation
	ActionZoomIn  // zoom in (increase font/tile size)
	ActionZoomOut // zoom out (decrease font/tile size)
)

// Intent is the 4th-layer, high-level description of what the player wants to do.
// Code carries the raw code that produced the intent so UI flows that need the
// physical key (e.g. the bindings editor) can see it.
type Intent struct {
	Action Action
	Code   string
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "space", "arrow_up", "gamepad_a").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing/deduplication.
// Both input paths (Ebiten's just-pressed polling, terminal raw mode) already
// deliver one event per key press, but the distinct type keeps the layering
// explicit and extensible.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
// At the moment this is a thin wrapper, but it is the right place to add
// key-repeat suppression or timing based logic later.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Mode selection
	"1":         ActionIgniteMode,
	"i":         ActionIgniteMode,
	"gamepad_x": ActionIgniteMode,
	"2":         ActionRefuelMode,
	"f":         ActionRefuelMode,
	"gamepad_y": ActionRefuelMode,

	// The click itself (space, Enter, A button - reserved, not rebindable)
	"space":     ActionPress,
	"enter":     ActionPress,
	"gamepad_a": ActionPress,

	// Restart
	"n":            ActionRestart,
	"f5":           ActionRestart,
	"gamepad_back": ActionRestart,

	// Help / hint
	"?":    ActionHint,
	"hint": ActionHint,

	// Quit
	"quit":      ActionQuit,
	"q":         ActionQuit,
	"escape":    ActionQuit,
	"gamepad_b": ActionQuit,

	// Menu
	"menu":          ActionOpenMenu,
	"m":             ActionOpenMenu,
	"f10":           ActionOpenMenu,
	"gamepad_start": ActionOpenMenu,

	// Session report dump
	"f8": ActionReport,

	// Menu navigation (arrows are reserved so menus always work)
	"arrow_up":          ActionNavUp,
	"k":                 ActionNavUp,
	"gamepad_dpad_up":   ActionNavUp,
	"arrow_down":        ActionNavDown,
	"j":                 ActionNavDown,
	"gamepad_dpad_down": ActionNavDown,

	// Zoom (fixed bindings, not rebindable)
	"=":               ActionZoomIn,
	"+":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"-":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act, Code: ev.Code}
	}
	return Intent{Action: ActionNone, Code: ev.Code}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionIgniteMode:
		return "Ignite Mode"
	case ActionRefuelMode:
		return "Refuel Mode"
	case ActionPress:
		return "Press"
	case ActionRestart:
		return "Restart"
	case ActionHint:
		return "Hint"
	case ActionQuit:
		return "Quit"
	case ActionOpenMenu:
		return "Open Menu"
	case ActionReport:
		return "Session Report"
	case ActionNavUp:
		return "Menu Up"
	case ActionNavDown:
		return "Menu Down"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	default:
		return "None"
	}
}

// ActionFromName is the inverse of ActionName. Returns ActionNone for
// unknown names (e.g. a preferences file written by a newer build).
func ActionFromName(name string) Action {
	for a := ActionIgniteMode; a <= ActionZoomOut; a++ {
		if ActionName(a) == name {
			return a
		}
	}
	return ActionNone
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// reservedCode reports whether a code must keep its default binding.
// Arrows stay on menu navigation and space/Enter/A stay on Press so the
// game can never be rebound into an unplayable state.
func reservedCode(code string) bool {
	switch code {
	case "arrow_up", "arrow_down", "arrow_left", "arrow_right",
		"space", "enter", "gamepad_a":
		return true
	}
	return false
}

// SetSingleBinding replaces all bindings for the given action with a single code.
func SetSingleBinding(action Action, code string) {
	// Don't allow reserved actions themselves to have their bindings cleared.
	if action == ActionPress || action == ActionNavUp || action == ActionNavDown {
		return
	}
	for c, a := range bindings {
		if reservedCode(c) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	// Reserved codes cannot be taken away from their default action.
	if code != "" && !reservedCode(code) {
		bindings[code] = action
	}
}
