package renderer

import (
	engineinput "liftoff/pkg/engine/input"
	"liftoff/pkg/game/effect"
	"liftoff/pkg/game/state"
)

// Version information, set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

// Renderer defines the interface for game rendering backends.
// Implementations can include TUI (terminal), Ebiten, etc.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame from the session snapshot:
	// power/fuel gauges, canopy overlay, mode toggle, messages.
	RenderFrame(s *state.Session)

	// PlayEffects hands the cosmetic effects emitted by a gameplay operation
	// to the renderer (flames, fuel puffs, shake, win sequence).
	PlayEffects(effects []effect.Effect)

	// GetInput blocks until the player produces the next high-level intent.
	GetInput() engineinput.Intent

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(s *state.Session) {
	if Current != nil {
		Current.RenderFrame(s)
	}
}

// PlayEffects forwards effects to the current renderer
func PlayEffects(effects []effect.Effect) {
	if Current != nil && len(effects) > 0 {
		Current.PlayEffects(effects)
	}
}

// GetInput gets the next intent from the current renderer
func GetInput() engineinput.Intent {
	if Current != nil {
		return Current.GetInput()
	}
	return engineinput.Intent{}
}

// ShowMessage displays a message via the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
