// Package effect defines the cosmetic side-effect descriptors emitted by
// gameplay operations. Effects carry no game state: renderers consume them
// for particles, screen shake and the win sequence, and the core stays free
// of timer and drawing concerns.
package effect

import "time"

// SuccessMessageDelay is how long after the win sequence starts the renderer
// reveals the success message.
const SuccessMessageDelay = 3 * time.Second

// Effect is a cosmetic effect descriptor. The concrete types below are the
// full set a renderer has to handle.
type Effect interface {
	isEffect()
}

// FlameBurst asks the renderer for Count exhaust flames under the rocket.
type FlameBurst struct {
	Count int
}

// FuelPuff asks the renderer for Count fuel vapour puffs at the intake.
type FuelPuff struct {
	Count int
}

// Shake asks the renderer for a brief screen shake.
type Shake struct{}

// WinSequence starts the launch cinematic: the renderer reveals the win
// overlay, tries to start launch playback (failure to autostart is ignored),
// and shows the success message after MessageDelay.
type WinSequence struct {
	MessageDelay time.Duration
}

func (FlameBurst) isEffect()  {}
func (FuelPuff) isEffect()    {}
func (Shake) isEffect()       {}
func (WinSequence) isEffect() {}
