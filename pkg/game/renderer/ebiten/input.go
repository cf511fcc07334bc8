package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "liftoff/pkg/engine/input"
	"liftoff/pkg/game/config"
)

// keyCodes maps Ebiten keys to the raw codes the binding layer understands.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyDigit1:         "1",
	ebiten.KeyDigit2:         "2",
	ebiten.KeyI:              "i",
	ebiten.KeyF:              "f",
	ebiten.KeySpace:          "space",
	ebiten.KeyEnter:          "enter",
	ebiten.KeyN:              "n",
	ebiten.KeyF5:             "f5",
	ebiten.KeyF8:             "f8",
	ebiten.KeyF10:            "f10",
	ebiten.KeyM:              "m",
	ebiten.KeyQ:              "q",
	ebiten.KeyEscape:         "escape",
	ebiten.KeySlash:          "?",
	ebiten.KeyArrowUp:        "arrow_up",
	ebiten.KeyArrowDown:      "arrow_down",
	ebiten.KeyK:              "k",
	ebiten.KeyJ:              "j",
	ebiten.KeyEqual:          "=",
	ebiten.KeyMinus:          "-",
	ebiten.KeyNumpadAdd:      "numpad_add",
	ebiten.KeyNumpadSubtract: "numpad_subtract",
}

// gamepadCodes maps standard-layout gamepad buttons to raw codes.
var gamepadCodes = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonRightBottom: "gamepad_a",
	ebiten.StandardGamepadButtonRightRight:  "gamepad_b",
	ebiten.StandardGamepadButtonRightLeft:   "gamepad_x",
	ebiten.StandardGamepadButtonRightTop:    "gamepad_y",
	ebiten.StandardGamepadButtonCenterLeft:  "gamepad_back",
	ebiten.StandardGamepadButtonCenterRight: "gamepad_start",
	ebiten.StandardGamepadButtonLeftTop:     "gamepad_dpad_up",
	ebiten.StandardGamepadButtonLeftBottom:  "gamepad_dpad_down",
}

// Update implements ebiten.Game. It polls input, forwards intents to the
// logic goroutine and advances cosmetic animation state.
func (e *EbitenRenderer) Update() error {
	for key, code := range keyCodes {
		if inpututil.IsKeyJustPressed(key) {
			e.dispatchCode(code, engineinput.DeviceKeyboard)
		}
	}

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for button, code := range gamepadCodes {
			if inpututil.IsStandardGamepadButtonJustPressed(id, button) {
				e.dispatchCode(code, engineinput.DeviceGamepad)
			}
		}
	}

	e.updateEffects(1.0 / float64(ebiten.TPS()))
	return nil
}

// dispatchCode runs a raw code through the input tiers. Zoom is handled
// inside the renderer; everything else is forwarded to the logic goroutine.
func (e *EbitenRenderer) dispatchCode(code string, device engineinput.Device) {
	raw := engineinput.RawInput{Device: device, Code: code}
	intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))

	switch intent.Action {
	case engineinput.ActionZoomIn:
		e.adjustTileSize(tileSizeStep)
	case engineinput.ActionZoomOut:
		e.adjustTileSize(-tileSizeStep)
	case engineinput.ActionNone:
		// Unknown codes are still forwarded; the bindings editor listens
		// for the next raw code regardless of its current mapping.
		e.forward(intent)
	default:
		e.forward(intent)
	}
}

// forward sends an intent without blocking the render thread. If the logic
// goroutine is mid-operation and the buffer fills, the press is dropped.
func (e *EbitenRenderer) forward(intent engineinput.Intent) {
	select {
	case e.inputChan <- intent:
	default:
	}
}

// adjustTileSize changes the zoom level within bounds and persists it.
func (e *EbitenRenderer) adjustTileSize(delta int) {
	next := e.tileSize + delta
	if next < minTileSize || next > maxTileSize {
		return
	}
	e.tileSize = next

	if err := config.SaveTileSize(e.tileSize); err != nil {
		log.Printf("Failed to save tile size: %v", err)
	}
}
