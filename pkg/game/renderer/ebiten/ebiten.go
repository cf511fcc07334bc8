package ebiten

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "liftoff/pkg/engine/input"
	"liftoff/pkg/game/effect"
	"liftoff/pkg/game/state"
)

// New creates a new Ebiten renderer. tileSize 0 means the default.
func New(tileSize int) *EbitenRenderer {
	if tileSize < minTileSize || tileSize > maxTileSize {
		tileSize = defaultTileSize
	}
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		tileSize:     tileSize,
		inputChan:    make(chan engineinput.Intent, 8),
	}
}

// Init sets up the window and loads fonts and audio.
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("Liftoff")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := e.loadFonts(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Launch audio is cosmetic. Failure to set it up is ignored.
	e.initAudio()
}

// Run enters the Ebiten main loop. It blocks until the window is closed and
// must be called from the main goroutine.
func (e *EbitenRenderer) Run() error {
	return ebiten.RunGame(e)
}

// Layout implements ebiten.Game.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
	}
	return e.windowWidth, e.windowHeight
}

// Clear is a no-op: Ebiten repaints the whole frame in Draw.
func (e *EbitenRenderer) Clear() {
}

// RenderFrame captures a consistent snapshot of the session for Draw.
// Draw runs on the render thread at display rate; the snapshot decouples it
// from the logic goroutine that owns the session.
func (e *EbitenRenderer) RenderFrame(s *state.Session) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	e.snapshot = renderSnapshot{
		valid:         true,
		mode:          s.Mode,
		power:         s.Power,
		fuel:          s.Fuel,
		clearProgress: s.ClearProgress,
		won:           s.Won,
		locked:        s.Locked,
		messages:      append([]string(nil), s.Messages...),
	}

	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		log.Printf("Ebiten renderer active (%dx%d)", e.windowWidth, e.windowHeight)
	}
}

// PlayEffects converts gameplay effect descriptors into particles and shake.
func (e *EbitenRenderer) PlayEffects(effects []effect.Effect) {
	e.fxMutex.Lock()
	defer e.fxMutex.Unlock()

	for _, fx := range effects {
		switch eff := fx.(type) {
		case effect.FlameBurst:
			e.spawnFlames(eff.Count)
		case effect.FuelPuff:
			e.spawnPuffs(eff.Count)
		case effect.Shake:
			e.startScreenShake(0.4, 6.0)
		case effect.WinSequence:
			e.winStartedAt = time.Now()
			e.messageDelay = eff.MessageDelay
			e.playLaunchAudio()
		}
	}
}

// GetInput blocks until the Ebiten Update loop delivers the next intent.
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	return <-e.inputChan
}

// ShowMessage logs a message. In the graphical renderer transient text lives
// in the session message log, which Draw already shows.
func (e *EbitenRenderer) ShowMessage(msg string) {
	fmt.Println(msg)
}
