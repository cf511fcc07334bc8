// Package ebiten provides the Ebiten-based 2D graphical renderer for Liftoff.
package ebiten

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "liftoff/pkg/engine/input"
	"liftoff/pkg/game/state"
)

// Window and tile-size bounds. tileSize only scales fonts and layout here;
// there is no tile map, but the zoom mechanism matches the rest of the UI.
const (
	defaultWindowWidth  = 480
	defaultWindowHeight = 640
	defaultTileSize     = 24
	minTileSize         = 12
	maxTileSize         = 48
	tileSizeStep        = 4
	baseFontSize        = 16.0
)

// Particle is one cosmetic exhaust flame or fuel puff.
type Particle struct {
	X, Y     float64
	Radius   float64
	Velocity float64 // positive moves down (exhaust), negative up (vapour)
	Opacity  float64
	Fuel     bool // vapour puff rather than flame
}

// renderSnapshot holds a consistent snapshot of session state for rendering.
// This prevents jitter from races between the logic goroutine and Draw.
type renderSnapshot struct {
	valid         bool
	mode          state.Mode
	power         float64
	fuel          float64
	clearProgress float64
	won           bool
	locked        bool
	messages      []string
}

// menuOverlay is the state of the full-screen menu, when active.
type menuOverlay struct {
	active   bool
	title    string
	items    []string
	selected int
	helpText string
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Tile size for layout/font scaling (adjustable with +/-)
	tileSize int

	// Font sources for text rendering
	sansFontSource     *text.GoTextFaceSource
	sansBoldFontSource *text.GoTextFaceSource

	// Cached font faces (recreated when tile size changes)
	cachedUIFontSize    float64
	cachedTitleFontSize float64
	cachedSansFace      *text.GoTextFace
	cachedTitleFace     *text.GoTextFace

	// Snapshot of the session captured by RenderFrame
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Cosmetic effect state, guarded by fxMutex (PlayEffects runs on the
	// logic goroutine, Draw on the render thread)
	fxMutex        sync.Mutex
	particles      []Particle
	shakeTimer     float64
	shakeDuration  float64
	shakeMagnitude float64
	shakeOffsetX   float64
	shakeOffsetY   float64
	winStartedAt   time.Time
	messageDelay   time.Duration

	// Menu overlay state
	menuMutex sync.RWMutex
	menu      menuOverlay

	// Intent channel feeding the logic loop
	inputChan chan engineinput.Intent

	// Launch audio (best effort; nil when unavailable)
	audioContext *audio.Context
	launchPlayer *audio.Player

	windowOpenedLogged bool
}
