package ebiten

import (
	"fmt"
	"image/color"
	"math"
	"time"

	gcolor "github.com/gookit/color"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"
)

// Palette
var (
	colorBackground = color.RGBA{R: 12, G: 14, B: 26, A: 255}
	colorPanel      = color.RGBA{R: 24, G: 28, B: 46, A: 255}
	colorGaugePower = color.RGBA{R: 80, G: 200, B: 255, A: 255}
	colorGaugeFuel  = color.RGBA{R: 120, G: 220, B: 120, A: 255}
	colorGaugeLow   = color.RGBA{R: 230, G: 80, B: 70, A: 255}
	colorGaugeClear = color.RGBA{R: 220, G: 190, B: 90, A: 255}
	colorText       = color.RGBA{R: 220, G: 224, B: 235, A: 255}
	colorSubtle     = color.RGBA{R: 130, G: 136, B: 155, A: 255}
	colorHull       = color.RGBA{R: 200, G: 204, B: 215, A: 255}
	colorFin        = color.RGBA{R: 160, G: 70, B: 60, A: 255}
	colorSky        = color.RGBA{R: 40, G: 80, B: 160, A: 255}
	colorFrost      = color.RGBA{R: 225, G: 235, B: 245, A: 255}
	colorFlame      = color.RGBA{R: 255, G: 150, B: 40, A: 255}
	colorVapour     = color.RGBA{R: 180, G: 230, B: 200, A: 255}
	colorWin        = color.RGBA{R: 255, G: 215, B: 80, A: 255}
	colorSelected   = color.RGBA{R: 255, G: 200, B: 80, A: 255}
)

// Layout anchors, scaled from the window size.
func (e *EbitenRenderer) rocketBody() (float64, float64) {
	return float64(e.windowWidth) / 2, float64(e.windowHeight) * 0.48
}

func (e *EbitenRenderer) rocketNozzle() (float64, float64) {
	x, _ := e.rocketBody()
	return x, float64(e.windowHeight) * 0.62
}

// drawText draws s at (x, y) in the given colour.
func (e *EbitenRenderer) drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// drawTextCentered draws s horizontally centred on cx.
func (e *EbitenRenderer) drawTextCentered(dst *ebiten.Image, s string, face *text.GoTextFace, cx, y float64, clr color.Color) {
	w, _ := text.Measure(s, face, 0)
	e.drawText(dst, s, face, cx-w/2, y, clr)
}

// Draw implements ebiten.Game.
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.snapshotMutex.RLock()
	snap := e.snapshot
	e.snapshotMutex.RUnlock()

	if !snap.valid {
		e.drawTextCentered(screen, gotext.Get("Preparing the pad..."), e.uiFace(),
			float64(e.windowWidth)/2, float64(e.windowHeight)/2, colorSubtle)
		return
	}

	e.menuMutex.RLock()
	menuActive := e.menu.active
	e.menuMutex.RUnlock()
	if menuActive {
		e.drawMenuOverlay(screen)
		return
	}

	e.fxMutex.Lock()
	shakeX, shakeY := e.shakeOffsetX, e.shakeOffsetY
	particles := append([]Particle(nil), e.particles...)
	winStartedAt := e.winStartedAt
	messageDelay := e.messageDelay
	e.fxMutex.Unlock()

	e.drawHeader(screen, snap)
	e.drawGauges(screen, snap)
	e.drawRocket(screen, snap, shakeX, shakeY)
	e.drawParticles(screen, particles, shakeX, shakeY)
	e.drawMessages(screen, snap)

	if snap.won {
		e.drawWinOverlay(screen, winStartedAt, messageDelay)
	}
}

// drawHeader renders the title and the mode toggle.
func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, snap renderSnapshot) {
	e.drawTextCentered(screen, "LIFTOFF", e.titleFace(), float64(e.windowWidth)/2, 14, colorText)

	ignite := gotext.Get("[ Ignite ]")
	refuel := gotext.Get("[ Refuel ]")
	igniteClr, refuelClr := colorSubtle, colorSubtle
	if snap.mode.String() == "Ignite" {
		igniteClr = colorSelected
	} else {
		refuelClr = colorSelected
	}

	face := e.uiFace()
	iw, _ := text.Measure(ignite, face, 0)
	gap := 16.0
	total := iw + gap
	rw, _ := text.Measure(refuel, face, 0)
	total += rw
	x := (float64(e.windowWidth) - total) / 2
	e.drawText(screen, ignite, face, x, 56, igniteClr)
	e.drawText(screen, refuel, face, x+iw+gap, 56, refuelClr)
}

// drawGauges renders the three meter bars.
func (e *EbitenRenderer) drawGauges(screen *ebiten.Image, snap renderSnapshot) {
	fuelClr := colorGaugeFuel
	if snap.fuel < 25 {
		fuelClr = colorGaugeLow
	}

	e.drawGauge(screen, gotext.Get("Power"), snap.power, 96, colorGaugePower)
	e.drawGauge(screen, gotext.Get("Fuel"), snap.fuel, 124, fuelClr)
	e.drawGauge(screen, gotext.Get("Canopy"), snap.clearProgress, 152, colorGaugeClear)
}

// drawGauge renders one labelled bar with a rounded percentage readout.
func (e *EbitenRenderer) drawGauge(screen *ebiten.Image, label string, v float64, y float64, clr color.Color) {
	const barX = 110.0
	barW := float64(e.windowWidth) - barX - 70
	if barW < 60 {
		barW = 60
	}

	face := e.uiFace()
	e.drawText(screen, label, face, 20, y, colorText)

	vector.DrawFilledRect(screen, float32(barX), float32(y+2), float32(barW), 14, colorPanel, false)
	filled := barW * v / 100
	if filled > 0 {
		vector.DrawFilledRect(screen, float32(barX), float32(y+2), float32(filled), 14, clr, false)
	}

	e.drawText(screen, fmt.Sprintf("%3.0f%%", math.Round(v)), face, barX+barW+8, y, colorSubtle)
}

// drawRocket renders the rocket hull, fins and the frosted canopy window.
func (e *EbitenRenderer) drawRocket(screen *ebiten.Image, snap renderSnapshot, shakeX, shakeY float64) {
	cx, cy := e.rocketBody()
	cx += shakeX
	cy += shakeY

	bodyW := 56.0
	bodyH := 150.0
	top := cy - bodyH/2

	// Hull
	vector.DrawFilledRect(screen, float32(cx-bodyW/2), float32(top), float32(bodyW), float32(bodyH), colorHull, true)
	// Nose cone, as a stack of narrowing slices
	noseH := 40.0
	for i := 0.0; i < noseH; i += 2 {
		frac := i / noseH
		w := bodyW * (1 - frac)
		vector.DrawFilledRect(screen, float32(cx-w/2), float32(top-noseH+i), float32(w), 2, colorFin, true)
	}
	// Fins
	vector.DrawFilledRect(screen, float32(cx-bodyW/2-14), float32(top+bodyH-34), 14, 34, colorFin, true)
	vector.DrawFilledRect(screen, float32(cx+bodyW/2), float32(top+bodyH-34), 14, 34, colorFin, true)

	// Canopy window: sky behind, frost on top. The frost thins as clearing
	// progresses; the sky layer's alpha is clearProgress/100.
	winR := 18.0
	winY := top + 34
	vector.DrawFilledCircle(screen, float32(cx), float32(winY), float32(winR), colorFrost, true)
	sky := withAlpha(colorSky, snap.clearProgress/100)
	vector.DrawFilledCircle(screen, float32(cx), float32(winY), float32(winR), sky, true)
	vector.StrokeCircle(screen, float32(cx), float32(winY), float32(winR), 2, colorPanel, true)
}

// drawParticles renders exhaust flames and fuel vapour.
func (e *EbitenRenderer) drawParticles(screen *ebiten.Image, particles []Particle, shakeX, shakeY float64) {
	for _, p := range particles {
		clr := colorFlame
		if p.Fuel {
			clr = colorVapour
		}
		clr = withAlpha(clr, p.Opacity)
		vector.DrawFilledCircle(screen, float32(p.X+shakeX), float32(p.Y+shakeY), float32(p.Radius), clr, true)
	}
}

// withAlpha returns c faded to the given opacity. color.RGBA is
// alpha-premultiplied, so the channels scale together.
func withAlpha(c color.RGBA, opacity float64) color.RGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * opacity)),
		G: uint8(math.Round(float64(c.G) * opacity)),
		B: uint8(math.Round(float64(c.B) * opacity)),
		A: uint8(math.Round(float64(c.A) * opacity)),
	}
}

// drawMessages renders the session message log at the bottom of the window.
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, snap renderSnapshot) {
	face := e.uiFace()
	lineH := face.Size * 1.4
	y := float64(e.windowHeight) - lineH*float64(len(snap.messages)) - 16

	vector.StrokeLine(screen, 12, float32(y-8), float32(e.windowWidth-12), float32(y-8), 1, colorPanel, false)

	for _, msg := range snap.messages {
		// Messages carry ANSI styling from the markup layer; strip it here.
		e.drawText(screen, gcolor.ClearCode(msg), face, 20, y, colorText)
		y += lineH
	}
}

// drawWinOverlay renders the launch banner, and the success message once the
// configured delay has elapsed.
func (e *EbitenRenderer) drawWinOverlay(screen *ebiten.Image, winStartedAt time.Time, messageDelay time.Duration) {
	w := float64(e.windowWidth)
	h := float64(e.windowHeight)

	vector.DrawFilledRect(screen, 0, float32(h*0.28), float32(w), float32(h*0.26),
		color.RGBA{R: 0, G: 0, B: 0, A: 190}, false)

	e.drawTextCentered(screen, gotext.Get("LIFTOFF!"), e.titleFace(), w/2, h*0.30, colorWin)

	if time.Since(winStartedAt) >= messageDelay {
		e.drawTextCentered(screen, gotext.Get("The canopy is clear and the sky is yours."),
			e.uiFace(), w/2, h*0.40, colorText)
		e.drawTextCentered(screen, gotext.Get("Press n for a new launch."),
			e.uiFace(), w/2, h*0.46, colorSubtle)
	}
}
