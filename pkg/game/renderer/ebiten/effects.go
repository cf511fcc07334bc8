package ebiten

import (
	"math/rand"
)

// spawnFlames adds exhaust particles below the rocket nozzle.
// Caller holds fxMutex.
func (e *EbitenRenderer) spawnFlames(count int) {
	nozzleX, nozzleY := e.rocketNozzle()
	for i := 0; i < count*4; i++ {
		e.particles = append(e.particles, Particle{
			X:        nozzleX + (rand.Float64()-0.5)*20,
			Y:        nozzleY + rand.Float64()*6,
			Radius:   3 + rand.Float64()*4,
			Velocity: 60 + rand.Float64()*80,
			Opacity:  1.0,
		})
	}
}

// spawnPuffs adds fuel vapour particles drifting up from the tank inlet.
// Caller holds fxMutex.
func (e *EbitenRenderer) spawnPuffs(count int) {
	bodyX, bodyY := e.rocketBody()
	for i := 0; i < count*3; i++ {
		e.particles = append(e.particles, Particle{
			X:        bodyX + (rand.Float64()-0.5)*30,
			Y:        bodyY + (rand.Float64()-0.5)*10,
			Radius:   4 + rand.Float64()*5,
			Velocity: -(20 + rand.Float64()*30),
			Opacity:  0.8,
			Fuel:     true,
		})
	}
}

// startScreenShake begins a shake of the given duration (seconds) and
// pixel magnitude. Caller holds fxMutex.
func (e *EbitenRenderer) startScreenShake(duration, magnitude float64) {
	e.shakeTimer = duration
	e.shakeDuration = duration
	e.shakeMagnitude = magnitude
}

// updateEffects advances particles and screen shake by dt seconds.
func (e *EbitenRenderer) updateEffects(dt float64) {
	e.fxMutex.Lock()
	defer e.fxMutex.Unlock()

	alive := e.particles[:0]
	for _, p := range e.particles {
		p.Y += p.Velocity * dt
		p.Opacity -= 1.5 * dt
		if p.Fuel {
			p.Radius += 8 * dt
		}
		if p.Opacity > 0 {
			alive = append(alive, p)
		}
	}
	e.particles = alive

	if e.shakeTimer > 0 {
		e.shakeTimer -= dt
		if e.shakeTimer <= 0 {
			e.shakeTimer = 0
			e.shakeOffsetX = 0
			e.shakeOffsetY = 0
		} else {
			// Shake decays linearly towards zero over its duration.
			strength := e.shakeMagnitude * (e.shakeTimer / e.shakeDuration)
			e.shakeOffsetX = (rand.Float64()*2 - 1) * strength
			e.shakeOffsetY = (rand.Float64()*2 - 1) * strength
		}
	}
}
