// Liftoff is a small launch-pad clicker: keep the engine hot, keep the tank
// wet, and hold full power until the canopy frost clears.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"liftoff/pkg/engine/clock"
	engineinput "liftoff/pkg/engine/input"
	"liftoff/pkg/game/config"
	"liftoff/pkg/game/gameplay"
	"liftoff/pkg/game/renderer"
	ebitenrenderer "liftoff/pkg/game/renderer/ebiten"
	"liftoff/pkg/game/renderer/tui"
	"liftoff/pkg/game/state"
)

// Set at build time with -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	rendererFlag := flag.String("renderer", "tui", "renderer to use: tui or ebiten")
	tickFlag := flag.Duration("tick", time.Second, "simulation tick interval")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("liftoff %s (%s)\n", Version, Commit)
		return
	}

	gotext.Configure("locales", os.Getenv("LANG"), "default")
	renderer.InitColors()
	renderer.Version = Version
	renderer.Commit = Commit

	prefs, err := config.Load()
	if err != nil {
		log.Printf("Could not load preferences: %v", err)
	}
	config.ApplyBindings(prefs)

	session := gameplay.BuildSession()
	intents := make(chan engineinput.Intent, 8)
	ticker := clock.NewTicker(*tickFlag)
	defer ticker.Stop()

	switch *rendererFlag {
	case "ebiten":
		er := ebitenrenderer.New(prefs.TileSize)
		renderer.SetRenderer(er)
		er.Init()

		go forwardInput(intents)
		go runLogicLoop(session, ticker, intents)

		// Ebiten insists on owning the main goroutine.
		if err := er.Run(); err != nil {
			log.Fatalf("Renderer stopped: %v", err)
		}

	case "tui":
		tr := tui.New()
		renderer.SetRenderer(tr)
		tr.Init()

		go forwardInput(intents)
		runLogicLoop(session, ticker, intents)

	default:
		log.Fatalf("Unknown renderer %q (want tui or ebiten)", *rendererFlag)
	}
}

// forwardInput pumps intents from the active renderer into the logic loop's
// channel. It is the only caller of renderer.GetInput.
func forwardInput(intents chan<- engineinput.Intent) {
	for {
		intents <- renderer.GetInput()
	}
}

// runLogicLoop is the single goroutine that owns the session. Every mutation
// happens here, driven by either the simulation clock or a player intent, so
// the gameplay code needs no locking.
func runLogicLoop(s *state.Session, ticker *clock.Ticker, intents <-chan engineinput.Intent) {
	renderer.RenderFrame(s)

	for {
		select {
		case <-ticker.C():
			renderer.PlayEffects(gameplay.Tick(s))

		case intent := <-intents:
			renderer.PlayEffects(gameplay.ProcessIntent(s, intent, intents, ticker))
		}

		// A locked session ignores ticks anyway; pausing the clock just stops
		// the wakeups until the player restarts.
		if s.Locked {
			ticker.Pause()
		} else {
			ticker.Resume()
		}

		renderer.RenderFrame(s)
	}
}
