// Package tui provides the terminal renderer for Liftoff: gauges, the rocket,
// the frosted canopy and the message pane, drawn with ANSI styles.
package tui

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	engineinput "liftoff/pkg/engine/input"
	"liftoff/pkg/engine/terminal"
	"liftoff/pkg/game/effect"
	"liftoff/pkg/game/menu"
	"liftoff/pkg/game/renderer"
	"liftoff/pkg/game/state"
)

// Gauge geometry
const (
	gaugeWidth = 24
	gaugeFill  = "█"
	gaugeEmpty = "░"
)

// Canopy view geometry: a small window whose visible stars grow with
// clearing progress.
const (
	canopyRows = 3
	canopyCols = 26
	frostIcon  = "▒"
)

// How long a cosmetic effect stays on screen after its gameplay operation.
const effectLifetime = 700 * time.Millisecond

// Rocket art, drawn line by line so shake can jitter the indent.
var rocketArt = []string{
	`    /\    `,
	`   |==|   `,
	`   |  |   `,
	`  /|##|\  `,
	` | |##| | `,
	` |_|__|_| `,
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	// Active cosmetic effects and when they expire. Single logic goroutine
	// drives PlayEffects and RenderFrame, so no locking is needed.
	activeFX     mapset.Set[string]
	fxUntil      time.Time
	flameCount   int
	fuelPuffs    int
	winStartedAt time.Time
	messageDelay time.Duration
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{
		activeFX: mapset.New[string](),
	}
}

// Init initializes the TUI renderer
func (t *TUIRenderer) Init() {
	// Colors are shared with the markup layer and initialised by
	// renderer.InitColors in main.
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// println writes a line with an explicit CRLF. The terminal spends part of
// its time in raw mode for key reads, where a bare LF does not return the
// carriage.
func (t *TUIRenderer) println(s string) {
	fmt.Print(s + "\r\n")
}

// expireEffects drops effects past their lifetime.
func (t *TUIRenderer) expireEffects() {
	if !t.fxUntil.IsZero() && time.Now().After(t.fxUntil) {
		t.activeFX = mapset.New[string]()
		t.flameCount = 0
		t.fuelPuffs = 0
	}
}

// PlayEffects records the cosmetic effects from the last gameplay operation.
func (t *TUIRenderer) PlayEffects(effects []effect.Effect) {
	for _, fx := range effects {
		switch e := fx.(type) {
		case effect.FlameBurst:
			t.activeFX.Put("flame")
			t.flameCount = e.Count
		case effect.FuelPuff:
			t.activeFX.Put("fuel")
			t.fuelPuffs = e.Count
		case effect.Shake:
			t.activeFX.Put("shake")
		case effect.WinSequence:
			t.winStartedAt = time.Now()
			t.messageDelay = e.MessageDelay
		}
	}
	t.fxUntil = time.Now().Add(effectLifetime)
}

// shakeIndent returns a jittered indent while a shake effect is active.
func (t *TUIRenderer) shakeIndent(base int) string {
	offset := 0
	if t.activeFX.Has("shake") {
		offset = rand.Intn(3) - 1
	}
	n := base + offset
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n)
}

// drawGauge renders a labelled meter bar, rounded to the nearest integer for
// display only.
func (t *TUIRenderer) drawGauge(label string, v float64, lowIsBad bool) {
	filled := int(math.Round(v / state.MeterMax * gaugeWidth))
	if filled < 0 {
		filled = 0
	}
	if filled > gaugeWidth {
		filled = gaugeWidth
	}

	style := renderer.ColorGauge
	if lowIsBad && v < 25 {
		style = renderer.ColorGaugeLow
	}

	bar := style.Sprint(strings.Repeat(gaugeFill, filled)) +
		renderer.ColorSubtle.Sprint(strings.Repeat(gaugeEmpty, gaugeWidth-filled))
	t.println(fmt.Sprintf("  %-7s %s %3.0f%%", label, bar, math.Round(v)))
}

// drawModeToggle renders the two mode controls with the active one highlighted.
func (t *TUIRenderer) drawModeToggle(s *state.Session) {
	ignite := renderer.ColorSubtle.Sprint("[ Ignite ]")
	refuel := renderer.ColorSubtle.Sprint("[ Refuel ]")
	if s.Mode == state.ModeIgnite {
		ignite = renderer.ColorAction.Sprint("[*Ignite*]")
	} else {
		refuel = renderer.ColorAction.Sprint("[*Refuel*]")
	}
	t.println(fmt.Sprintf("  %s  %s", ignite, refuel))
}

// drawCanopy renders the cockpit window. Stars become visible as clearing
// progresses; a fully frosted canopy shows none.
func (t *TUIRenderer) drawCanopy(s *state.Session) {
	clearFrac := s.ClearProgress / state.MeterMax

	t.println("  " + renderer.ColorSubtle.Sprint("┌"+strings.Repeat("─", canopyCols)+"┐"))
	for row := 0; row < canopyRows; row++ {
		line := "  " + renderer.ColorSubtle.Sprint("│")
		for col := 0; col < canopyCols; col++ {
			// Deterministic per-cell ordering so frost melts in a stable pattern.
			cellRank := float64((row*canopyCols+col)*7%(canopyRows*canopyCols)) / float64(canopyRows*canopyCols)
			if cellRank < clearFrac {
				if (row+col)%5 == 0 {
					line += renderer.ColorWin.Sprint("·")
				} else {
					line += " "
				}
			} else {
				line += renderer.ColorSubtle.Sprint(frostIcon)
			}
		}
		line += renderer.ColorSubtle.Sprint("│")
		t.println(line)
	}
	t.println("  " + renderer.ColorSubtle.Sprint("└"+strings.Repeat("─", canopyCols)+"┘"))
}

// drawRocket renders the rocket with any active flame/fuel effects beneath it.
func (t *TUIRenderer) drawRocket() {
	for _, line := range rocketArt {
		t.println(t.shakeIndent(6) + line)
	}

	if t.activeFX.Has("flame") {
		flames := strings.Repeat("▲ ", t.flameCount)
		t.println(t.shakeIndent(9) + renderer.ColorGaugeLow.Sprint(flames))
	}
	if t.activeFX.Has("fuel") {
		puffs := strings.Repeat("o ", t.fuelPuffs)
		t.println(t.shakeIndent(9) + renderer.ColorGauge.Sprint(puffs))
	}
}

// drawMessagesPane renders the messages log pane
func (t *TUIRenderer) drawMessagesPane(s *state.Session) {
	width := terminal.Width()

	label := " Messages "
	sideLen := (width - len(label)) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", width-sideLen-len(label))

	t.println("")
	t.println(renderer.ColorSubtle.Sprint(leftDashes + label + rightDashes))

	if len(s.Messages) == 0 {
		t.println(renderer.ColorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range s.Messages {
			t.println("  " + msg)
		}
	}

	t.println(renderer.ColorSubtle.Sprint(strings.Repeat("─", width)))
}

// drawActions prints the available controls.
func (t *TUIRenderer) drawActions() {
	t.println(renderer.ApplyMarkup("  ACTION{1}/ACTION{i} ignite mode   ACTION{2}/ACTION{f} refuel mode   Space press"))
	t.println(renderer.ApplyMarkup("  ACTION{n} new launch   ACTION{m} menu   ACTION{?} hint   ACTION{q} quit"))
}

// drawWinOverlay renders the launch banner and, after the configured delay,
// the success message.
func (t *TUIRenderer) drawWinOverlay() {
	t.println("")
	t.println("  " + renderer.ColorWin.Sprint("╔══════════════════════════╗"))
	t.println("  " + renderer.ColorWin.Sprint("║        LIFTOFF!          ║"))
	t.println("  " + renderer.ColorWin.Sprint("╚══════════════════════════╝"))

	if time.Since(t.winStartedAt) >= t.messageDelay {
		t.println("")
		t.println("  " + renderer.ColorItem.Sprint(gotext.Get("The canopy is clear and the sky is yours.")))
		t.println("  " + renderer.ColorSubtle.Sprint(gotext.Get("Press n for a new launch.")))
	}
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(s *state.Session) {
	t.expireEffects()
	t.Clear()

	t.println(renderer.ColorActionShort.Sprint("  LIFTOFF") +
		renderer.ColorSubtle.Sprint("  clear the canopy, hold the burn"))
	t.println("")

	t.drawModeToggle(s)
	t.println("")
	t.drawCanopy(s)
	t.drawRocket()
	t.println("")
	t.drawGauge("Power", s.Power, false)
	t.drawGauge("Fuel", s.Fuel, true)
	t.drawGauge("Canopy", s.ClearProgress, false)

	if s.Won {
		t.drawWinOverlay()
	}

	t.drawMessagesPane(s)
}

// GetInput blocks on the terminal for the next key and maps it to an intent.
func (t *TUIRenderer) GetInput() engineinput.Intent {
	return engineinput.ReadIntent()
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	t.println(renderer.ApplyMarkup("%s", msg))
}

// RenderMenu draws a full-screen menu (menu.MenuRenderer).
func (t *TUIRenderer) RenderMenu(s *state.Session, items []menu.MenuItem, selected int, helpText string, title string) {
	t.Clear()

	t.println("")
	t.println("  " + renderer.ColorActionShort.Sprint("=== "+title+" ==="))
	if renderer.Commit != "unknown" && len(renderer.Commit) >= 7 {
		t.println("  " + renderer.ColorSubtle.Sprint(fmt.Sprintf("Version %s (%s)", renderer.Version, renderer.Commit[:7])))
	}
	t.println("")

	for i, item := range items {
		prefix := "    "
		label := item.GetLabel()
		if i == selected {
			prefix = "  > "
			label = renderer.ColorAction.Sprint(color.ClearCode(label))
		}
		t.println(prefix + label)
	}

	t.println("")
	if helpText != "" {
		t.println("  " + helpText)
	}
	var selectedItem menu.MenuItem
	if selected >= 0 && selected < len(items) {
		selectedItem = items[selected]
	}
	if selectedItem != nil && selectedItem.GetHelpText() != "" {
		t.println("  " + renderer.ColorSubtle.Sprint(selectedItem.GetHelpText()))
	}
}

// ClearMenu hides the menu overlay. The next RenderFrame redraws the pad.
func (t *TUIRenderer) ClearMenu() {
	t.Clear()
}
