package ebiten

import (
	"fmt"

	gcolor "github.com/gookit/color"
	"github.com/hajimehoshi/ebiten/v2"

	"liftoff/pkg/game/menu"
	"liftoff/pkg/game/renderer"
	"liftoff/pkg/game/state"
)

// RenderMenu stores the menu overlay state for Draw (menu.MenuRenderer).
func (e *EbitenRenderer) RenderMenu(s *state.Session, items []menu.MenuItem, selected int, helpText string, title string) {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = gcolor.ClearCode(item.GetLabel())
	}

	e.menuMutex.Lock()
	defer e.menuMutex.Unlock()
	e.menu = menuOverlay{
		active:   true,
		title:    title,
		items:    labels,
		selected: selected,
		helpText: helpText,
	}
}

// ClearMenu hides the menu overlay (menu.MenuRenderer).
func (e *EbitenRenderer) ClearMenu() {
	e.menuMutex.Lock()
	defer e.menuMutex.Unlock()
	e.menu = menuOverlay{}
}

// drawMenuOverlay renders the full-screen menu.
func (e *EbitenRenderer) drawMenuOverlay(screen *ebiten.Image) {
	e.menuMutex.RLock()
	m := e.menu
	e.menuMutex.RUnlock()

	w := float64(e.windowWidth)
	face := e.uiFace()
	lineH := face.Size * 1.6

	e.drawTextCentered(screen, m.title, e.titleFace(), w/2, 40, colorText)

	if renderer.Commit != "unknown" && len(renderer.Commit) >= 7 {
		version := fmt.Sprintf("Version %s (%s)", renderer.Version, renderer.Commit[:7])
		e.drawTextCentered(screen, version, face, w/2, 86, colorSubtle)
	}

	y := 130.0
	for i, label := range m.items {
		clr := colorText
		prefix := "  "
		if i == m.selected {
			clr = colorSelected
			prefix = "> "
		}
		e.drawText(screen, prefix+label, face, w*0.2, y, clr)
		y += lineH
	}

	if m.helpText != "" {
		e.drawTextCentered(screen, m.helpText, face, w/2, y+lineH, colorSubtle)
	}
}
