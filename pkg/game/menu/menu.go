// Package menu provides a generic menu system for the game.
package menu

import (
	engineinput "liftoff/pkg/engine/input"
	"liftoff/pkg/game/renderer"
	"liftoff/pkg/game/state"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// MenuHandler handles menu item selection and activation.
// The intents channel passed to OnActivate is the same stream the logic loop
// owns; handlers that need a follow-up key (e.g. the bindings editor capturing
// a new code) read it from there, never from the renderer directly.
type MenuHandler interface {
	// OnSelect is called when an item is selected (navigated to).
	OnSelect(item MenuItem, index int)

	// OnActivate is called when an item is activated (e.g., Enter pressed).
	// Returns true if the menu should close, and any help text to display.
	OnActivate(item MenuItem, index int, intents <-chan engineinput.Intent) (shouldClose bool, helpText string)
	// OnExit is called when the menu is exited.
	OnExit()
	// GetTitle returns the menu title.
	GetTitle() string
	// GetInstructions returns the menu instructions.
	GetInstructions(selected MenuItem) string
}

// DynamicMenuHandler extends MenuHandler with dynamic menu items.
// RunMenuDynamic calls GetMenuItems each loop iteration so the menu can refresh
// (e.g. the bindings menu after a key is rebound).
type DynamicMenuHandler interface {
	MenuHandler
	GetMenuItems() []MenuItem
}

// MenuRenderer is an optional interface for renderers that can draw
// a full-screen menu overlay.
type MenuRenderer interface {
	// RenderMenu draws the menu overlay with the given items, selected index, help text, and title.
	RenderMenu(s *state.Session, items []MenuItem, selected int, helpText string, title string)
	// ClearMenu hides any active menu overlay.
	ClearMenu()
}

// RunMenuDynamic runs a menu whose items can change, reading player intents
// from the given channel until the menu closes.
func RunMenuDynamic(s *state.Session, handler DynamicMenuHandler, intents <-chan engineinput.Intent) {
	selected := 0
	helpText := ""

	for {
		items := handler.GetMenuItems()

		// Find first selectable item, or keep current if still valid
		if selected >= len(items) || !items[selected].IsSelectable() {
			selected = 0
			for i, item := range items {
				if item.IsSelectable() {
					selected = i
					break
				}
			}
		}

		// Use a renderer-native, full-screen overlay when available (Ebiten).
		if mr, ok := renderer.Current.(MenuRenderer); ok {
			mr.RenderMenu(s, items, selected, helpText, handler.GetTitle())
		} else {
			// Fallback: render the menu through the message log (TUI).
			renderMenuFallback(s, items, selected, helpText, handler)
		}

		intent := <-intents

		switch intent.Action {
		case engineinput.ActionNavUp:
			// Move selection up to previous selectable item (with wrap-around)
			found := false
			for i := selected - 1; i >= 0; i-- {
				if items[i].IsSelectable() {
					selected = i
					helpText = "" // Clear help text when navigating
					handler.OnSelect(items[selected], selected)
					found = true
					break
				}
			}
			if !found {
				for i := len(items) - 1; i > selected; i-- {
					if items[i].IsSelectable() {
						selected = i
						helpText = ""
						handler.OnSelect(items[selected], selected)
						break
					}
				}
			}
		case engineinput.ActionNavDown:
			// Move selection down to next selectable item (with wrap-around)
			found := false
			for i := selected + 1; i < len(items); i++ {
				if items[i].IsSelectable() {
					selected = i
					helpText = ""
					handler.OnSelect(items[selected], selected)
					found = true
					break
				}
			}
			if !found {
				for i := 0; i < selected; i++ {
					if items[i].IsSelectable() {
						selected = i
						helpText = ""
						handler.OnSelect(items[selected], selected)
						break
					}
				}
			}
		case engineinput.ActionPress:
			// Activate selected item
			if selected >= 0 && selected < len(items) && items[selected].IsSelectable() {
				shouldClose, newHelpText := handler.OnActivate(items[selected], selected, intents)
				helpText = newHelpText
				if shouldClose {
					closeMenu(s, handler)
					return
				}
			}
		case engineinput.ActionOpenMenu, engineinput.ActionQuit:
			closeMenu(s, handler)
			return
		case engineinput.ActionNone:
			// Ignore
		default:
			// Ignore other actions while in menu
		}
	}
}

// closeMenu clears menu chrome and notifies the handler.
func closeMenu(s *state.Session, handler MenuHandler) {
	s.ClearMessages()
	if mr, ok := renderer.Current.(MenuRenderer); ok {
		mr.ClearMenu()
	}
	handler.OnExit()
}

// renderMenuFallback renders the menu in the message log as a fallback for
// renderers without a native menu overlay.
func renderMenuFallback(s *state.Session, items []MenuItem, selected int, helpText string, handler MenuHandler) {
	s.ClearMessages()
	logMessage(s, "=== %s ===", handler.GetTitle())

	// Show instructions
	var selectedItem MenuItem
	if selected >= 0 && selected < len(items) {
		selectedItem = items[selected]
	}
	instructions := handler.GetInstructions(selectedItem)
	if instructions != "" {
		logMessage(s, "%s", instructions)
	}

	// Show help text if provided
	if helpText != "" {
		logMessage(s, "%s", helpText)
	}

	// Show menu items
	for i, item := range items {
		prefix := "  "
		if i == selected {
			prefix = "> "
		}
		label := item.GetLabel()
		if !item.IsSelectable() {
			label = renderer.StyledSubtle(label)
		}
		logMessage(s, "%s%s", prefix, label)
	}

	// Re-render frame with updated messages
	renderer.RenderFrame(s)
}

// logMessage formats a message with markup and appends it to the session log.
func logMessage(s *state.Session, msg string, a ...any) {
	s.AddMessage(renderer.ApplyMarkup(msg, a...))
}
