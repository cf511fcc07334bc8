// Package menu provides the in-game session menu using the generic menu system.
package menu

import (
	engineinput "liftoff/pkg/engine/input"
)

// SessionMenuAction represents the action type for session menu items.
type SessionMenuAction int

const (
	SessionMenuActionResume SessionMenuAction = iota
	SessionMenuActionRestart
	SessionMenuActionBindings
	SessionMenuActionQuit
)

// SessionMenuItem represents a menu item in the session menu.
type SessionMenuItem struct {
	Label  string
	Action SessionMenuAction
}

// GetLabel returns the display label for this menu item.
func (m *SessionMenuItem) GetLabel() string {
	return m.Label
}

// IsSelectable returns whether this item can be selected.
func (m *SessionMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *SessionMenuItem) GetHelpText() string {
	switch m.Action {
	case SessionMenuActionResume:
		return "Back to the launch pad"
	case SessionMenuActionRestart:
		return "Reset power, fuel and canopy for a fresh attempt"
	case SessionMenuActionBindings:
		return "Configure keyboard and gamepad bindings"
	case SessionMenuActionQuit:
		return "Leave the game"
	default:
		return ""
	}
}

// SessionMenuHandler handles the session menu.
type SessionMenuHandler struct {
	selectedAction SessionMenuAction
	activated      bool
}

// NewSessionMenuHandler creates a new session menu handler.
func NewSessionMenuHandler() *SessionMenuHandler {
	return &SessionMenuHandler{
		selectedAction: SessionMenuActionResume,
	}
}

// GetTitle returns the menu title.
func (h *SessionMenuHandler) GetTitle() string {
	return "Liftoff"
}

// GetInstructions returns the menu instructions.
func (h *SessionMenuHandler) GetInstructions(selected MenuItem) string {
	return "Use up/down to select, Space/Enter to activate, m or q to close"
}

// OnSelect is called when an item is selected.
func (h *SessionMenuHandler) OnSelect(item MenuItem, index int) {
	if sessionItem, ok := item.(*SessionMenuItem); ok {
		h.selectedAction = sessionItem.Action
	}
}

// OnActivate is called when an item is activated.
func (h *SessionMenuHandler) OnActivate(item MenuItem, index int, intents <-chan engineinput.Intent) (shouldClose bool, helpText string) {
	if sessionItem, ok := item.(*SessionMenuItem); ok {
		h.selectedAction = sessionItem.Action
		h.activated = true
		// Every session menu action closes the menu; the caller acts on
		// SelectedAction afterwards (restart, bindings sub-menu, quit).
		return true, ""
	}
	return false, ""
}

// OnExit is called when the menu is exited.
func (h *SessionMenuHandler) OnExit() {
	if !h.activated {
		h.selectedAction = SessionMenuActionResume
	}
}

// SelectedAction returns the action the player activated, or Resume if the
// menu was dismissed.
func (h *SessionMenuHandler) SelectedAction() SessionMenuAction {
	return h.selectedAction
}

// GetMenuItems returns the menu items for the session menu.
func (h *SessionMenuHandler) GetMenuItems() []MenuItem {
	return []MenuItem{
		&SessionMenuItem{Label: "Resume", Action: SessionMenuActionResume},
		&SessionMenuItem{Label: "Restart Launch", Action: SessionMenuActionRestart},
		&SessionMenuItem{Label: "Bindings", Action: SessionMenuActionBindings},
		&SessionMenuItem{Label: "Quit", Action: SessionMenuActionQuit},
	}
}
