// Package terminal probes the controlling terminal for the layout hints the
// TUI renderer needs.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	// FallbackWidth is used when stdout is not a terminal (pipes, tests).
	FallbackWidth = 80

	// MinWidth keeps full-width chrome like the message pane divider
	// drawable on very narrow terminals.
	MinWidth = 40
)

// Width returns the usable terminal width in columns, clamped to MinWidth.
func Width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return FallbackWidth
	}
	if w < MinWidth {
		return MinWidth
	}
	return w
}
