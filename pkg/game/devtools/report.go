// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/gookit/color"

	"liftoff/pkg/game/state"
)

const reportFilename = "liftoff-report.txt"

// gaugeBar renders a meter as a fixed-width ASCII bar for the report.
func gaugeBar(v float64) string {
	const width = 20
	filled := int(math.Round(v / state.MeterMax * width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "#"
		} else {
			bar += "."
		}
	}
	return fmt.Sprintf("[%s] %3.0f", bar, math.Round(v))
}

// SaveReport writes a full debug dump of the session to liftoff-report.txt:
// meters, flags, counters and the message log. Format is human- and
// LLM-readable (sections, key: value, consistent structure).
func SaveReport(s *state.Session) (string, error) {
	absPath, err := filepath.Abs(reportFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	fmt.Fprintln(f, "=== LIFTOFF SESSION REPORT ===")
	fmt.Fprintln(f)

	fmt.Fprintln(f, "--- Meters ---")
	fmt.Fprintf(f, "power:  %s\n", gaugeBar(s.Power))
	fmt.Fprintf(f, "fuel:   %s\n", gaugeBar(s.Fuel))
	fmt.Fprintf(f, "canopy: %s\n", gaugeBar(s.ClearProgress))
	fmt.Fprintln(f)

	fmt.Fprintln(f, "--- Flags ---")
	fmt.Fprintf(f, "mode:   %s\n", s.Mode)
	fmt.Fprintf(f, "won:    %v\n", s.Won)
	fmt.Fprintf(f, "locked: %v\n", s.Locked)
	fmt.Fprintln(f)

	fmt.Fprintln(f, "--- Counters ---")
	fmt.Fprintf(f, "presses:    %d\n", s.PressCount)
	fmt.Fprintf(f, "ticks:      %d\n", s.TickCount)
	fmt.Fprintf(f, "peak power: %.1f\n", s.PeakPower)
	fmt.Fprintln(f)

	fmt.Fprintln(f, "--- Messages (newest last) ---")
	if len(s.Messages) == 0 {
		fmt.Fprintln(f, "(none)")
	} else {
		for _, msg := range s.Messages {
			// Messages carry ANSI styling from the markup layer; strip it for the file.
			fmt.Fprintf(f, "- %s\n", color.ClearCode(msg))
		}
	}

	return absPath, nil
}
