package devtools

import (
	"os"
	"strings"
	"testing"

	"liftoff/pkg/game/state"
)

func TestSaveReport(t *testing.T) {
	t.Chdir(t.TempDir())

	s := state.NewSession()
	s.Power = 42
	s.PressCount = 9
	s.AddMessage("ignition test")

	path, err := SaveReport(s)
	if err != nil {
		t.Fatalf("SaveReport failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	report := string(data)

	for _, want := range []string{
		"--- Meters ---",
		"--- Flags ---",
		"--- Counters ---",
		"mode:   Ignite",
		"presses:    9",
		"- ignition test",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestGaugeBar(t *testing.T) {
	if got := gaugeBar(0); !strings.HasPrefix(got, "[....................]") {
		t.Errorf("got %q, want an empty bar", got)
	}
	if got := gaugeBar(100); !strings.HasPrefix(got, "[####################]") {
		t.Errorf("got %q, want a full bar", got)
	}
	if got := gaugeBar(50); !strings.Contains(got, "##########..........") {
		t.Errorf("got %q, want a half bar", got)
	}
}
