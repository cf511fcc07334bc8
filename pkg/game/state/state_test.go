package state

import "testing"

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession()

	if s.Mode != ModeIgnite {
		t.Errorf("got mode %v, want Ignite", s.Mode)
	}
	if s.Power != MeterMin {
		t.Errorf("got power %v, want %v", s.Power, MeterMin)
	}
	if s.Fuel != MeterMax {
		t.Errorf("got fuel %v, want %v", s.Fuel, MeterMax)
	}
	if s.ClearProgress != MeterMin {
		t.Errorf("got clear progress %v, want %v", s.ClearProgress, MeterMin)
	}
	if s.Won || s.Locked {
		t.Errorf("got won=%v locked=%v, want both false", s.Won, s.Locked)
	}
	if len(s.Messages) != 0 {
		t.Errorf("got %d messages, want 0", len(s.Messages))
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-5, 0},
		{0, 0},
		{50, 50},
		{100, 100},
		{105, 100},
	}

	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestResetKeepsHints(t *testing.T) {
	s := NewSession()
	s.AddHint("keep pressing")
	s.AddMessage("hello")
	s.Power = 60
	s.Won = true
	s.Locked = true
	s.PressCount = 7
	s.TickCount = 3
	s.PeakPower = 60

	s.Reset()

	if s.Power != MeterMin || s.Won || s.Locked {
		t.Errorf("reset left state behind: power=%v won=%v locked=%v", s.Power, s.Won, s.Locked)
	}
	if s.PressCount != 0 || s.TickCount != 0 || s.PeakPower != 0 {
		t.Error("reset left counters behind")
	}
	if len(s.Messages) != 0 {
		t.Errorf("got %d messages after reset, want 0", len(s.Messages))
	}
	if len(s.Hints) != 1 {
		t.Errorf("got %d hints after reset, want 1", len(s.Hints))
	}
}

func TestAddMessageCapsLog(t *testing.T) {
	s := NewSession()
	for _, msg := range []string{"one", "two", "three", "four", "five", "six", "seven"} {
		s.AddMessage(msg)
	}

	if len(s.Messages) != 5 {
		t.Fatalf("got %d messages, want 5", len(s.Messages))
	}
	if s.Messages[0] != "three" {
		t.Errorf("got oldest message %q, want %q", s.Messages[0], "three")
	}
	if s.Messages[4] != "seven" {
		t.Errorf("got newest message %q, want %q", s.Messages[4], "seven")
	}
}

func TestModeString(t *testing.T) {
	if got := ModeIgnite.String(); got != "Ignite" {
		t.Errorf("got %q, want Ignite", got)
	}
	if got := ModeRefuel.String(); got != "Refuel" {
		t.Errorf("got %q, want Refuel", got)
	}
}
