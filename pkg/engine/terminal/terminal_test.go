package terminal

import "testing"

func TestWidthNeverBelowMinimum(t *testing.T) {
	// Under `go test` stdout is usually a pipe, which exercises the
	// fallback; on a real terminal the clamp still applies.
	if got := Width(); got < MinWidth {
		t.Errorf("got width %d, want at least %d", got, MinWidth)
	}
}
