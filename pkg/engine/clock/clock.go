// Package clock provides the fixed-cadence timer that drives the session tick.
package clock

import (
	"sync"
	"time"
)

// Ticker delivers ticks at a fixed interval on C(). Unlike time.Ticker it can
// be paused (ticks are dropped, not queued) so menus can suspend the game
// without ticks piling up behind them.
type Ticker struct {
	mu     sync.Mutex
	paused bool

	ticker *time.Ticker
	out    chan time.Time
	stop   chan struct{}
	once   sync.Once
}

// NewTicker creates and starts a ticker with the given interval.
func NewTicker(interval time.Duration) *Ticker {
	t := &Ticker{
		ticker: time.NewTicker(interval),
		out:    make(chan time.Time, 1),
		stop:   make(chan struct{}),
	}
	go t.run()
	return t
}

func (t *Ticker) run() {
	for {
		select {
		case <-t.stop:
			return
		case now := <-t.ticker.C:
			t.mu.Lock()
			paused := t.paused
			t.mu.Unlock()
			if paused {
				continue
			}
			// Non-blocking send: a consumer that falls behind loses ticks
			// rather than receiving a burst of stale ones.
			select {
			case t.out <- now:
			default:
			}
		}
	}
}

// C returns the channel on which ticks are delivered.
func (t *Ticker) C() <-chan time.Time {
	return t.out
}

// Pause suspends tick delivery. Ticks that fire while paused are discarded.
func (t *Ticker) Pause() {
	t.mu.Lock()
	t.paused = true
	t.mu.Unlock()
	// Drain any tick already queued so Resume starts clean.
	select {
	case <-t.out:
	default:
	}
}

// Resume re-enables tick delivery.
func (t *Ticker) Resume() {
	t.mu.Lock()
	t.paused = false
	t.mu.Unlock()
}

// Stop shuts the ticker down. Safe to call more than once.
func (t *Ticker) Stop() {
	t.once.Do(func() {
		close(t.stop)
		t.ticker.Stop()
	})
}
