package carousel

import "time"

// countdown is the subset of *time.Timer used by Run.
type countdown interface {
	C() <-chan time.Time
	Reset(d time.Duration)
	Stop()
}

type timerCountdown struct {
	t *time.Timer
}

func newTimerCountdown(d time.Duration) countdown {
	return &timerCountdown{t: time.NewTimer(d)}
}

func (tc *timerCountdown) C() <-chan time.Time { return tc.t.C }

// Reset relies on Go 1.23 timer semantics: no stale value is delivered
// after Reset, so the channel needs no draining.
func (tc *timerCountdown) Reset(d time.Duration) { tc.t.Reset(d) }

func (tc *timerCountdown) Stop() { tc.t.Stop() }
