package app

import "time"

// Debouncer coalesces rapid triggers into a single deferred call. The
// caller owns the timer handle: Schedule voids the previous handle and
// hands back its replacement, so at most one timer is ever live.
type Debouncer struct {
	Delay time.Duration
}

func (d Debouncer) Schedule(prev *time.Timer, fn func()) *time.Timer {
	if prev != nil {
		prev.Stop()
	}
	return time.AfterFunc(d.Delay, fn)
}
