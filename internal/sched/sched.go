// Package sched runs deferred callbacks against simulated time.
//
// The scheduler never owns a goroutine: time moves only when the tick loop
// calls Advance, and callbacks fire synchronously inside that call.
package sched

import (
	"sort"
	"time"
)

// Timer is a pending callback. The zero value is inactive.
type Timer struct {
	at     time.Duration
	fn     func()
	seq    uint64
	active bool
}

// Cancel stops the timer. Cancelling a fired or nil timer is a no-op.
func (t *Timer) Cancel() {
	if t == nil {
		return
	}
	t.active = false
	t.fn = nil
}

// Active reports whether the timer is still waiting to fire.
func (t *Timer) Active() bool {
	return t != nil && t.active
}

// Deadline returns the simulated time at which the timer fires.
func (t *Timer) Deadline() time.Duration {
	if t == nil {
		return 0
	}
	return t.at
}

// Scheduler holds timers keyed on a simulated clock starting at zero.
type Scheduler struct {
	now     time.Duration
	seq     uint64
	pending []*Timer
}

// New creates a scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current simulated time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After arranges for fn to run once d of simulated time has passed.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{at: s.now + d, fn: fn, seq: s.seq, active: true}
	s.pending = append(s.pending, t)
	return t
}

// Advance moves the clock forward by dt and runs every timer that came due,
// earliest deadline first. Timers cancelled by an earlier callback in the same
// Advance do not run.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	s.now += dt

	var due []*Timer
	kept := s.pending[:0]
	for _, t := range s.pending {
		switch {
		case !t.active:
		case t.at <= s.now:
			due = append(due, t)
		default:
			kept = append(kept, t)
		}
	}
	s.pending = kept

	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})

	for _, t := range due {
		if !t.active {
			continue
		}
		fn := t.fn
		t.active = false
		t.fn = nil
		if fn != nil {
			fn()
		}
	}
}

// Pending returns the number of active timers.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.pending {
		if t.active {
			n++
		}
	}
	return n
}

// Reset cancels every timer and rewinds the clock to zero.
func (s *Scheduler) Reset() {
	for _, t := range s.pending {
		t.Cancel()
	}
	s.pending = nil
	s.now = 0
}
