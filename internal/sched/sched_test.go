package sched

import (
	"testing"
	"time"
)

func TestAfterFiresOnDeadline(t *testing.T) {
	s := New()
	fired := 0
	tm := s.After(5*time.Second, func() { fired++ })

	s.Advance(4900 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("fired early at %v", s.Now())
	}
	if !tm.Active() {
		t.Error("Active() = false before deadline, expected true")
	}

	s.Advance(100 * time.Millisecond)
	if fired != 1 {
		t.Errorf("fired = %d, expected 1", fired)
	}
	if tm.Active() {
		t.Error("Active() = true after firing, expected false")
	}

	s.Advance(10 * time.Second)
	if fired != 1 {
		t.Errorf("fired = %d after extra time, expected 1", fired)
	}
}

func TestCancelPreventsCallback(t *testing.T) {
	s := New()
	fired := false
	tm := s.After(time.Second, func() { fired = true })
	tm.Cancel()
	s.Advance(2 * time.Second)

	if fired {
		t.Error("cancelled timer fired")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}

	var nilTimer *Timer
	nilTimer.Cancel()
	if nilTimer.Active() {
		t.Error("nil timer reported active")
	}
}

func TestCallbacksRunInDeadlineOrder(t *testing.T) {
	s := New()
	var order []string
	s.After(3*time.Second, func() { order = append(order, "c") })
	s.After(1*time.Second, func() { order = append(order, "a") })
	s.After(2*time.Second, func() { order = append(order, "b") })

	s.Advance(5 * time.Second)

	want := "abc"
	got := ""
	for _, o := range order {
		got += o
	}
	if got != want {
		t.Errorf("order = %q, expected %q", got, want)
	}
}

func TestCallbackCancelsLaterTimer(t *testing.T) {
	s := New()
	var later *Timer
	laterFired := false
	s.After(time.Second, func() { later.Cancel() })
	later = s.After(2*time.Second, func() { laterFired = true })

	s.Advance(3 * time.Second)
	if laterFired {
		t.Error("timer cancelled by an earlier callback still fired")
	}
}

func TestReset(t *testing.T) {
	s := New()
	fired := false
	tm := s.After(time.Second, func() { fired = true })
	s.Advance(500 * time.Millisecond)
	s.Reset()

	if s.Now() != 0 {
		t.Errorf("Now() = %v after Reset, expected 0", s.Now())
	}
	if tm.Active() {
		t.Error("timer still active after Reset")
	}
	s.Advance(time.Hour)
	if fired {
		t.Error("timer fired after Reset")
	}
}
