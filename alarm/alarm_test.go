package alarm

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestScheduleEndFloorsDelay(t *testing.T) {
	fired := make(chan time.Time, 1)

	s := NewScheduler(func() {
		fired <- time.Now()
	}, func() {})

	defer s.CancelAll()

	// a due time in the past must still wait out the one-second floor
	armed := time.Now()
	s.ScheduleEnd(armed.Add(-1 * time.Minute))

	select {
	case at := <-fired:
		if elapsed := at.Sub(armed); elapsed < 900*time.Millisecond {
			t.Fatalf("wake-up fired after %v, want at least ~1s", elapsed)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("end wake-up never fired")
	}
}

func TestScheduleEndReplacesOutstandingWakeup(t *testing.T) {
	var fired atomic.Int32

	s := NewScheduler(func() {
		fired.Add(1)
	}, func() {})

	defer s.CancelAll()

	s.ScheduleEnd(time.Now().Add(1100 * time.Millisecond))
	s.ScheduleEnd(time.Now().Add(1300 * time.Millisecond))

	time.Sleep(2500 * time.Millisecond)

	if got := fired.Load(); got != 1 {
		t.Fatalf("wake-up fired %d times, want 1", got)
	}
}

func TestCancelAllStopsWakeups(t *testing.T) {
	var fired atomic.Int32

	s := NewScheduler(func() {
		fired.Add(1)
	}, func() {
		fired.Add(1)
	})

	s.ScheduleEnd(time.Now().Add(1100 * time.Millisecond))
	s.ScheduleRefresh()
	s.CancelAll()

	time.Sleep(1500 * time.Millisecond)

	if got := fired.Load(); got != 0 {
		t.Fatalf("wake-up fired %d times after cancel", got)
	}
}

func TestCancelAllIsIdempotent(t *testing.T) {
	s := NewScheduler(func() {}, func() {})

	s.ScheduleRefresh()
	s.CancelAll()
	s.CancelAll()
}
