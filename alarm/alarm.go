// Package alarm schedules the end and refresh wake-ups on the process
// timers
package alarm

import (
	"sync"
	"time"
)

const (
	// minDelay floors the end wake-up so it never fires in the past.
	minDelay = 1 * time.Second
	// refreshPeriod drives the recurring indicator refresh.
	refreshPeriod = 1 * time.Minute
)

// Scheduler arms at most one end wake-up and one refresh wake-up at a time.
// Re-arming replaces the outstanding wake-up of the same kind.
type Scheduler struct {
	onEnd       func()
	onRefresh   func()
	endTimer    *time.Timer
	refreshStop chan struct{}
	mu          sync.Mutex
}

// NewScheduler creates a scheduler that invokes onEnd when the end wake-up
// fires and onRefresh on every refresh tick. Both callbacks run on their own
// goroutine.
func NewScheduler(onEnd, onRefresh func()) *Scheduler {
	return &Scheduler{
		onEnd:     onEnd,
		onRefresh: onRefresh,
	}
}

// ScheduleEnd arms the one-shot end wake-up for the given time, replacing
// any outstanding one. The delay is floored at one second.
func (s *Scheduler) ScheduleEnd(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.endTimer != nil {
		s.endTimer.Stop()
	}

	delay := time.Until(at)
	if delay < minDelay {
		delay = minDelay
	}

	s.endTimer = time.AfterFunc(delay, s.onEnd)
}

// ScheduleRefresh arms the recurring refresh wake-up, replacing any
// outstanding one.
func (s *Scheduler) ScheduleRefresh() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopRefresh()

	stop := make(chan struct{})
	s.refreshStop = stop

	go func() {
		ticker := time.NewTicker(refreshPeriod)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				s.onRefresh()
			}
		}
	}()
}

// CancelAll cancels both wake-ups.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.endTimer != nil {
		s.endTimer.Stop()
		s.endTimer = nil
	}

	s.stopRefresh()
}

// stopRefresh must be called with the mutex held.
func (s *Scheduler) stopRefresh() {
	if s.refreshStop != nil {
		close(s.refreshStop)
		s.refreshStop = nil
	}
}
