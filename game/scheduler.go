package game

import "time"

// Clock abstracts time for the scheduler
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Scheduler is a polled periodic timer. The frontend loop calls Poll every
// frame; the callback fires once an interval has elapsed since the current
// phase origin. Changing the interval is always Stop followed by Start, which
// moves the phase origin to now.
type Scheduler struct {
	clock    Clock
	interval time.Duration
	callback func()
	origin   time.Time
	running  bool
}

func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = realClock{}
	}
	return &Scheduler{clock: clock}
}

func (s *Scheduler) Start(interval time.Duration, callback func()) {
	s.interval = interval
	s.callback = callback
	s.origin = s.clock.Now()
	s.running = interval > 0 && callback != nil
}

func (s *Scheduler) Stop() {
	s.running = false
}

// Reschedule restarts the current callback at a new interval
func (s *Scheduler) Reschedule(interval time.Duration) {
	cb := s.callback
	s.Stop()
	s.Start(interval, cb)
}

// Poll fires the callback at most once. Ticks missed by more than one
// interval (a stalled frame loop) are dropped rather than replayed.
func (s *Scheduler) Poll() bool {
	if !s.running {
		return false
	}
	now := s.clock.Now()
	elapsed := now.Sub(s.origin)
	if elapsed < s.interval {
		return false
	}
	if elapsed >= 2*s.interval {
		s.origin = now
	} else {
		s.origin = s.origin.Add(s.interval)
	}
	s.callback()
	return true
}

func (s *Scheduler) Running() bool {
	return s.running
}

func (s *Scheduler) Interval() time.Duration {
	return s.interval
}
