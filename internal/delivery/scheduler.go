package delivery

import "time"

// CancelFunc stops a scheduled callback. Calling it after the callback has
// fired is a no-op.
type CancelFunc func()

// Scheduler decouples the stage timers from the wall clock so the simulation
// is testable without sleeping.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) CancelFunc
}

type timerScheduler struct{}

// NewTimerScheduler returns the production scheduler backed by time.AfterFunc.
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) Schedule(delay time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(delay, fn)
	return func() { t.Stop() }
}
