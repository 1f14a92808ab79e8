package controlbar

import "time"

// Scheduler abstracts deferred one-shot actions (transition timers) so the
// panel logic is independently testable with a fake clock.
type Scheduler interface {
	// Schedule runs fn after d elapses and returns a cancellation function.
	// Cancelling after the action has fired is a no-op.
	Schedule(d time.Duration, fn func()) (cancel func())
}

// TimerScheduler is the default Scheduler backed by the runtime timer wheel.
type TimerScheduler struct{}

// Schedule implements Scheduler via time.AfterFunc.
func (TimerScheduler) Schedule(d time.Duration, fn func()) (cancel func()) {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
