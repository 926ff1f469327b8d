package animation

import "time"

// Timer is a pending one-shot callback that can be stopped.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the timer, false if it had already fired or been stopped.
	Stop() bool
}

// TimerSource schedules one-shot callbacks. It is the scheduling source of
// the timer-driven strategy and can be replaced for deterministic tests.
type TimerSource interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemTimers is the TimerSource backed by time.AfterFunc. Callbacks run
// on their own goroutine.
var SystemTimers TimerSource = systemTimers{}

type systemTimers struct{}

func (systemTimers) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
