package animation

import (
	"time"

	"github.com/go-drift/valuekit/pkg/easing"
)

const (
	// DefaultDuration is used when Options.Duration is nil.
	DefaultDuration = 200 * time.Millisecond
	// DefaultHz is the tick rate of TimerDriven when Hz is zero.
	DefaultHz = 120.0
)

// Strategy selects how a run schedules its ticks. It is either
// FrameSynced or TimerDriven.
type Strategy interface {
	isStrategy()
}

// FrameSynced ticks once per frame of the Tween's FrameRequester.
// It is the default strategy.
type FrameSynced struct{}

// TimerDriven ticks on a fixed interval of 1/Hz seconds from the Tween's
// TimerSource. It keeps running when no frame loop is active.
type TimerDriven struct {
	// Hz is the tick rate. Zero means DefaultHz.
	Hz float64
}

func (FrameSynced) isStrategy() {}
func (TimerDriven) isStrategy() {}

// Options configures a single run started by Tween.To.
type Options struct {
	// From is the value at the start of the run.
	From float64

	// Duration of the run. Nil means DefaultDuration; zero or negative
	// completes the run immediately.
	Duration *time.Duration

	// Easing transforms linear progress. Nil means easing.Linear.
	Easing easing.Func

	// OnTick receives the interpolated value on every tick. Required.
	OnTick func(value float64)

	// OnEnd receives the final value once the run completes. It is not
	// called for an aborted run.
	OnEnd func(value float64)

	// Strategy picks the scheduling source. Nil means FrameSynced.
	Strategy Strategy
}

// DurationOf returns a pointer to d for use in Options.Duration.
func DurationOf(d time.Duration) *time.Duration {
	return &d
}
