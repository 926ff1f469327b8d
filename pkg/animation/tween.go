// Package animation drives a single value from one number to another over
// time.
//
// A Tween ticks either once per frame of a FrameRequester (the default,
// stepped by the host's render loop through StepFrames or DriveFrames) or on
// a fixed interval from a TimerSource. Time is read from the package Clock,
// which tests replace with SetClock.
package animation

import (
	stderrors "errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/go-drift/valuekit/pkg/easing"
	"github.com/go-drift/valuekit/pkg/errors"
	"github.com/go-drift/valuekit/pkg/interpolation"
	"github.com/go-drift/valuekit/pkg/numeric"
)

var (
	// ErrMissingOnTick is returned by To when Options.OnTick is nil.
	ErrMissingOnTick = stderrors.New("OnTick is required")
	// ErrInvalidHz is returned by To when TimerDriven.Hz is negative or not finite.
	ErrInvalidHz = stderrors.New("Hz must be a finite positive number")
	// ErrUnknownStrategy is returned by To for a Strategy it cannot schedule.
	ErrUnknownStrategy = stderrors.New("unknown strategy")
)

// Tween interpolates a single value towards a target over time.
//
// Each call to To starts a run. A Tween has at most one active run: starting
// a new one aborts the previous run, which then never calls OnTick or OnEnd
// again, even if one of its ticks was already scheduled.
//
// The zero value is ready to use. See ExampleTween for usage.
type Tween struct {
	// Frames schedules frame-synchronized runs. Nil means DefaultFrames().
	Frames FrameRequester
	// Timers schedules timer-driven runs. Nil means SystemTimers.
	Timers TimerSource

	mu         sync.Mutex
	generation uint64
	active     *run
	status     RunStatus

	listeners      map[int]func(RunStatus)
	nextListenerID int
}

// NewTween creates an idle tween using the default schedulers.
func NewTween() *Tween {
	return &Tween{}
}

// run is the state of one To call. Its fields other than frame, hasFrame
// and timer are immutable after creation; those three are guarded by the
// owning Tween's mutex.
type run struct {
	tw  *Tween
	gen uint64

	from, to float64
	duration time.Duration
	ease     easing.Func
	onTick   func(float64)
	onEnd    func(float64)
	start    time.Time

	frames   FrameRequester
	timers   TimerSource
	interval time.Duration

	frame    FrameHandle
	hasFrame bool
	timer    Timer
}

// To starts a run from opts.From to the target value.
//
// With a duration of zero or less, OnTick and then OnEnd are called with to
// before To returns, and any active run is left untouched. Otherwise an
// active run is aborted first. A timer-driven run delivers its first tick,
// at opts.From, before To returns; a frame-synchronized run delivers it on
// the next frame.
//
// To only fails on invalid options, in which case no state changes.
func (tw *Tween) To(to float64, opts Options) error {
	const op = "animation.Tween.To"

	if opts.OnTick == nil {
		return errors.New(op, errors.KindConfig, ErrMissingOnTick)
	}

	r := &run{
		tw:       tw,
		from:     opts.From,
		to:       to,
		duration: DefaultDuration,
		ease:     opts.Easing,
		onTick:   opts.OnTick,
		onEnd:    opts.OnEnd,
	}
	if opts.Duration != nil {
		r.duration = *opts.Duration
	}
	if r.ease == nil {
		r.ease = easing.Linear
	}

	strategy := opts.Strategy
	if p, ok := strategy.(*TimerDriven); ok && p != nil {
		strategy = *p
	}
	switch s := strategy.(type) {
	case nil, FrameSynced, *FrameSynced:
		r.frames = tw.frameRequester()
	case TimerDriven:
		interval, err := timerInterval(s.Hz)
		if err != nil {
			return errors.New(op, errors.KindConfig, err)
		}
		r.timers = tw.timerSource()
		r.interval = interval
	default:
		return errors.New(op, errors.KindConfig, fmt.Errorf("%w: %T", ErrUnknownStrategy, s))
	}

	if r.duration <= 0 {
		r.onTick(to)
		if r.onEnd != nil {
			r.onEnd(to)
		}
		return nil
	}

	tw.mu.Lock()
	var notes []statusNote
	if tw.abortLocked() {
		notes = append(notes, tw.setStatusLocked(StatusAborted))
	}
	tw.generation++
	r.gen = tw.generation
	r.start = Now()
	tw.active = r
	notes = append(notes, tw.setStatusLocked(StatusRunning))

	if r.frames != nil {
		r.scheduleLocked()
		tw.mu.Unlock()
		notify(notes)
		return nil
	}
	tw.mu.Unlock()
	notify(notes)

	r.guardedTick(Now())
	return nil
}

func timerInterval(hz float64) (time.Duration, error) {
	if hz == 0 {
		hz = DefaultHz
	}
	if math.IsNaN(hz) || math.IsInf(hz, 0) || hz < 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidHz, hz)
	}
	// 2^63 ns is the first interval time.Duration cannot hold.
	ns := float64(time.Second) / hz
	if ns >= 1<<63 {
		return 0, fmt.Errorf("%w: got %v, interval too long", ErrInvalidHz, hz)
	}
	return time.Duration(ns), nil
}

// Stop aborts the active run, if any, without calling its callbacks.
func (tw *Tween) Stop() {
	tw.mu.Lock()
	var notes []statusNote
	if tw.abortLocked() {
		notes = append(notes, tw.setStatusLocked(StatusAborted))
	}
	tw.mu.Unlock()
	notify(notes)
}

// Dispose stops the tween and removes all status listeners.
func (tw *Tween) Dispose() {
	tw.Stop()
	tw.mu.Lock()
	tw.listeners = nil
	tw.mu.Unlock()
}

// IsRunning returns true while a run is active.
func (tw *Tween) IsRunning() bool {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.active != nil
}

// Status returns the current run status.
func (tw *Tween) Status() RunStatus {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.status
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (tw *Tween) AddStatusListener(fn func(RunStatus)) func() {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.listeners == nil {
		tw.listeners = make(map[int]func(RunStatus))
	}
	id := tw.nextListenerID
	tw.nextListenerID++
	tw.listeners[id] = fn
	return func() {
		tw.mu.Lock()
		defer tw.mu.Unlock()
		delete(tw.listeners, id)
	}
}

func (tw *Tween) frameRequester() FrameRequester {
	if tw.Frames != nil {
		return tw.Frames
	}
	return defaultFrames
}

func (tw *Tween) timerSource() TimerSource {
	if tw.Timers != nil {
		return tw.Timers
	}
	return SystemTimers
}

// abortLocked invalidates the active run and releases its pending
// callback. It reports whether a run was active.
func (tw *Tween) abortLocked() bool {
	r := tw.active
	if r == nil {
		return false
	}
	r.releaseLocked()
	tw.active = nil
	tw.generation++
	return true
}

type statusNote struct {
	status    RunStatus
	listeners []func(RunStatus)
}

func (tw *Tween) setStatusLocked(status RunStatus) statusNote {
	if tw.status == status {
		return statusNote{}
	}
	tw.status = status
	note := statusNote{status: status}
	for _, l := range tw.listeners {
		note.listeners = append(note.listeners, l)
	}
	return note
}

// notify runs status listeners. It must be called without the lock held.
func notify(notes []statusNote) {
	for _, n := range notes {
		for _, l := range n.listeners {
			l(n.status)
		}
	}
}

// releaseLocked cancels the run's outstanding frame request or timer.
func (r *run) releaseLocked() {
	if r.hasFrame {
		r.frames.CancelFrame(r.frame)
		r.hasFrame = false
	}
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *run) scheduleLocked() {
	if r.frames != nil {
		r.frame = r.frames.RequestFrame(r.guardedTick)
		r.hasFrame = true
		return
	}
	r.timer = r.timers.AfterFunc(r.interval, r.timerTick)
}

func (r *run) timerTick() {
	defer errors.RecoverWithCallback("animation.Tween.tick", r.abandon)
	r.tick(Now())
}

// guardedTick runs a tick on the caller's goroutine. A panic from a
// callback aborts the run and then continues up to the caller.
func (r *run) guardedTick(now time.Time) {
	defer func() {
		if p := recover(); p != nil {
			r.abandon(p)
			panic(p)
		}
	}()
	r.tick(now)
}

// abandon aborts the run after one of its callbacks panicked.
func (r *run) abandon(any) {
	tw := r.tw
	tw.mu.Lock()
	var notes []statusNote
	if tw.active == r && tw.abortLocked() {
		notes = append(notes, tw.setStatusLocked(StatusAborted))
	}
	tw.mu.Unlock()
	notify(notes)
}

// progress returns elapsed/duration clamped to [0, 1], exactly 1 once the
// duration has passed.
func (r *run) progress(elapsed time.Duration) float64 {
	if elapsed >= r.duration {
		return 1
	}
	return numeric.Clamp(float64(elapsed)/float64(r.duration), 0, 1)
}

func (r *run) tick(now time.Time) {
	tw := r.tw

	tw.mu.Lock()
	if r.gen != tw.generation {
		// Superseded: make sure nothing of this run stays scheduled.
		r.releaseLocked()
		tw.mu.Unlock()
		return
	}
	r.hasFrame = false
	r.timer = nil
	tw.mu.Unlock()

	t := r.progress(now.Sub(r.start))
	value := interpolation.Lerp(r.from, r.to, r.ease(t))
	r.onTick(value)

	tw.mu.Lock()
	if r.gen != tw.generation {
		tw.mu.Unlock()
		return
	}
	if t < 1 {
		r.scheduleLocked()
		tw.mu.Unlock()
		return
	}
	tw.active = nil
	note := tw.setStatusLocked(StatusCompleted)
	tw.mu.Unlock()
	notify([]statusNote{note})

	if r.onEnd != nil {
		r.onEnd(value)
	}
}
