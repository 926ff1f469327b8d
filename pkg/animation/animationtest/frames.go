package animationtest

import (
	"sync"
	"time"

	"github.com/go-drift/valuekit/pkg/animation"
)

// FrameRecorder wraps a FrameScheduler and records every request and
// cancellation made through it.
type FrameRecorder struct {
	*animation.FrameScheduler

	mu        sync.Mutex
	requested []animation.FrameHandle
	cancelled []animation.FrameHandle
}

// NewFrameRecorder returns a recorder around a fresh FrameScheduler.
func NewFrameRecorder() *FrameRecorder {
	return &FrameRecorder{FrameScheduler: animation.NewFrameScheduler()}
}

// RequestFrame implements animation.FrameRequester.
func (r *FrameRecorder) RequestFrame(cb func(now time.Time)) animation.FrameHandle {
	h := r.FrameScheduler.RequestFrame(cb)
	r.mu.Lock()
	r.requested = append(r.requested, h)
	r.mu.Unlock()
	return h
}

// CancelFrame implements animation.FrameRequester.
func (r *FrameRecorder) CancelFrame(h animation.FrameHandle) {
	r.mu.Lock()
	r.cancelled = append(r.cancelled, h)
	r.mu.Unlock()
	r.FrameScheduler.CancelFrame(h)
}

// Requested returns the handles requested so far.
func (r *FrameRecorder) Requested() []animation.FrameHandle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]animation.FrameHandle(nil), r.requested...)
}

// Cancelled returns the handles cancelled so far.
func (r *FrameRecorder) Cancelled() []animation.FrameHandle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]animation.FrameHandle(nil), r.cancelled...)
}

// StepAt sets clock to t and runs one frame.
func (r *FrameRecorder) StepAt(clock *FakeClock, t time.Time) int {
	clock.Set(t)
	return r.Step()
}
