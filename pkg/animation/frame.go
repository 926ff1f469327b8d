package animation

import (
	"context"
	"slices"
	"sync"
	"time"
)

// FrameHandle identifies a pending frame request.
type FrameHandle uint64

// FrameRequester is the scheduling source of the frame-synchronized
// strategy: it runs each requested callback once, on the next frame.
type FrameRequester interface {
	// RequestFrame schedules cb for the next frame. cb receives the frame
	// timestamp.
	RequestFrame(cb func(now time.Time)) FrameHandle
	// CancelFrame removes a pending request. Cancelling a request that
	// already ran, or was already cancelled, does nothing.
	CancelFrame(h FrameHandle)
}

// FrameScheduler collects frame requests and runs them when the frame loop
// calls Step.
//
// Callbacks requested while a step is running are deferred to the next
// step, so an animation that re-requests itself advances exactly once per
// frame. All methods are safe for concurrent use; callbacks run on the
// goroutine that calls Step.
type FrameScheduler struct {
	mu      sync.Mutex
	next    FrameHandle
	order   []FrameHandle
	pending map[FrameHandle]func(time.Time)
}

// NewFrameScheduler creates an empty scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{
		pending: make(map[FrameHandle]func(time.Time)),
	}
}

// RequestFrame implements FrameRequester.
func (s *FrameScheduler) RequestFrame(cb func(now time.Time)) FrameHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	h := s.next
	s.pending[h] = cb
	s.order = append(s.order, h)
	return h
}

// CancelFrame implements FrameRequester.
func (s *FrameScheduler) CancelFrame(h FrameHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pending[h]; !ok {
		return
	}
	delete(s.pending, h)
	if i := slices.Index(s.order, h); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

// Pending returns the number of requests waiting for the next step.
func (s *FrameScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Step runs every callback that was pending when the step began, in
// request order, with the current clock time. A callback cancelled by an
// earlier callback of the same step does not run. Step returns the number
// of callbacks it ran.
func (s *FrameScheduler) Step() int {
	s.mu.Lock()
	batch := s.order
	s.order = nil
	s.mu.Unlock()

	// A panicking callback leaves the rest of the batch for the next step.
	next := 0
	defer func() {
		if next < len(batch) {
			s.mu.Lock()
			s.order = append(slices.Clone(batch[next:]), s.order...)
			s.mu.Unlock()
		}
	}()

	now := Now()
	ran := 0
	for next < len(batch) {
		h := batch[next]
		next++
		s.mu.Lock()
		cb, ok := s.pending[h]
		delete(s.pending, h)
		s.mu.Unlock()
		if !ok {
			continue
		}
		cb(now)
		ran++
	}
	return ran
}

// Drive steps the scheduler every interval until ctx is done, acting as a
// display refresh loop. It blocks and returns ctx.Err().
func (s *FrameScheduler) Drive(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Step()
		}
	}
}

var defaultFrames = NewFrameScheduler()

// DefaultFrames returns the package-level scheduler used by tweens that
// have no FrameRequester of their own.
func DefaultFrames() *FrameScheduler { return defaultFrames }

// StepFrames advances the default scheduler by one frame.
// This should be called once per frame from the host's render loop.
func StepFrames() int { return defaultFrames.Step() }

// HasPendingFrames returns true if the default scheduler has requests
// waiting for the next frame.
func HasPendingFrames() bool { return defaultFrames.Pending() > 0 }

// DriveFrames steps the default scheduler every interval until ctx is done.
func DriveFrames(ctx context.Context, interval time.Duration) error {
	return defaultFrames.Drive(ctx, interval)
}
