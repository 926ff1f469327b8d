// Package animationtest provides deterministic time and scheduling sources
// for testing code built on package animation.
package animationtest

import (
	"slices"
	"sync"
	"time"

	"github.com/go-drift/valuekit/pkg/animation"
)

// FakeClock provides controllable time for deterministic animation tests.
// It implements animation.Clock and animation.TimerSource; timers only fire
// from Advance, FirePending or FireNext, on the calling goroutine.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*fakeTimer
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Install makes c the animation clock and returns a function restoring the
// previous one, for use with t.Cleanup.
func (c *FakeClock) Install() (restore func()) {
	prev := animation.SetClock(c)
	return func() { animation.SetClock(prev) }
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set sets the clock to an exact time without firing timers.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// AfterFunc implements animation.TimerSource.
func (c *FakeClock) AfterFunc(d time.Duration, f func()) animation.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &fakeTimer{clock: c, due: c.now.Add(d), seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every timer that becomes
// due on the way in due order. The clock reads each timer's due time while
// it fires. Timers scheduled by a callback fire too if they fall due
// within d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		t := c.popDueLocked(target)
		if t == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		if t.due.After(c.now) {
			c.now = t.due
		}
		c.mu.Unlock()
		t.f()
	}
}

// FirePending fires the timers that are pending when it is called, in due
// order, regardless of their due time and without moving the clock.
// Timers scheduled by those callbacks stay pending. It returns the number
// of timers fired.
func (c *FakeClock) FirePending() int {
	c.mu.Lock()
	batch := slices.Clone(c.timers)
	c.timers = nil
	c.mu.Unlock()

	slices.SortFunc(batch, compareTimers)
	for _, t := range batch {
		t.f()
	}
	return len(batch)
}

// FireNext fires the earliest pending timer without moving the clock.
// It reports whether a timer fired.
func (c *FakeClock) FireNext() bool {
	c.mu.Lock()
	t := c.popDueLocked(time.Time{})
	c.mu.Unlock()
	if t == nil {
		return false
	}
	t.f()
	return true
}

// PendingTimers returns the number of timers that have not fired or been
// stopped.
func (c *FakeClock) PendingTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// popDueLocked removes and returns the earliest timer due at or before
// limit. A zero limit accepts any timer.
func (c *FakeClock) popDueLocked(limit time.Time) *fakeTimer {
	if len(c.timers) == 0 {
		return nil
	}
	i := 0
	for j, t := range c.timers {
		if compareTimers(t, c.timers[i]) < 0 {
			i = j
		}
	}
	t := c.timers[i]
	if !limit.IsZero() && t.due.After(limit) {
		return nil
	}
	c.timers = slices.Delete(c.timers, i, i+1)
	return t
}

func compareTimers(a, b *fakeTimer) int {
	if c := a.due.Compare(b.due); c != 0 {
		return c
	}
	switch {
	case a.seq < b.seq:
		return -1
	case a.seq > b.seq:
		return 1
	}
	return 0
}

type fakeTimer struct {
	clock *FakeClock
	due   time.Time
	seq   uint64
	f     func()
}

func (t *fakeTimer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()
	i := slices.Index(c.timers, t)
	if i < 0 {
		return false
	}
	c.timers = slices.Delete(c.timers, i, i+1)
	return true
}
