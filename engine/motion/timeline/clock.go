package timeline

import (
	"context"
	"sync"
	"time"

	"github.com/npillmayer/kinetype/core"
)

// Clock is a source of time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns the current wall time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a clock which moves only when told to.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock creates a manual clock set to start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current time of the clock.
func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Set sets the clock to t.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Loop calls tick fps times per second until ctx is done, passing the time
// in seconds since the previous call as measured by clock. Loop blocks and
// returns the context's error.
func Loop(ctx context.Context, clock Clock, fps int, tick func(dt float64)) error {
	if fps <= 0 {
		return core.Error(core.EINVALID, "frame rate must be positive, is %d", fps)
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	return Drive(ctx, clock, ticker.C, tick)
}

// Drive calls tick for every value received from ticks, passing the time
// in seconds since the previous call as measured by clock. It returns when
// ctx is done or ticks is closed.
func Drive(ctx context.Context, clock Clock, ticks <-chan time.Time, tick func(dt float64)) error {
	last := clock.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			now := clock.Now()
			dt := now.Sub(last).Seconds()
			last = now
			if dt < 0 {
				dt = 0
			}
			tick(dt)
		}
	}
}
