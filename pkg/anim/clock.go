// Package anim provides the time primitives the navigation bar animates
// with: host-driven clocks, eased tweens and a cancellable timeline of
// delayed tasks.
//
// Nothing in this package starts goroutines or sleeps. Time only moves when
// the host says so.
package anim

import "time"

// Clock is a monotonic time source supplied by the host.
type Clock interface {
	Now() time.Duration
}

// ManualClock only moves when told to. Hosts with a fixed tick rate advance
// it once per frame; tests use it as a spy clock.
type ManualClock struct {
	now time.Duration
}

// Now returns the current clock value.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d. Negative values are ignored so the
// clock stays monotonic.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// AdvanceSeconds is Advance for hosts that count frames in float seconds.
func (c *ManualClock) AdvanceSeconds(dt float64) {
	c.Advance(time.Duration(dt * float64(time.Second)))
}

// WallClock reports the monotonic time elapsed since it was created.
type WallClock struct {
	start time.Time
}

// NewWallClock returns a clock starting at zero now.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns the time elapsed since creation.
func (c *WallClock) Now() time.Duration {
	return time.Since(c.start)
}
