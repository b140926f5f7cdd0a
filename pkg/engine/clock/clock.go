// Package clock measures per-tick wall-clock time for rate normalization and
// the FPS readout.
package clock

import "time"

// MinElapsed is the smallest frame time used as a divisor.
const MinElapsed = time.Millisecond

// FrameClock measures how long each loop iteration takes.
type FrameClock struct {
	now func() time.Time
}

// New creates a clock backed by time.Now
func New() *FrameClock {
	return &FrameClock{now: time.Now}
}

// NewWithSource creates a clock that reads the time from now.
// Tests use it to drive the clock deterministically.
func NewWithSource(now func() time.Time) *FrameClock {
	return &FrameClock{now: now}
}

// Start marks the beginning of a tick
func (c *FrameClock) Start() time.Time {
	return c.now()
}

// ElapsedSince returns the time passed since start
func (c *FrameClock) ElapsedSince(start time.Time) time.Duration {
	return c.now().Sub(start)
}

// Millis returns elapsed in milliseconds, never less than one.
func Millis(elapsed time.Duration) float64 {
	if elapsed < MinElapsed {
		elapsed = MinElapsed
	}
	return float64(elapsed) / float64(time.Millisecond)
}

// FPS converts a frame time into whole frames per second.
// Sub-millisecond frames count as one millisecond.
func FPS(elapsed time.Duration) int {
	ms := elapsed.Milliseconds()
	if ms < 1 {
		ms = 1
	}
	return int(1000 / ms)
}
