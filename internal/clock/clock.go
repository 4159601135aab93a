// Package clock provides the timestamps entries are stamped with.
package clock

import (
	"sync"
	"time"
)

// Clock is the source of timestamps in microseconds since the Unix epoch.
type Clock interface {
	NowMicro() uint64
}

// SystemClock reads the wall clock of the operating system. Consecutive calls never return a smaller value than an
// earlier call, even when the wall clock is set back.
//
// SystemClock is safe to use from multiple Go routines concurrently.
type SystemClock struct {
	mutex sync.Mutex
	last  uint64
}

// SystemClock implements Clock.
var _ Clock = (*SystemClock)(nil)

// NewSystemClock creates a new clock reading the wall clock.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// NowMicro returns the current time in microseconds since the Unix epoch.
func (c *SystemClock) NowMicro() uint64 {
	now := uint64(max(time.Now().UnixMicro(), 0)) //nolint:gosec // negative values are clamped

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.last = max(c.last, now)
	return c.last
}

// ManualClock is a clock which is controlled by the caller. Every call to NowMicro returns the current value and
// advances it by Step afterward. It is meant for tests which need predictable timestamps.
//
// ManualClock is NOT safe to use concurrently.
type ManualClock struct {
	// Now is the value the next call to NowMicro returns.
	Now uint64

	// Step is added to Now after every call to NowMicro. A zero step simulates a clock with coarse resolution.
	Step uint64
}

// ManualClock implements Clock.
var _ Clock = (*ManualClock)(nil)

// NowMicro returns the current value and advances the clock by Step.
func (c *ManualClock) NowMicro() uint64 {
	now := c.Now
	c.Now += c.Step
	return now
}

// Set moves the clock to the given value.
func (c *ManualClock) Set(now uint64) {
	c.Now = now
}
