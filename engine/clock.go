package engine

import "time"

// Clock is the monotonic time source and sleep primitive all timed logic
// runs against. The frame loop owns the only production instance; tests
// substitute a MockClock.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// MonotonicClock provides real system time with monotonic clock readings
type MonotonicClock struct{}

// NewMonotonicClock creates a new monotonic clock
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{}
}

// Now returns the current time with monotonic clock reading
func (c *MonotonicClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for d; non-positive durations return immediately
func (c *MonotonicClock) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
