package engine

import "time"

// TimeProvider abstracts the clock the gravity timer reads from, so
// tests can drive ticks deterministically.
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider is the real system clock with monotonic
// readings.
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates the real-clock provider.
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with a monotonic clock reading.
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
