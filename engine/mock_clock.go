package engine

import (
	"sync"
	"time"
)

// MockClock provides a controllable time source for testing. Sleep advances
// the mocked time instead of blocking and records every requested duration.
type MockClock struct {
	mu      sync.RWMutex
	current time.Time
	sleeps  []time.Duration
}

// NewMockClock creates a new mock clock starting at startTime
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{current: startTime}
}

// Now returns the current mocked time
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Sleep records d and advances the mocked time by it when positive
func (m *MockClock) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sleeps = append(m.sleeps, d)
	if d > 0 {
		m.current = m.current.Add(d)
	}
}

// Advance moves the mocked time forward by d
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}

// Sleeps returns a copy of every duration passed to Sleep so far
func (m *MockClock) Sleeps() []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]time.Duration, len(m.sleeps))
	copy(out, m.sleeps)
	return out
}
