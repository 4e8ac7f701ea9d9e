package engine

import (
	"sync"
	"time"
)

// Clock supplies frame timestamps
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic wall clock
type SystemClock struct{}

// Now returns time.Now
func (SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock is a manually advanced Clock for tests
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockClock creates a clock stopped at start
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

// Now returns the mocked time
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set jumps to t
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
