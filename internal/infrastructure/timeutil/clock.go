// Package timeutil abstracts the system clock so time-dependent behavior is
// testable. The provider's token cache decides expiry against an injected
// Clock, and cache-TTL tests step a MockClock instead of sleeping.
package timeutil

import (
	"time"
)

// Clock is the minimal time source used across the service.
// Production code takes a Clock where it needs "now"; tests substitute a
// MockClock to pin or step time.
type Clock interface {
	Now() time.Time
}

// RealClock reads the actual system time.
type RealClock struct{}

// NewRealClock creates a new RealClock instance.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a manually stepped clock for tests. It only moves when Set or
// Advance is called, so expiry windows can be crossed deterministically.
type MockClock struct {
	current time.Time
}

// NewMockClock creates a mock clock pinned to the given time.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

// NewMockClockFromString creates a mock clock from an RFC3339 time string.
// Panics if the string is invalid (for use in tests only).
func NewMockClockFromString(value string) *MockClock {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("invalid time string: " + err.Error())
	}
	return &MockClock{current: t}
}

// Now returns the pinned time.
func (m *MockClock) Now() time.Time {
	return m.current
}

// Set pins the clock to a specific time.
func (m *MockClock) Set(t time.Time) {
	m.current = t
}

// Advance moves the clock by the given duration. Negative durations move it
// backwards.
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}

var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
