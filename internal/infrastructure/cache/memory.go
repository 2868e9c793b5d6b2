package cache

import (
	"context"
	"sync"
	"time"

	"github.com/flightfinder/flight-finder-service/internal/domain"
	"github.com/flightfinder/flight-finder-service/internal/infrastructure/timeutil"
)

// memoryEntry is one cached result with its expiry.
type memoryEntry struct {
	result    domain.FlightSearchResult
	expiresAt time.Time
}

// Memory is an in-process ResultCache. Expired entries are dropped lazily on
// read and opportunistically when new entries are written.
type Memory struct {
	ttl   time.Duration
	clock timeutil.Clock

	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemory creates an in-process cache with the given TTL.
// A non-positive TTL falls back to DefaultTTL.
func NewMemory(ttl time.Duration) *Memory {
	return NewMemoryWithClock(ttl, timeutil.NewRealClock())
}

// NewMemoryWithClock creates an in-process cache with a custom clock.
// This is useful for testing expiry behavior.
func NewMemoryWithClock(ttl time.Duration, clock timeutil.Clock) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]memoryEntry),
	}
}

// Get implements ResultCache.
func (m *Memory) Get(_ context.Context, fingerprint string) (domain.FlightSearchResult, bool) {
	m.mu.RLock()
	entry, ok := m.entries[fingerprint]
	m.mu.RUnlock()

	if !ok {
		return domain.FlightSearchResult{}, false
	}

	if m.clock.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, fingerprint)
		m.mu.Unlock()
		return domain.FlightSearchResult{}, false
	}

	return entry.result, true
}

// Set implements ResultCache.
func (m *Memory) Set(_ context.Context, fingerprint string, result domain.FlightSearchResult) {
	now := m.clock.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for key, entry := range m.entries {
		if now.After(entry.expiresAt) {
			delete(m.entries, key)
		}
	}

	m.entries[fingerprint] = memoryEntry{
		result:    result,
		expiresAt: now.Add(m.ttl),
	}
}

// Ensure Memory implements ResultCache at compile time.
var _ ResultCache = (*Memory)(nil)
