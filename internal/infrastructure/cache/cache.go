// Package cache provides the fingerprint-keyed flight result cache. A search
// repeated within the stale window is served from cache without a provider
// call. Backends: in-process memory (default) and Redis.
package cache

import (
	"context"
	"time"

	"github.com/flightfinder/flight-finder-service/internal/domain"
)

// DefaultTTL is the stale window for cached search results.
const DefaultTTL = 5 * time.Minute

// ResultCache stores flight search results keyed by the search-parameter
// fingerprint.
type ResultCache interface {
	// Get returns the cached result for the fingerprint, if present and
	// not expired.
	Get(ctx context.Context, fingerprint string) (domain.FlightSearchResult, bool)

	// Set stores a result under the fingerprint for the backend's TTL.
	Set(ctx context.Context, fingerprint string, result domain.FlightSearchResult)
}
