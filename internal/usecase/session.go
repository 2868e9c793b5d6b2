package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/flightfinder/flight-finder-service/internal/domain"
	"github.com/flightfinder/flight-finder-service/internal/infrastructure/cache"
)

// DefaultFetchTimeout bounds a single provider fetch driven by the session.
const DefaultFetchTimeout = 35 * time.Second

// SessionConfig contains configuration options for a search session.
type SessionConfig struct {
	// FetchTimeout bounds the async provider fetch (default: DefaultFetchTimeout)
	FetchTimeout time.Duration
}

// Session owns one SearchState and is its only writer. The reducer is pure;
// Session serializes dispatches behind a mutex and drives the asynchronous
// provider fetch keyed by the search-parameter fingerprint. A fetch that
// completes after its fingerprint has been superseded is discarded, so a
// late-arriving stale response can never overwrite newer state.
type Session struct {
	id      string
	gateway domain.FlightGateway
	results cache.ResultCache
	log     zerolog.Logger

	fetchTimeout time.Duration

	mu         sync.RWMutex
	state      SearchState
	lastActive time.Time
}

// NewSession creates a search session in its initial state.
// The results cache is optional; pass nil to always hit the provider.
func NewSession(gateway domain.FlightGateway, results cache.ResultCache, log zerolog.Logger, cfg SessionConfig) *Session {
	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}

	id := uuid.New().String()
	return &Session{
		id:           id,
		gateway:      gateway,
		results:      results,
		log:          log.With().Str("session_id", id).Logger(),
		fetchTimeout: timeout,
		state:        InitialState(),
		lastActive:   time.Now(),
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// State returns a snapshot of the current search state.
func (s *Session) State() SearchState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// FilteredFlights returns the derived view of the current result set with the
// active filters and sort order applied. It is recomputed from state on every
// call, never stored.
func (s *Session) FilteredFlights() []domain.Flight {
	state := s.State()
	return ApplyFilters(state.AllFlights, state.Filters, state.SortBy)
}

// FlightByID looks up a flight in the current raw result set.
func (s *Session) FlightByID(flightID string) (domain.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.state.AllFlights {
		if f.ID == flightID {
			return f, nil
		}
	}
	return domain.Flight{}, domain.ErrFlightNotFound
}

// SetSearchParams validates and dispatches a new search. Dispatching
// parameters structurally identical to the current search is a no-op
// fetch-key match: no state transition and no second provider call. An
// errored search may always be re-dispatched.
func (s *Session) SetSearchParams(params domain.SearchParams) error {
	params.SetDefaults()
	if err := params.Validate(); err != nil {
		return err
	}

	fingerprint := params.Fingerprint()

	s.mu.Lock()
	if fingerprint == s.state.Fingerprint && !s.state.IsError {
		s.mu.Unlock()
		s.log.Debug().Str("fingerprint", fingerprint).Msg("Identical search params, skipping fetch")
		return nil
	}
	s.state = Reduce(s.state, SetSearchParams{Params: params})
	s.touchLocked()
	s.mu.Unlock()

	s.log.Info().
		Str("fingerprint", fingerprint).
		Str("origin", params.Origin).
		Str("destination", params.Destination).
		Str("trip_type", string(params.TripType)).
		Msg("Search dispatched")

	go s.fetch(params, fingerprint)
	return nil
}

// UpdateFilter replaces one filter field. Results and loading state are
// untouched.
func (s *Session) UpdateFilter(update UpdateFilter) error {
	if !update.Field.IsValid() {
		return domain.ErrInvalidSearch
	}
	s.dispatch(update)
	return nil
}

// ResetFilters restores the accept-everything filters over the current
// result set's price range.
func (s *Session) ResetFilters() {
	s.dispatch(ResetFilters{})
}

// SetSortBy replaces the sort order for the derived view.
func (s *Session) SetSortBy(sortBy domain.SortOption) {
	s.dispatch(SetSortBy{SortBy: sortBy})
}

// LastActive reports when the session last received a call, for TTL eviction.
func (s *Session) LastActive() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastActive
}

// dispatch runs an action through the reducer under the write lock.
func (s *Session) dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, action)
	s.touchLocked()
	s.log.Debug().Str("action", action.actionName()).Msg("Action dispatched")
}

// touchLocked refreshes the activity timestamp. Caller holds the write lock.
func (s *Session) touchLocked() {
	s.lastActive = time.Now()
}

// fetch resolves the search against the result cache or the provider gateway
// and installs the outcome, unless the fingerprint has been superseded by a
// newer search in the meantime.
func (s *Session) fetch(params domain.SearchParams, fingerprint string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.fetchTimeout)
	defer cancel()

	if s.results != nil {
		if result, ok := s.results.Get(ctx, fingerprint); ok {
			s.log.Debug().Str("fingerprint", fingerprint).Msg("Result cache hit")
			s.install(fingerprint, result)
			return
		}
	}

	result, err := s.gateway.SearchFlights(ctx, params)
	if err != nil {
		// The gateway swallows provider errors into empty results; an
		// error here means the fetch itself failed (e.g. timed out).
		s.mu.Lock()
		if s.state.Fingerprint == fingerprint {
			s.state = Reduce(s.state, SetError{IsError: true, Error: err.Error()})
		}
		s.mu.Unlock()
		s.log.Warn().Err(err).Str("fingerprint", fingerprint).Msg("Search fetch failed")
		return
	}

	if s.results != nil {
		s.results.Set(ctx, fingerprint, result)
	}

	s.install(fingerprint, result)
}

// install dispatches SetSearchResults if the fingerprint still matches the
// latest dispatched search, and discards the result otherwise.
func (s *Session) install(fingerprint string, result domain.FlightSearchResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Fingerprint != fingerprint {
		s.log.Debug().Str("fingerprint", fingerprint).Msg("Discarding stale search result")
		return
	}

	s.state = Reduce(s.state, SetSearchResults{
		Flights:      result.Flights,
		Airlines:     result.Airlines,
		PriceRange:   result.PriceRange,
		TotalResults: result.TotalResults,
	})
	s.touchLocked()
	s.log.Info().
		Int("flights", len(result.Flights)).
		Int("total_results", result.TotalResults).
		Msg("Search results installed")
}
