package usecase

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/flightfinder/flight-finder-service/internal/domain"
	"github.com/flightfinder/flight-finder-service/internal/infrastructure/cache"
)

// Default session store settings.
const (
	DefaultSessionTTL    = 30 * time.Minute
	DefaultSweepInterval = 5 * time.Minute
)

// StoreConfig contains configuration options for the session store.
type StoreConfig struct {
	// SessionTTL is the idle time after which a session is evicted
	// (default: DefaultSessionTTL)
	SessionTTL time.Duration

	// SweepInterval is how often expired sessions are collected
	// (default: DefaultSweepInterval)
	SweepInterval time.Duration

	// Session is the configuration applied to new sessions
	Session SessionConfig
}

// SessionStore creates and tracks search sessions. One session corresponds to
// one UI mount; it lives until released or until it sits idle past the TTL.
type SessionStore struct {
	gateway domain.FlightGateway
	results cache.ResultCache
	log     zerolog.Logger

	ttl           time.Duration
	sweepInterval time.Duration
	sessionCfg    SessionConfig

	mu       sync.RWMutex
	sessions map[string]*Session

	stop chan struct{}
	once sync.Once
}

// NewSessionStore creates a session store and starts its eviction sweeper.
func NewSessionStore(gateway domain.FlightGateway, results cache.ResultCache, log zerolog.Logger, cfg StoreConfig) *SessionStore {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	sweep := cfg.SweepInterval
	if sweep <= 0 {
		sweep = DefaultSweepInterval
	}

	store := &SessionStore{
		gateway:       gateway,
		results:       results,
		log:           log,
		ttl:           ttl,
		sweepInterval: sweep,
		sessionCfg:    cfg.Session,
		sessions:      make(map[string]*Session),
		stop:          make(chan struct{}),
	}

	go store.sweeper()
	return store
}

// Create creates a new search session and returns it.
func (st *SessionStore) Create() *Session {
	session := NewSession(st.gateway, st.results, st.log, st.sessionCfg)

	st.mu.Lock()
	st.sessions[session.ID()] = session
	st.mu.Unlock()

	st.log.Info().Str("session_id", session.ID()).Msg("Session created")
	return session
}

// Get returns the session with the given id.
func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	session, ok := st.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// Release removes a session (the UI unmounted).
func (st *SessionStore) Release(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(st.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Close stops the eviction sweeper.
func (st *SessionStore) Close() {
	st.once.Do(func() { close(st.stop) })
}

// sweeper periodically evicts sessions idle past the TTL.
func (st *SessionStore) sweeper() {
	ticker := time.NewTicker(st.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-st.stop:
			return
		case <-ticker.C:
			st.evictExpired(time.Now())
		}
	}
}

// evictExpired removes sessions whose last activity is older than the TTL.
func (st *SessionStore) evictExpired(now time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for id, session := range st.sessions {
		if now.Sub(session.LastActive()) > st.ttl {
			delete(st.sessions, id)
			st.log.Info().Str("session_id", id).Msg("Idle session evicted")
		}
	}
}
