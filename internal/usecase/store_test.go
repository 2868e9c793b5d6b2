package usecase

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flightfinder/flight-finder-service/internal/domain"
)

func newStore(t *testing.T) *SessionStore {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := domain.NewMockFlightGateway(ctrl)
	store := NewSessionStore(gateway, nil, zerolog.Nop(), StoreConfig{})
	t.Cleanup(store.Close)
	return store
}

// TestSessionStore_CreateAndGet verifies created sessions are retrievable by
// their id.
func TestSessionStore_CreateAndGet(t *testing.T) {
	store := newStore(t)

	session := store.Create()
	require.NotEmpty(t, session.ID())
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(session.ID())
	require.NoError(t, err)
	assert.Same(t, session, got)
}

// TestSessionStore_GetUnknown verifies lookups of unknown ids fail with the
// sentinel error.
func TestSessionStore_GetUnknown(t *testing.T) {
	store := newStore(t)

	_, err := store.Get("no-such-session")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

// TestSessionStore_Release verifies released sessions are gone and double
// release errors.
func TestSessionStore_Release(t *testing.T) {
	store := newStore(t)
	session := store.Create()

	require.NoError(t, store.Release(session.ID()))
	assert.Zero(t, store.Len())

	_, err := store.Get(session.ID())
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
	require.ErrorIs(t, store.Release(session.ID()), domain.ErrSessionNotFound)
}

// TestSessionStore_EvictExpired verifies idle sessions past the TTL are
// collected while active ones survive.
func TestSessionStore_EvictExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := domain.NewMockFlightGateway(ctrl)
	store := NewSessionStore(gateway, nil, zerolog.Nop(), StoreConfig{
		SessionTTL: 50 * time.Millisecond,
	})
	defer store.Close()

	idle := store.Create()
	active := store.Create()

	// Let both sessions age past the TTL, then dispatch an action on one of
	// them to refresh its activity timestamp.
	time.Sleep(100 * time.Millisecond)
	active.SetSortBy(domain.SortFastest)

	store.evictExpired(time.Now())
	assert.Equal(t, 1, store.Len())

	_, err := store.Get(idle.ID())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = store.Get(active.ID())
	assert.NoError(t, err)
}

// TestSessionStore_CloseIsIdempotent verifies Close may be called twice.
func TestSessionStore_CloseIsIdempotent(t *testing.T) {
	store := newStore(t)
	store.Close()
	store.Close()
}
