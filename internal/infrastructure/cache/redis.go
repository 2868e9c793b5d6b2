package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/flightfinder/flight-finder-service/internal/domain"
)

// redisKeyPrefix namespaces cache keys in a shared Redis instance.
const redisKeyPrefix = "flightfinder:results:"

// Redis is a ResultCache backed by a Redis instance, for deployments that
// want the stale window shared across service replicas. Cache failures are
// logged and treated as misses; the cache never breaks a search.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewRedis creates a Redis-backed cache with the given TTL.
// A non-positive TTL falls back to DefaultTTL.
func NewRedis(client *redis.Client, ttl time.Duration, log zerolog.Logger) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// Get implements ResultCache.
func (r *Redis) Get(ctx context.Context, fingerprint string) (domain.FlightSearchResult, bool) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+fingerprint).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Warn().Err(err).Msg("Result cache read failed")
		}
		return domain.FlightSearchResult{}, false
	}

	var result domain.FlightSearchResult
	if err := json.Unmarshal(raw, &result); err != nil {
		r.log.Warn().Err(err).Msg("Result cache entry corrupt, dropping")
		r.client.Del(ctx, redisKeyPrefix+fingerprint)
		return domain.FlightSearchResult{}, false
	}

	return result, true
}

// Set implements ResultCache.
func (r *Redis) Set(ctx context.Context, fingerprint string, result domain.FlightSearchResult) {
	raw, err := json.Marshal(result)
	if err != nil {
		r.log.Warn().Err(err).Msg("Result cache marshal failed")
		return
	}

	if err := r.client.Set(ctx, redisKeyPrefix+fingerprint, raw, r.ttl).Err(); err != nil {
		r.log.Warn().Err(err).Msg("Result cache write failed")
	}
}

// Ensure Redis implements ResultCache at compile time.
var _ ResultCache = (*Redis)(nil)
