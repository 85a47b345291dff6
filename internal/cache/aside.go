package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"blogspot/internal/observability"

	"github.com/redis/go-redis/v9"
)

// Aside implements the cache-aside pattern: on a hit, dest is populated from
// Redis; on a miss, load runs, and its result is stored under key for ttl.
// When no Redis client is configured, load runs directly.
// The entity label is used for hit/miss metrics only.
func Aside(ctx context.Context, key, entity string, dest any, ttl time.Duration, load func() error) error {
	if client == nil {
		return load()
	}

	raw, err := client.Get(ctx, key).Bytes()
	if err == nil {
		if unmarshalErr := json.Unmarshal(raw, dest); unmarshalErr == nil {
			observability.CacheRequests.WithLabelValues(entity, "hit").Inc()
			return nil
		}
		// Corrupt entry; drop it and fall through to the loader.
		client.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		// Redis unavailable mid-flight; serve from the store.
		observability.RedisErrors.WithLabelValues("get").Inc()
		return load()
	}

	observability.CacheRequests.WithLabelValues(entity, "miss").Inc()

	if err := load(); err != nil {
		return err
	}

	if encoded, err := json.Marshal(dest); err == nil {
		client.Set(ctx, key, encoded, ttl)
	}
	return nil
}
