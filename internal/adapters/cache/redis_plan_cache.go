package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/platform/obs"
)

// RedisPlanCache is a Redis-backed cache for sequencing results.
// Entries are JSON-encoded OptimizedRoute values with a TTL; the key
// already fingerprints the stops, so entries never need invalidation
// beyond expiry.
type RedisPlanCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisPlanCache(client *redis.Client, ttl time.Duration) *RedisPlanCache {
	return &RedisPlanCache{Client: client, TTL: ttl}
}

// Look up a cached sequencing result. A missing key is a miss, not an error.
func (c *RedisPlanCache) Get(ctx context.Context, key string) (_ domain.OptimizedRoute, _ bool, err error) {
	defer obs.Time(ctx, "plancache.Get")(&err)

	if c.Client == nil {
		return domain.OptimizedRoute{}, false, errors.New("plan cache: client is nil")
	}

	payload, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.OptimizedRoute{}, false, nil
	}
	if err != nil {
		return domain.OptimizedRoute{}, false, fmt.Errorf("get plan cache: %w", err)
	}

	var result domain.OptimizedRoute
	if err := json.Unmarshal(payload, &result); err != nil {
		return domain.OptimizedRoute{}, false, fmt.Errorf("get plan cache: unmarshal %q: %w", key, err)
	}

	return result, true, nil
}

// Store a sequencing result under the given key.
func (c *RedisPlanCache) Put(ctx context.Context, key string, result domain.OptimizedRoute) (err error) {
	defer obs.Time(ctx, "plancache.Put")(&err)

	if c.Client == nil {
		return errors.New("plan cache: client is nil")
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("put plan cache: marshal %q: %w", key, err)
	}

	if err := c.Client.Set(ctx, key, payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("put plan cache: %w", err)
	}

	return nil
}
