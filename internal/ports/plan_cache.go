package ports

import (
	"context"
	"route-optimizer-service/internal/domain"
)

// Port: a cache for sequencing results, keyed by route and stop fingerprint.
// The key changes whenever a route's eligible stops or their coordinates
// change, so a hit is always safe to serve without re-running the heuristic.
type PlanCache interface {
	// Look up a cached result. The second return is false on a miss.
	Get(ctx context.Context, key string) (domain.OptimizedRoute, bool, error)
	// Store a result under the given key.
	Put(ctx context.Context, key string, result domain.OptimizedRoute) error
}
