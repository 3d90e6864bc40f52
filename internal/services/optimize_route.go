package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/ports"
)

// OptimizeRouteOrders sequences the orders of a persisted route.
//
// It loads the route's orders, filters out those without coordinates (the
// sequencer assumes every stop it receives has them), runs the
// nearest-neighbor heuristic, persists the result onto the route record,
// and returns it. The cache is consulted first and is strictly best-effort:
// cache failures are logged and never fail the optimization.
func OptimizeRouteOrders(
	ctx context.Context,
	routeID string,
	routes ports.RouteRepository,
	orders ports.OrderRepository,
	cache ports.PlanCache,
	log *slog.Logger,
	now time.Time,
) (*domain.OptimizedRoute, error) {
	if log == nil {
		log = slog.Default()
	}

	if _, err := routes.GetRoute(ctx, routeID); err != nil {
		return nil, fmt.Errorf("optimize route: get route %q: %w", routeID, err)
	}

	routeOrders, err := orders.ListOrdersByRoute(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("optimize route: list orders for route %q: %w", routeID, err)
	}

	stops := make([]domain.Stop, 0, len(routeOrders))
	skipped := 0
	for _, o := range routeOrders {
		if !o.HasCoordinates() {
			skipped++
			continue
		}
		stops = append(stops, o.Stop())
	}
	if skipped > 0 {
		log.DebugContext(ctx, "orders without coordinates excluded from sequencing",
			"route_id", routeID, "skipped", skipped)
	}

	key := PlanCacheKey(routeID, stops)

	result, hit := cachedPlan(ctx, cache, key, log)
	if !hit {
		result = OptimizeStops(stops)
	}

	if err := routes.SaveOptimization(ctx, routeID, result, now); err != nil {
		return nil, fmt.Errorf("optimize route: save result for route %q: %w", routeID, err)
	}

	if cache != nil && !hit {
		if err := cache.Put(ctx, key, result); err != nil {
			log.WarnContext(ctx, "plan cache put failed", "route_id", routeID, "err", err)
		}
	}

	log.DebugContext(ctx, "route sequenced",
		"route_id", routeID,
		"stops", len(stops),
		"total_distance_km", result.TotalDistanceKm,
		"estimated_duration_minutes", result.EstimatedDurationMinutes,
		"cache_hit", hit,
	)

	return &result, nil
}

func cachedPlan(ctx context.Context, cache ports.PlanCache, key string, log *slog.Logger) (domain.OptimizedRoute, bool) {
	if cache == nil {
		return domain.OptimizedRoute{}, false
	}

	result, ok, err := cache.Get(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "plan cache get failed", "key", key, "err", err)
		return domain.OptimizedRoute{}, false
	}
	return result, ok
}

// PlanCacheKey derives a cache key from a route ID and its eligible stops.
// Stop order is part of the key: the first stop anchors the sequence, so a
// reordered input is a different optimization problem.
func PlanCacheKey(routeID string, stops []domain.Stop) string {
	h := sha256.New()
	for _, s := range stops {
		h.Write([]byte(s.ID))
		h.Write([]byte{0})
		h.Write([]byte(strconv.FormatFloat(s.Lat, 'f', -1, 64)))
		h.Write([]byte{0})
		h.Write([]byte(strconv.FormatFloat(s.Lon, 'f', -1, 64)))
		h.Write([]byte{0})
	}
	return "plan:" + routeID + ":" + hex.EncodeToString(h.Sum(nil))
}
