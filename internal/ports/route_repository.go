package ports

import (
	"context"
	"route-optimizer-service/internal/domain"
	"time"
)

// Port: a boundary for retrieving and updating Route records.
type RouteRepository interface {
	// Retrieve all routes.
	ListRoutes(ctx context.Context) ([]*domain.Route, error)
	// Retrieve a single route by ID. Returns domain.ErrRouteNotFound when
	// no such route exists.
	GetRoute(ctx context.Context, routeID string) (*domain.Route, error)
	// Persist a sequencing result onto the route record. The optimizer
	// itself never writes; this is the one full-result write performed
	// after it returns.
	SaveOptimization(ctx context.Context, routeID string, result domain.OptimizedRoute, optimizedAt time.Time) error
}
