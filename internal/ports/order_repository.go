package ports

import (
	"context"
	"route-optimizer-service/internal/domain"
)

// Port: a boundary for retrieving Order entities from a data source.
type OrderRepository interface {
	// Retrieve all orders.
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	// Retrieve the orders assigned to a route, in insertion order.
	// Insertion order matters: the first returned order is the fixed
	// starting point of any sequencing run.
	ListOrdersByRoute(ctx context.Context, routeID string) ([]*domain.Order, error)
}
