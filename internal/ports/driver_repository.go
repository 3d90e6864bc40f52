package ports

import (
	"context"
	"route-optimizer-service/internal/domain"
)

// Port: a boundary for retrieving Driver entities from a data source.
type DriverRepository interface {
	// Retrieve all drivers.
	ListDrivers(ctx context.Context) ([]*domain.Driver, error)
}
