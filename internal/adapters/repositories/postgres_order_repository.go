package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/platform/obs"
)

// Postgres-backed implementation of the OrderRepository port.
type PostgresOrderRepository struct{ DB *sql.DB }

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{DB: db}
}

const orderColumns = `
	order_id,
	reference,
	address,
	lat,
	lon,
	status,
	route_id,
	created_at
`

// Return all orders stored in the database.
func (s *PostgresOrderRepository) ListOrders(ctx context.Context) (_ []*domain.Order, err error) {
	defer obs.Time(ctx, "orders.List")(&err)

	if s.DB == nil {
		return nil, errors.New("order repository: DB is nil")
	}

	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at, order_id;`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: query orders table: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

// Return the orders assigned to a route, oldest first. The first order in
// a route is the fixed starting point of any sequencing run, so ordering
// here is load-bearing, not cosmetic.
func (s *PostgresOrderRepository) ListOrdersByRoute(ctx context.Context, routeID string) (_ []*domain.Order, err error) {
	defer obs.Time(ctx, "orders.ListByRoute")(&err)

	if s.DB == nil {
		return nil, errors.New("order repository: DB is nil")
	}

	query := `SELECT ` + orderColumns + ` FROM orders WHERE route_id = $1 ORDER BY created_at, order_id;`

	rows, err := s.DB.QueryContext(ctx, query, routeID)
	if err != nil {
		return nil, fmt.Errorf("list orders by route: query orders table: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

func scanOrders(rows *sql.Rows) ([]*domain.Order, error) {
	orders := make([]*domain.Order, 0, 64)
	for rows.Next() {
		var o domain.Order
		var lat, lon sql.NullFloat64
		var routeID sql.NullString

		err := rows.Scan(&o.OrderID, &o.Reference, &o.Address, &lat, &lon, &o.Status, &routeID, &o.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}

		if lat.Valid {
			o.Lat = &lat.Float64
		}
		if lon.Valid {
			o.Lon = &lon.Float64
		}
		if routeID.Valid {
			o.RouteID = &routeID.String
		}

		orders = append(orders, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order row iteration: %w", err)
	}

	return orders, nil
}
