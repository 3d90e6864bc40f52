package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/platform/obs"
)

// Postgres-backed implementation of the RouteRepository port.
// Stop sequences are stored as JSONB arrays of order identifiers.
type PostgresRouteRepository struct{ DB *sql.DB }

func NewPostgresRouteRepository(db *sql.DB) *PostgresRouteRepository {
	return &PostgresRouteRepository{DB: db}
}

const routeColumns = `
	route_id,
	name,
	driver_id,
	status,
	stop_sequence,
	total_distance_km,
	estimated_duration_minutes,
	algorithm,
	optimized_at
`

// Return all routes stored in the database.
func (s *PostgresRouteRepository) ListRoutes(ctx context.Context) (_ []*domain.Route, err error) {
	defer obs.Time(ctx, "routes.List")(&err)

	if s.DB == nil {
		return nil, errors.New("route repository: DB is nil")
	}

	query := `SELECT ` + routeColumns + ` FROM routes ORDER BY name, route_id;`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list routes: query routes table: %w", err)
	}
	defer rows.Close()

	routes := make([]*domain.Route, 0, 16)
	for rows.Next() {
		route, err := scanRoute(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list routes: %w", err)
		}
		routes = append(routes, route)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}

	return routes, nil
}

// Return a single route by ID.
func (s *PostgresRouteRepository) GetRoute(ctx context.Context, routeID string) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "routes.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("route repository: DB is nil")
	}

	query := `SELECT ` + routeColumns + ` FROM routes WHERE route_id = $1;`

	route, err := scanRoute(s.DB.QueryRowContext(ctx, query, routeID).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRouteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get route %q: %w", routeID, err)
	}

	return route, nil
}

// Persist a sequencing result onto the route record in a single write.
func (s *PostgresRouteRepository) SaveOptimization(ctx context.Context, routeID string, result domain.OptimizedRoute, optimizedAt time.Time) (err error) {
	defer obs.Time(ctx, "routes.SaveOptimization")(&err)

	if s.DB == nil {
		return errors.New("route repository: DB is nil")
	}

	sequence, err := json.Marshal(result.Sequence)
	if err != nil {
		return fmt.Errorf("save optimization: marshal sequence: %w", err)
	}

	query := `
	UPDATE routes
	SET stop_sequence = $2,
		total_distance_km = $3,
		estimated_duration_minutes = $4,
		algorithm = $5,
		optimized_at = $6,
		status = 'optimized'
	WHERE route_id = $1;
	`

	res, err := s.DB.ExecContext(ctx, query, routeID, sequence,
		result.TotalDistanceKm, result.EstimatedDurationMinutes, result.Algorithm, optimizedAt)
	if err != nil {
		return fmt.Errorf("save optimization: update route %q: %w", routeID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save optimization: rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrRouteNotFound
	}

	return nil
}

func scanRoute(scan func(dest ...any) error) (*domain.Route, error) {
	var r domain.Route
	var driverID, algorithm sql.NullString
	var sequence []byte
	var distance sql.NullFloat64
	var duration sql.NullInt64
	var optimizedAt sql.NullTime

	err := scan(&r.RouteID, &r.Name, &driverID, &r.Status, &sequence, &distance, &duration, &algorithm, &optimizedAt)
	if err != nil {
		return nil, err
	}

	if driverID.Valid {
		r.DriverID = &driverID.String
	}
	if len(sequence) > 0 {
		if err := json.Unmarshal(sequence, &r.StopSequence); err != nil {
			return nil, fmt.Errorf("unmarshal stop sequence: %w", err)
		}
	}
	if distance.Valid {
		r.TotalDistanceKm = &distance.Float64
	}
	if duration.Valid {
		minutes := int(duration.Int64)
		r.EstimatedDurationMinutes = &minutes
	}
	if algorithm.Valid {
		r.Algorithm = &algorithm.String
	}
	if optimizedAt.Valid {
		r.OptimizedAt = &optimizedAt.Time
	}

	return &r, nil
}
