package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Initialize the Postgres database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createDriversQuery := `
	CREATE TABLE IF NOT EXISTS drivers (
		driver_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'active'
	);
	`

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS routes (
		route_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		driver_id TEXT REFERENCES drivers(driver_id),
		status TEXT NOT NULL DEFAULT 'planned',
		stop_sequence JSONB,
		total_distance_km DOUBLE PRECISION,
		estimated_duration_minutes INTEGER,
		algorithm TEXT,
		optimized_at TIMESTAMPTZ
	);
	`

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		order_id TEXT PRIMARY KEY,
		reference TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		lat DOUBLE PRECISION,
		lon DOUBLE PRECISION,
		status TEXT NOT NULL DEFAULT 'pending',
		route_id TEXT REFERENCES routes(route_id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_orders_route_id ON orders(route_id);
	`

	statements := []string{
		createDriversQuery,
		createRoutesQuery,
		createOrdersQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type DriverSeed struct {
	DriverID string `json:"driver_id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
}

type RouteSeed struct {
	RouteID  string `json:"route_id"`
	Name     string `json:"name"`
	DriverID string `json:"driver_id"`
	Status   string `json:"status"`
}

type OrderSeed struct {
	OrderID   string   `json:"order_id"`
	Reference string   `json:"reference"`
	Address   string   `json:"address"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	Status    string   `json:"status"`
	RouteID   string   `json:"route_id"`
}

type SeedFile struct {
	Drivers []DriverSeed `json:"drivers"`
	Routes  []RouteSeed  `json:"routes"`
	Orders  []OrderSeed  `json:"orders"`
}

// Populate the database with demo drivers, routes, and orders from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed data: read %q: %w", jsonPath, err)
	}

	var data SeedFile
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed data: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed data: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	driverQuery := `
	INSERT INTO drivers (driver_id, name, phone, status)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (driver_id) DO UPDATE
	SET name = EXCLUDED.name, phone = EXCLUDED.phone, status = EXCLUDED.status;
	`
	for i, d := range data.Drivers {
		if strings.TrimSpace(d.DriverID) == "" {
			d.DriverID = uuid.NewString()
		}
		if strings.TrimSpace(d.Name) == "" {
			return fmt.Errorf("seed data: driver at index %d: name cannot be empty", i+1)
		}
		if d.Status == "" {
			d.Status = "active"
		}
		if _, err := tx.Exec(driverQuery, d.DriverID, d.Name, d.Phone, d.Status); err != nil {
			return fmt.Errorf("seed data: insert driver %q: %w", d.DriverID, err)
		}
	}

	routeQuery := `
	INSERT INTO routes (route_id, name, driver_id, status)
	VALUES ($1, $2, NULLIF($3, ''), $4)
	ON CONFLICT (route_id) DO UPDATE
	SET name = EXCLUDED.name, driver_id = EXCLUDED.driver_id, status = EXCLUDED.status;
	`
	for i, r := range data.Routes {
		if strings.TrimSpace(r.RouteID) == "" {
			r.RouteID = uuid.NewString()
		}
		if strings.TrimSpace(r.Name) == "" {
			return fmt.Errorf("seed data: route at index %d: name cannot be empty", i+1)
		}
		if r.Status == "" {
			r.Status = "planned"
		}
		if _, err := tx.Exec(routeQuery, r.RouteID, r.Name, r.DriverID, r.Status); err != nil {
			return fmt.Errorf("seed data: insert route %q: %w", r.RouteID, err)
		}
	}

	orderQuery := `
	INSERT INTO orders (order_id, reference, address, lat, lon, status, route_id)
	VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
	ON CONFLICT (order_id) DO UPDATE
	SET reference = EXCLUDED.reference, address = EXCLUDED.address,
		lat = EXCLUDED.lat, lon = EXCLUDED.lon,
		status = EXCLUDED.status, route_id = EXCLUDED.route_id;
	`
	for i, o := range data.Orders {
		if strings.TrimSpace(o.OrderID) == "" {
			o.OrderID = uuid.NewString()
		}
		if strings.TrimSpace(o.Reference) == "" {
			return fmt.Errorf("seed data: order at index %d: reference cannot be empty", i+1)
		}
		if o.Status == "" {
			o.Status = "pending"
		}
		if _, err := tx.Exec(orderQuery, o.OrderID, o.Reference, o.Address, o.Lat, o.Lon, o.Status, o.RouteID); err != nil {
			return fmt.Errorf("seed data: insert order %q: %w", o.OrderID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed data: commit tx: %w", err)
	}

	return nil
}
