package repositories

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Expected CSV header for order imports. Coordinates and route assignment
// may be blank; blank coordinates mean the order is not yet geocoded and
// will be skipped by the sequencer until they are filled in.
var orderCSVHeader = []string{"reference", "address", "lat", "lon", "status", "route_id"}

// ImportOrdersCSV loads orders from a CSV file into the orders table.
// Every imported order receives a fresh UUID. Returns the number of
// imported rows.
func ImportOrdersCSV(db *sql.DB, csvPath string) (int, error) {
	if db == nil {
		return 0, errors.New("import orders: DB is nil")
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("import orders: open %q: %w", csvPath, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(orderCSVHeader)

	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("import orders: read header: %w", err)
	}
	for i, col := range orderCSVHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), col) {
			return 0, fmt.Errorf("import orders: header column %d is %q, want %q", i+1, header[i], col)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("import orders: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO orders (order_id, reference, address, lat, lon, status, route_id)
	VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''));
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return 0, fmt.Errorf("import orders: prepare insert: %w", err)
	}
	defer stmt.Close()

	imported := 0
	for line := 2; ; line++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("import orders: line %d: %w", line, err)
		}

		reference := strings.TrimSpace(record[0])
		if reference == "" {
			return 0, fmt.Errorf("import orders: line %d: reference cannot be empty", line)
		}

		lat, err := parseOptionalFloat(record[2])
		if err != nil {
			return 0, fmt.Errorf("import orders: line %d: lat: %w", line, err)
		}
		lon, err := parseOptionalFloat(record[3])
		if err != nil {
			return 0, fmt.Errorf("import orders: line %d: lon: %w", line, err)
		}

		status := strings.TrimSpace(record[4])
		if status == "" {
			status = "pending"
		}

		_, err = stmt.Exec(uuid.NewString(), reference, strings.TrimSpace(record[1]),
			lat, lon, status, strings.TrimSpace(record[5]))
		if err != nil {
			return 0, fmt.Errorf("import orders: line %d: insert reference=%q: %w", line, reference, err)
		}
		imported++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("import orders: commit tx: %w", err)
	}

	return imported, nil
}

func parseOptionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", s, err)
	}
	return &v, nil
}
