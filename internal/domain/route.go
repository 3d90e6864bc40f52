package domain

import "time"

// Represents the output of the route sequencer for a single run.
// Sequence holds stop identifiers in visiting order and is always a
// permutation of the input identifiers. An OptimizedRoute is immutable
// planning data and contains no side effects; persisting it onto a Route
// record is the caller's responsibility.
type OptimizedRoute struct {
	Sequence                 []string
	TotalDistanceKm          float64
	EstimatedDurationMinutes int
	Algorithm                string
}

// Represents a persistent delivery route record.
// Optimization fields are nil until a sequencing run has been saved.
type Route struct {
	RouteID                  string
	Name                     string
	DriverID                 *string
	Status                   string
	StopSequence             []string
	TotalDistanceKm          *float64
	EstimatedDurationMinutes *int
	Algorithm                *string
	OptimizedAt              *time.Time
}
