package services

import (
	"math"
	"route-optimizer-service/internal/domain"
)

// AlgorithmNearestNeighbor identifies the sequencing heuristic on every
// result, for downstream audit and display.
const AlgorithmNearestNeighbor = "nearest_neighbor"

// OptimizeStops orders stops with a greedy nearest-neighbor heuristic.
//
// The algorithm minimizes immediate travel distance at each step.
// It does not attempt global route optimization (e.g., VRP solvers).
// The design prioritizes determinism and simplicity over optimality.
//
// The first stop in the input is the fixed starting point and is always
// first in the output sequence. Every stop must carry valid coordinates;
// filtering out stops without them is the caller's responsibility.
// The function is pure: no I/O, no shared state, safe for concurrent calls.
func OptimizeStops(stops []domain.Stop) domain.OptimizedRoute {
	if len(stops) == 0 {
		return domain.OptimizedRoute{
			Sequence:  []string{},
			Algorithm: AlgorithmNearestNeighbor,
		}
	}

	if len(stops) == 1 {
		return domain.OptimizedRoute{
			Sequence:                 []string{stops[0].ID},
			TotalDistanceKm:          0,
			EstimatedDurationMinutes: singleStopDurationMin,
			Algorithm:                AlgorithmNearestNeighbor,
		}
	}

	matrix := BuildDistanceMatrix(stops)

	visited := make([]bool, len(stops))
	sequence := make([]string, 0, len(stops))

	current := 0
	visited[0] = true
	sequence = append(sequence, stops[0].ID)

	totalDistance := 0.0

	for len(sequence) < len(stops) {
		// Select the next stop by minimum hop distance (greedy step).
		// The strict "<" comparison over a forward scan keeps the earliest
		// input-order stop on ties, so the result is deterministic for a
		// given input order.
		next := -1
		for j := range stops {
			if visited[j] {
				continue
			}
			if next == -1 || matrix[current][j] < matrix[current][next] {
				next = j
			}
		}

		visited[next] = true
		sequence = append(sequence, stops[next].ID)
		totalDistance += matrix[current][next]
		current = next
	}

	return domain.OptimizedRoute{
		Sequence:                 sequence,
		TotalDistanceKm:          roundKm(totalDistance),
		EstimatedDurationMinutes: EstimateDuration(totalDistance, len(stops)),
		Algorithm:                AlgorithmNearestNeighbor,
	}
}

// Round a distance to two decimal places for stable stored totals.
func roundKm(km float64) float64 { return math.Round(km*100) / 100 }
