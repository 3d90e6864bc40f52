package services

import "math"

// Duration model constants for urban delivery conditions. These are fixed
// policy values: changing them changes observable output and breaks
// compatibility with already-stored route metrics.
const (
	averageSpeedKmh       = 40.0
	serviceTimePerStopMin = 5

	// Fixed duration floor for a one-stop route (minimum service time,
	// not derived from the duration formula).
	singleStopDurationMin = 10
)

// EstimateDuration converts a total route distance in kilometers and a stop
// count (>= 1) into an estimated elapsed time in minutes: travel time at an
// average urban speed plus a fixed per-stop service time, rounded to the
// nearest whole minute.
func EstimateDuration(distanceKm float64, stopCount int) int {
	travelMinutes := distanceKm / averageSpeedKmh * 60
	serviceMinutes := float64(stopCount * serviceTimePerStopMin)
	return int(math.Round(travelMinutes + serviceMinutes))
}
