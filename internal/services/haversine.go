package services

import (
	"math"
	"route-optimizer-service/internal/domain"
)

// Earth radius used by the Haversine formula, in kilometers.
const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance between two points in
// kilometers. The function is total over finite inputs: coordinates are
// taken as decimal degrees and are not range-checked, so results outside
// real-world coordinate ranges are physically meaningless but never an error.
func Haversine(a, b domain.Coordinates) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180.0
	dLon := (b.Lon - a.Lon) * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180.0)*math.Cos(b.Lat*math.Pi/180.0)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}
