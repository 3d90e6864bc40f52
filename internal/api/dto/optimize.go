package dto

// OptimizeStopRequest carries one stop for a stateless optimization call.
// Lat and Lon are pointers so that absent coordinates are distinguishable
// from zero: the sequencer itself never validates coordinates, so the API
// boundary must refuse stops that lack them.
type OptimizeStopRequest struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Lat   *float64 `json:"lat"`
	Lon   *float64 `json:"lon"`
}

type OptimizeRequest struct {
	Stops []OptimizeStopRequest `json:"stops"`
}

type OptimizeResponse struct {
	Sequence                 []string `json:"sequence"`
	TotalDistanceKm          float64  `json:"total_distance_km"`
	EstimatedDurationMinutes int      `json:"estimated_duration_minutes"`
	Algorithm                string   `json:"algorithm"`
}
