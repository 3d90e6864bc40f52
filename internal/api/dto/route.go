package dto

import "time"

type RouteResponse struct {
	RouteID                  string     `json:"route_id"`
	Name                     string     `json:"name"`
	DriverID                 *string    `json:"driver_id"`
	Status                   string     `json:"status"`
	StopSequence             []string   `json:"stop_sequence,omitempty"`
	TotalDistanceKm          *float64   `json:"total_distance_km,omitempty"`
	EstimatedDurationMinutes *int       `json:"estimated_duration_minutes,omitempty"`
	Algorithm                *string    `json:"algorithm,omitempty"`
	OptimizedAt              *time.Time `json:"optimized_at,omitempty"`
}

type ListRoutesResponse struct {
	Routes []RouteResponse `json:"routes"`
}
