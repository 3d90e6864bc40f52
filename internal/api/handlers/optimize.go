package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"route-optimizer-service/internal/api/dto"
	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/metrics"
	"route-optimizer-service/internal/services"
)

// OptimizeHandler exposes the sequencer as a stateless endpoint: stops in,
// visiting order and metrics out, nothing persisted.
type OptimizeHandler struct{}

func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	var req dto.OptimizeRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	// The sequencer assumes valid coordinates on every stop it receives,
	// so the boundary rejects stops that lack them.
	stops := make([]domain.Stop, 0, len(req.Stops))
	for i, s := range req.Stops {
		if s.ID == "" {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("stops[%d]: id is required", i))
			return
		}
		if s.Lat == nil || s.Lon == nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("stops[%d]: lat and lon are required", i))
			return
		}
		stops = append(stops, domain.Stop{ID: s.ID, Label: s.Label, Lat: *s.Lat, Lon: *s.Lon})
	}

	result := services.OptimizeStops(stops)

	metrics.Optimizations.WithLabelValues("ok").Inc()
	metrics.OptimizationStops.Observe(float64(len(result.Sequence)))

	writeJSON(w, r, http.StatusOK, dto.OptimizeResponse{
		Sequence:                 result.Sequence,
		TotalDistanceKm:          result.TotalDistanceKm,
		EstimatedDurationMinutes: result.EstimatedDurationMinutes,
		Algorithm:                result.Algorithm,
	})
}
