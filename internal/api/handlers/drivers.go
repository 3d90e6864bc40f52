package handlers

import (
	"log/slog"
	"net/http"

	"route-optimizer-service/internal/api/dto"
	"route-optimizer-service/internal/ports"
)

// DriverHandler exposes read-only driver retrieval endpoints.
type DriverHandler struct {
	Repo ports.DriverRepository
}

func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.Repo.ListDrivers(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "list drivers failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListDriversResponse{
		Drivers: make([]dto.DriverResponse, 0, len(drivers)),
	}
	for _, d := range drivers {
		res.Drivers = append(res.Drivers, dto.DriverResponse{
			DriverID: d.DriverID,
			Name:     d.Name,
			Phone:    d.Phone,
			Status:   d.Status,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
