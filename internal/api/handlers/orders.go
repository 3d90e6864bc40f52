package handlers

import (
	"log/slog"
	"net/http"

	"route-optimizer-service/internal/api/dto"
	"route-optimizer-service/internal/ports"
)

// OrderHandler exposes read-only order retrieval endpoints.
type OrderHandler struct {
	Repo ports.OrderRepository
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Repo.ListOrders(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "list orders failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListOrdersResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
	}
	for _, o := range orders {
		res.Orders = append(res.Orders, dto.OrderResponse{
			OrderID:   o.OrderID,
			Reference: o.Reference,
			Address:   o.Address,
			Lat:       o.Lat,
			Lon:       o.Lon,
			Status:    o.Status,
			RouteID:   o.RouteID,
			CreatedAt: o.CreatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
