package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"route-optimizer-service/internal/api/dto"
	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/metrics"
	"route-optimizer-service/internal/ports"
	"route-optimizer-service/internal/services"
)

// RouteHandler exposes route retrieval and optimization endpoints.
type RouteHandler struct {
	Routes ports.RouteRepository
	Orders ports.OrderRepository
	Cache  ports.PlanCache
	Log    *slog.Logger
}

func (h *RouteHandler) List(w http.ResponseWriter, r *http.Request) {
	routes, err := h.Routes.ListRoutes(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "list routes failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRoutesResponse{
		Routes: make([]dto.RouteResponse, 0, len(routes)),
	}
	for _, route := range routes {
		res.Routes = append(res.Routes, routeResponse(route))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *RouteHandler) Get(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "routeID")

	route, err := h.Routes.GetRoute(r.Context(), routeID)
	if errors.Is(err, domain.ErrRouteNotFound) {
		writeError(w, r, http.StatusNotFound, "route not found")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "get route failed", "route_id", routeID, "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, routeResponse(route))
}

// Optimize sequences the orders of a persisted route and stores the result
// on the route record before responding.
func (h *RouteHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "routeID")

	result, err := services.OptimizeRouteOrders(r.Context(), routeID, h.Routes, h.Orders, h.Cache, h.Log, time.Now())
	if errors.Is(err, domain.ErrRouteNotFound) {
		metrics.Optimizations.WithLabelValues("not_found").Inc()
		writeError(w, r, http.StatusNotFound, "route not found")
		return
	}
	if err != nil {
		metrics.Optimizations.WithLabelValues("error").Inc()
		slog.ErrorContext(r.Context(), "optimize route failed", "route_id", routeID, "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics.Optimizations.WithLabelValues("ok").Inc()
	metrics.OptimizationStops.Observe(float64(len(result.Sequence)))

	writeJSON(w, r, http.StatusOK, dto.OptimizeResponse{
		Sequence:                 result.Sequence,
		TotalDistanceKm:          result.TotalDistanceKm,
		EstimatedDurationMinutes: result.EstimatedDurationMinutes,
		Algorithm:                result.Algorithm,
	})
}

func routeResponse(route *domain.Route) dto.RouteResponse {
	return dto.RouteResponse{
		RouteID:                  route.RouteID,
		Name:                     route.Name,
		DriverID:                 route.DriverID,
		Status:                   route.Status,
		StopSequence:             route.StopSequence,
		TotalDistanceKm:          route.TotalDistanceKm,
		EstimatedDurationMinutes: route.EstimatedDurationMinutes,
		Algorithm:                route.Algorithm,
		OptimizedAt:              route.OptimizedAt,
	}
}
