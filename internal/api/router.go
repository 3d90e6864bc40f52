package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"route-optimizer-service/internal/api/handlers"
	"route-optimizer-service/internal/metrics"
	"route-optimizer-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	orders ports.OrderRepository,
	drivers ports.DriverRepository,
	routes ports.RouteRepository,
	planCache ports.PlanCache,
	log *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(NewSlogLogger(log))
	r.Use(MetricsMiddleware)

	orderHandler := &handlers.OrderHandler{Repo: orders}
	driverHandler := &handlers.DriverHandler{Repo: drivers}
	routeHandler := &handlers.RouteHandler{
		Routes: routes,
		Orders: orders,
		Cache:  planCache,
		Log:    log,
	}
	optimizeHandler := &handlers.OptimizeHandler{}

	r.Get("/health", handlers.Health)
	r.Get("/orders", orderHandler.List)
	r.Get("/drivers", driverHandler.List)
	r.Get("/routes", routeHandler.List)
	r.Get("/routes/{routeID}", routeHandler.Get)
	r.Post("/routes/{routeID}/optimize", routeHandler.Optimize)
	r.Post("/optimize", optimizeHandler.Optimize)

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return r
}
