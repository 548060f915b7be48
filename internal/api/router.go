package api

import (
	"greatcircle-service/internal/api/handlers"
	"greatcircle-service/internal/ports"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// Metrics are registered on reg and served from /metrics.
func NewRouter(
	logger zerolog.Logger,
	repo ports.PlaceRepository,
	provider ports.DistanceProvider,
	reg *prometheus.Registry,
) http.Handler {
	m := newMetrics(reg)

	placeHandler := &handlers.PlaceHandler{Repo: repo}
	distanceHandler := handlers.NewDistanceHandler(provider, m.distanceRequests)

	r := chi.NewRouter()
	r.Use(requestIDMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(loggingMiddleware)
	r.Use(metricsMiddleware(m))

	r.Get("/health", handlers.Health)
	r.Get("/places", placeHandler.List)
	r.Post("/distances", distanceHandler.Distance)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return r
}
