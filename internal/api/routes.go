package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET  /health                     - liveness check
//	GET  /api/v1/panchanga/metadata  - dropdown reference lists
//	POST /api/v1/panchanga/find      - calendar record for city/date/time
func SetupRoutes(handlers *Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(Recovery())
	r.Use(CORS())

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1/panchanga", func(r chi.Router) {
		r.Get("/metadata", handlers.Metadata)
		r.Post("/find", handlers.FindPanchanga)
	})

	return r
}
