package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the HTTP routes for the demo API
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", HealthHandler)
	r.Get("/ai/status", h.AIStatusHandler)
	r.Get("/companies", h.CompaniesHandler)
	r.Post("/fragmentation", h.FragmentationHandler)
	r.Post("/score", h.ScoreHandler)
	r.Post("/rate", h.RateHandler)

	return r
}
