// ABOUTME: Route table for the HTTP API.
// ABOUTME: Mounts card handlers under /api with chi request middleware.

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes returns the HTTP handler serving the API.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	r.Get("/health", s.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Get("/cards", s.ListCards)
		r.Post("/cards", s.CreateCard)
		r.Get("/cards/{id}", s.GetCard)
		r.Delete("/cards/{id}", s.DeleteCard)
		r.Put("/cards/{id}/title", s.RenameCard)
		r.Put("/cards/{id}/tags", s.RetagCard)
		r.Put("/cards/{id}/content", s.RecontentCard)
	})

	return r
}
