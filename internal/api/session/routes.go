package session

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers session routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", h.CreateSession)
		r.Get("/{id}", h.GetSession)
		r.Post("/{id}/generate", h.GeneratePlan)
		r.Post("/{id}/retry", h.RetryPlan)
		r.Post("/{id}/save", h.SavePlan)
		r.Delete("/{id}", h.DeleteSession)
	})
}
