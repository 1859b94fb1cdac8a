package generation

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the stateless generation routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/generate-plan", h.GeneratePlan)
		r.Post("/generate-images", h.GenerateImages)
		r.Post("/text-to-speech", h.TextToSpeech)
	})
}
