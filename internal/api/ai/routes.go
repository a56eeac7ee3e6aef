package ai

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers AI question-generation routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/ai", func(r chi.Router) {
		r.Post("/generate-next-question", h.GenerateNextQuestion)
	})
}
