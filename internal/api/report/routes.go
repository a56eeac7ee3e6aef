package report

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers report generation routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/preview/{product_id}", h.Preview)
		r.Post("/generate/{product_id}", h.Generate)
	})
}
