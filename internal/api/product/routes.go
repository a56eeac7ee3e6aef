package product

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers product routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.CreateProduct)
		r.Get("/", h.ListProducts)

		r.Route("/{product_id}", func(r chi.Router) {
			r.Get("/", h.GetProduct)
			r.Post("/questions", h.AppendQuestion)
			r.Post("/submit", h.SubmitProduct)
		})
	})
}
