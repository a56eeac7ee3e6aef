package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	aiapi "github.com/sumanth-github/form-backend/internal/api/ai"
	"github.com/sumanth-github/form-backend/internal/api/docs"
	"github.com/sumanth-github/form-backend/internal/api/middleware"
	productapi "github.com/sumanth-github/form-backend/internal/api/product"
	reportapi "github.com/sumanth-github/form-backend/internal/api/report"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(productHandler *productapi.Handler, aiHandler *aiapi.Handler, reportHandler *reportapi.Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                 // Recover from panics
	r.Use(chimiddleware.RequestID)                 // Add request ID
	r.Use(middleware.Logger(logger))               // Log requests
	r.Use(middleware.CORS)                         // Handle CORS
	r.Use(chimiddleware.Timeout(60 * time.Second)) // Default timeout

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		productapi.RegisterRoutes(r, productHandler)
		aiapi.RegisterRoutes(r, aiHandler)
		reportapi.RegisterRoutes(r, reportHandler)
	})

	return r
}
