package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sumanth-github/form-backend/internal/api"
	aiapi "github.com/sumanth-github/form-backend/internal/api/ai"
	productapi "github.com/sumanth-github/form-backend/internal/api/product"
	reportapi "github.com/sumanth-github/form-backend/internal/api/report"
	"github.com/sumanth-github/form-backend/internal/config"
	"github.com/sumanth-github/form-backend/internal/integration/gemini"
	"github.com/sumanth-github/form-backend/internal/pkg/formatter"
	"github.com/sumanth-github/form-backend/internal/pkg/validator"
	"github.com/sumanth-github/form-backend/internal/repository"
	"github.com/sumanth-github/form-backend/internal/usecase/product"
	"github.com/sumanth-github/form-backend/internal/usecase/question"
	"github.com/sumanth-github/form-backend/internal/usecase/report"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	productRepo := repository.NewProductPostgres(db)
	questionRepo := repository.NewQuestionPostgres(db)
	logger.Info("Repositories initialized")

	// Initialize the text generator (with mock support)
	var generator question.Generator
	if cfg.EnableMocks {
		logger.Info("Using mock Gemini connector")
		generator = gemini.NewMockConnector(logger)
	} else {
		logger.Info("Using real Gemini connector",
			zap.String("model", cfg.GeminiCfg.Model),
		)
		generator = gemini.NewConnector(cfg.GeminiCfg, logger)
	}

	// Initialize validators
	productValidator := validator.New()

	// Initialize use cases
	questionUC := question.NewUsecase(generator, logger)
	productUC := product.NewUsecase(productRepo, questionRepo, logger)
	reportUC := report.NewUsecase(
		productRepo,
		generator,
		formatter.NewFactory(),
		cfg.SummaryCacheTTL,
		logger,
	)
	logger.Info("Use cases initialized")

	// Setup API handlers
	productHandler := productapi.NewHandler(productUC, productValidator)
	aiHandler := aiapi.NewHandler(questionUC, productValidator)
	reportHandler := reportapi.NewHandler(reportUC)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(productHandler, aiHandler, reportHandler, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}
