package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	cache "github.com/patrickmn/go-cache"
	"github.com/sumanth-github/form-backend/internal/entity"
	"github.com/sumanth-github/form-backend/internal/pkg/formatter"
	"github.com/sumanth-github/form-backend/internal/pkg/validator"
	"github.com/sumanth-github/form-backend/internal/repository"
	"go.uber.org/zap"
)

var summaryParams = entity.SamplingParams{
	Temperature:     0.7,
	MaxOutputTokens: 1024,
}

// Usecase composes narrative summaries and prepares rendered reports.
type Usecase struct {
	productRepo repository.ProductRepository
	generator   Generator
	formatters  *formatter.Factory
	summaries   *cache.Cache
	logger      *zap.Logger
}

func NewUsecase(
	productRepo repository.ProductRepository,
	generator Generator,
	formatters *formatter.Factory,
	summaryTTL time.Duration,
	logger *zap.Logger,
) *Usecase {
	return &Usecase{
		productRepo: productRepo,
		generator:   generator,
		formatters:  formatters,
		summaries:   cache.New(summaryTTL, 2*summaryTTL),
		logger:      logger,
	}
}

// Preview returns the narrative summary for a stored product.
func (uc *Usecase) Preview(ctx context.Context, productID string) (string, error) {
	product, err := uc.productRepo.Get(ctx, productID)
	if err != nil {
		return "", fmt.Errorf("get product: %w", err)
	}

	return uc.Summarize(ctx, product), nil
}

// Report bundles everything needed to stream one rendered report.
type Report struct {
	Product   *entity.Product
	Summary   string
	formatter formatter.Formatter
}

// Prepare fetches the product, composes its summary and selects the
// formatter. Rendering is left to Render so the caller can set response
// headers before any bytes are written.
func (uc *Usecase) Prepare(ctx context.Context, productID string, format entity.ReportFormat) (*Report, error) {
	fmtr, err := uc.formatters.Create(format)
	if err != nil {
		return nil, err
	}

	product, err := uc.productRepo.Get(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	return &Report{
		Product:   product,
		Summary:   uc.Summarize(ctx, product),
		formatter: fmtr,
	}, nil
}

func (r *Report) ContentType() string {
	return r.formatter.ContentType()
}

func (r *Report) Filename() string {
	return "Product_Summary_" + validator.SanitizeFilename(r.Product.Name) + r.formatter.FileExtension()
}

// Render streams the report to w and finalizes it.
func (r *Report) Render(w io.Writer) error {
	return r.formatter.Format(r.Product, r.Summary, w)
}

// Summarize produces the stakeholder-facing narrative for a product. It is
// total: provider degradation of any kind yields the deterministic fallback
// template instead of an error.
func (uc *Usecase) Summarize(ctx context.Context, product *entity.Product) string {
	key := summaryCacheKey(product)
	if cached, ok := uc.summaries.Get(key); ok {
		ctxzap.Debug(ctx, "summary served from cache", zap.String("product_id", product.ID))
		return cached.(string)
	}

	text, err := uc.generator.Generate(ctx, buildSummaryPrompt(product), summaryParams)
	if err != nil {
		if errors.Is(err, entity.ErrGeneratorUnavailable) {
			ctxzap.Warn(ctx, "generation provider not configured, using fallback summary")
		} else {
			ctxzap.Error(ctx, "failed to generate summary", zap.Error(err))
		}
		return fallbackSummary(product)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		ctxzap.Warn(ctx, "provider returned empty summary, using fallback")
		return fallbackSummary(product)
	}

	// Only provider results are cached; the fallback template is cheap to
	// recompute.
	uc.summaries.Set(key, text, cache.DefaultExpiration)

	return text
}

// summaryCacheKey includes updatedAt so any mutation of the record
// invalidates its cached summary.
func summaryCacheKey(product *entity.Product) string {
	return product.ID + "@" + product.UpdatedAt.UTC().Format(time.RFC3339Nano)
}

func buildSummaryPrompt(product *entity.Product) string {
	return fmt.Sprintf(`Summarize product and its follow-up answers for stakeholders:
Product: %s
Category: %s
Description: %s
Follow-Up Answers:
%s`,
		product.Name, product.Category, product.Description,
		strings.Join(product.TranscriptLines(), "\n"))
}

func fallbackSummary(product *entity.Product) string {
	return fmt.Sprintf(`Product Report for %q
Category: %s
Description: %s

Follow-Up Answers:
%s`,
		product.Name, product.Category, product.Description,
		strings.Join(product.TranscriptLines(), "\n"))
}
