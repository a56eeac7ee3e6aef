package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sumanth-github/form-backend/internal/entity"
	"github.com/sumanth-github/form-backend/internal/pkg/formatter"
	reportuc "github.com/sumanth-github/form-backend/internal/usecase/report"
	"go.uber.org/zap"
)

type stubProductRepo struct {
	product *entity.Product
	err     error
}

func (s *stubProductRepo) Create(ctx context.Context, product entity.Product) (*entity.Product, error) {
	return s.product, s.err
}

func (s *stubProductRepo) Get(ctx context.Context, id string) (*entity.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.product, nil
}

func (s *stubProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return []*entity.Product{s.product}, s.err
}

func (s *stubProductRepo) SetSubmitted(ctx context.Context, id string) (*entity.Product, error) {
	return s.product, s.err
}

type generatorFunc func(ctx context.Context, prompt string, params entity.SamplingParams) (string, error)

func (f generatorFunc) Generate(ctx context.Context, prompt string, params entity.SamplingParams) (string, error) {
	return f(ctx, prompt, params)
}

func storedProduct() *entity.Product {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	return &entity.Product{
		ID:          "p1",
		Name:        "Eco Bottle",
		Category:    "Household",
		Description: "A reusable water bottle made from recycled steel",
		Questions: []*entity.Question{
			{Question: "Where is the steel sourced?", Answer: "Certified recyclers in Sweden"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newTestRouter(repoErr error, gen reportuc.Generator) http.Handler {
	repo := &stubProductRepo{product: storedProduct(), err: repoErr}
	uc := reportuc.NewUsecase(repo, gen, formatter.NewFactory(), time.Minute, zap.NewNop())

	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(uc))
	return r
}

func okGenerator(ctx context.Context, prompt string, params entity.SamplingParams) (string, error) {
	return "A fine product.", nil
}

func TestPreview_ReturnsSummary(t *testing.T) {
	router := newTestRouter(nil, generatorFunc(okGenerator))

	req := httptest.NewRequest(http.MethodGet, "/reports/preview/p1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}

	var resp entity.SummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Summary != "A fine product." {
		t.Errorf("unexpected summary %q", resp.Summary)
	}
}

func TestPreview_NotFound(t *testing.T) {
	router := newTestRouter(entity.ErrProductNotFound, generatorFunc(okGenerator))

	req := httptest.NewRequest(http.MethodGet, "/reports/preview/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status %d, want 404", rec.Code)
	}
}

func TestGenerate_DefaultsToPDFAttachment(t *testing.T) {
	router := newTestRouter(nil, generatorFunc(okGenerator))

	req := httptest.NewRequest(http.MethodPost, "/reports/generate/p1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type %q, want application/pdf", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != "attachment; filename=Product_Summary_Eco_Bottle.pdf" {
		t.Errorf("unexpected content disposition %q", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Errorf("body is not a PDF document")
	}
}

func TestGenerate_MarkdownFormat(t *testing.T) {
	router := newTestRouter(nil, generatorFunc(okGenerator))

	req := httptest.NewRequest(http.MethodPost, "/reports/generate/p1?format=md", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/markdown; charset=utf-8" {
		t.Errorf("content type %q, want markdown", ct)
	}
	if !strings.Contains(rec.Body.String(), "# Product Summary Report") {
		t.Errorf("body missing report title:\n%s", rec.Body.String())
	}
}

func TestGenerate_UnknownFormatRejected(t *testing.T) {
	router := newTestRouter(nil, generatorFunc(okGenerator))

	req := httptest.NewRequest(http.MethodPost, "/reports/generate/p1?format=xlsx", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", rec.Code)
	}
}

func TestGenerate_NotFoundBeatsRendering(t *testing.T) {
	router := newTestRouter(entity.ErrProductNotFound, generatorFunc(okGenerator))

	req := httptest.NewRequest(http.MethodPost, "/reports/generate/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("error responses must stay JSON, got %q", ct)
	}
}

func TestGenerate_ProviderFailureStillRenders(t *testing.T) {
	failing := generatorFunc(func(ctx context.Context, prompt string, params entity.SamplingParams) (string, error) {
		return "", errors.New("upstream timeout")
	})
	router := newTestRouter(nil, failing)

	req := httptest.NewRequest(http.MethodPost, "/reports/generate/p1?format=md", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `Product Report for "Eco Bottle"`) {
		t.Errorf("expected fallback summary in rendered report:\n%s", rec.Body.String())
	}
}
