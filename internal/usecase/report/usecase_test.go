package report

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sumanth-github/form-backend/internal/entity"
	"github.com/sumanth-github/form-backend/internal/pkg/formatter"
	"go.uber.org/zap"
)

type generatorFunc func(ctx context.Context, prompt string, params entity.SamplingParams) (string, error)

func (f generatorFunc) Generate(ctx context.Context, prompt string, params entity.SamplingParams) (string, error) {
	return f(ctx, prompt, params)
}

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

func testProduct() *entity.Product {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	return &entity.Product{
		ID:          "7f8c8f4e-1111-2222-3333-444455556666",
		Name:        "EcoBottle",
		Category:    "Household",
		Description: "A reusable water bottle made from recycled steel",
		Questions: []*entity.Question{
			{Question: "Where is the steel sourced?", Answer: "Certified recyclers in Sweden"},
			{Question: "What certifications does it hold?", Answer: ""},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newTestUsecase(gen Generator) *Usecase {
	return NewUsecase(&stubProductRepo{product: testProduct()}, gen, formatter.NewFactory(), time.Minute, zap.NewNop())
}

func TestSummarize_FallbackOnProviderFailure(t *testing.T) {
	uc := newTestUsecase(generatorFunc(func(ctx context.Context, prompt string, params entity.SamplingParams) (string, error) {
		return "", errors.New("upstream timeout")
	}))

	summary := uc.Summarize(context.Background(), testProduct())

	for _, want := range []string{
		`Product Report for "EcoBottle"`,
		"Category: Household",
		"Description: A reusable water bottle made from recycled steel",
		"1. Where is the steel sourced?: Certified recyclers in Sweden",
		"2. What certifications does it hold?: Not answered",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("fallback summary missing %q:\n%s", want, summary)
		}
	}
}

func TestSummarize_FallbackOnEmptyResponse(t *testing.T) {
	uc := newTestUsecase(generatorFunc(func(ctx context.Context, prompt string, params entity.SamplingParams) (string, error) {
		return "   \n", nil
	}))

	summary := uc.Summarize(context.Background(), testProduct())
	if !strings.HasPrefix(summary, `Product Report for "EcoBottle"`) {
		t.Errorf("expected fallback summary, got:\n%s", summary)
	}
}

func TestSummarize_PromptCarriesTranscript(t *testing.T) {
	var captured string
	uc := newTestUsecase(generatorFunc(func(ctx context.Context, prompt string, params entity.SamplingParams) (string, error) {
		captured = prompt
		return "A fine product.", nil
	}))

	uc.Summarize(context.Background(), testProduct())

	for _, want := range []string{
		"Product: EcoBottle",
		"1. Where is the steel sourced?: Certified recyclers in Sweden",
		"2. What certifications does it hold?: Not answered",
	} {
		if !strings.Contains(captured, want) {
			t.Errorf("summary prompt missing %q:\n%s", want, captured)
		}
	}
}

func TestSummarize_CachesProviderResults(t *testing.T) {
	calls := 0
	uc := newTestUsecase(generatorFunc(func(ctx context.Context, prompt string, params entity.SamplingParams) (string, error) {
		calls++
		return "A fine product.", nil
	}))

	product := testProduct()
	first := uc.Summarize(context.Background(), product)
	second := uc.Summarize(context.Background(), product)

	if first != "A fine product." || second != first {
		t.Errorf("unexpected summaries: %q / %q", first, second)
	}
	if calls != 1 {
		t.Errorf("expected a single provider call, got %d", calls)
	}

	// A record mutation changes the cache key.
	product.UpdatedAt = product.UpdatedAt.Add(time.Second)
	uc.Summarize(context.Background(), product)
	if calls != 2 {
		t.Errorf("expected a fresh provider call after update, got %d", calls)
	}
}

func TestSummarize_DoesNotCacheFallback(t *testing.T) {
	fail := true
	calls := 0
	uc := newTestUsecase(generatorFunc(func(ctx context.Context, prompt string, params entity.SamplingParams) (string, error) {
		calls++
		if fail {
			return "", errors.New("upstream timeout")
		}
		return "A fine product.", nil
	}))

	product := testProduct()
	if got := uc.Summarize(context.Background(), product); !strings.HasPrefix(got, "Product Report for") {
		t.Fatalf("expected fallback summary, got %q", got)
	}

	// Once the provider recovers, the fallback must not shadow it.
	fail = false
	if got := uc.Summarize(context.Background(), product); got != "A fine product." {
		t.Errorf("expected provider summary after recovery, got %q", got)
	}
	if calls != 2 {
		t.Errorf("expected two provider calls, got %d", calls)
	}
}

func TestPrepare_RejectsUnknownFormat(t *testing.T) {
	uc := newTestUsecase(generatorFunc(func(ctx context.Context, prompt string, params entity.SamplingParams) (string, error) {
		return "A fine product.", nil
	}))

	_, err := uc.Prepare(context.Background(), "id", entity.ReportFormat("xlsx"))
	if !errors.Is(err, entity.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestPrepare_BuildsDownloadableReport(t *testing.T) {
	uc := newTestUsecase(generatorFunc(func(ctx context.Context, prompt string, params entity.SamplingParams) (string, error) {
		return "A fine product.", nil
	}))

	rep, err := uc.Prepare(context.Background(), "id", entity.FormatPDF)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	if rep.ContentType() != "application/pdf" {
		t.Errorf("unexpected content type %q", rep.ContentType())
	}
	if rep.Filename() != "Product_Summary_EcoBottle.pdf" {
		t.Errorf("unexpected filename %q", rep.Filename())
	}

	var buf bytes.Buffer
	if err := rep.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("rendered output is not a PDF, starts with %q", buf.Bytes()[:min(8, buf.Len())])
	}
}

func TestPrepare_NotFoundPropagates(t *testing.T) {
	uc := NewUsecase(
		&stubProductRepo{err: entity.ErrProductNotFound},
		generatorFunc(func(ctx context.Context, prompt string, params entity.SamplingParams) (string, error) {
			return "A fine product.", nil
		}),
		formatter.NewFactory(),
		time.Minute,
		zap.NewNop(),
	)

	if _, err := uc.Prepare(context.Background(), "missing", entity.FormatPDF); !errors.Is(err, entity.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
	if _, err := uc.Preview(context.Background(), "missing"); !errors.Is(err, entity.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound from Preview, got %v", err)
	}
}
