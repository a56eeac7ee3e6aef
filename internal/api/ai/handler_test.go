package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sumanth-github/form-backend/internal/entity"
	"github.com/sumanth-github/form-backend/internal/pkg/validator"
)

type stubQuestionUsecase struct {
	outcome entity.NextQuestionOutcome
	calls   int
}

func (s *stubQuestionUsecase) NextQuestion(ctx context.Context, req *entity.NextQuestionRequest) entity.NextQuestionOutcome {
	s.calls++
	return s.outcome
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/generate-next-question", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestGenerateNextQuestion_ReturnsQuestion(t *testing.T) {
	uc := &stubQuestionUsecase{outcome: entity.NextQuestionOutcome{Question: "What certifications does it hold?"}}
	h := NewHandler(uc, validator.New())

	rec := postJSON(t, h.GenerateNextQuestion, `{"name":"EcoBottle","category":"Household","description":"Steel bottle"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}

	var resp entity.NextQuestionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Question == nil || *resp.Question != "What certifications does it hold?" {
		t.Errorf("unexpected question: %+v", resp.Question)
	}
}

func TestGenerateNextQuestion_DoneYieldsNullQuestion(t *testing.T) {
	uc := &stubQuestionUsecase{outcome: entity.NextQuestionOutcome{Done: true}}
	h := NewHandler(uc, validator.New())

	rec := postJSON(t, h.GenerateNextQuestion, `{"name":"EcoBottle","category":"Household","description":"Steel bottle","askedCount":5}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"question":null`) {
		t.Errorf("expected null question in body: %s", rec.Body.String())
	}
}

func TestGenerateNextQuestion_MissingFieldsRejectedBeforeProviderCall(t *testing.T) {
	bodies := []string{
		`{"category":"Household","description":"Steel bottle"}`,
		`{"name":"EcoBottle","description":"Steel bottle"}`,
		`{"name":"EcoBottle","category":"Household"}`,
		`{"name":"EcoBottle","category":"Household","description":"Steel bottle","askedCount":-1}`,
	}

	for _, body := range bodies {
		uc := &stubQuestionUsecase{outcome: entity.NextQuestionOutcome{Question: "unused"}}
		h := NewHandler(uc, validator.New())

		rec := postJSON(t, h.GenerateNextQuestion, body)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status %d, want 400", body, rec.Code)
		}
		if uc.calls != 0 {
			t.Errorf("body %s: usecase called %d times, want 0", body, uc.calls)
		}
	}
}

func TestGenerateNextQuestion_MalformedBody(t *testing.T) {
	uc := &stubQuestionUsecase{}
	h := NewHandler(uc, validator.New())

	rec := postJSON(t, h.GenerateNextQuestion, `{"name":`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", rec.Code)
	}
	if uc.calls != 0 {
		t.Errorf("usecase called %d times, want 0", uc.calls)
	}
}
