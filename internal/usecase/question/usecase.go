package question

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sumanth-github/form-backend/internal/entity"
	"go.uber.org/zap"
)

const (
	// MaxQuestions caps the number of follow-up questions per session. The
	// provider's sentinel is not reliable enough to be the sole stop
	// condition, so the cap is the deterministic termination guarantee.
	MaxQuestions = 5

	// sentinel is the exact provider response meaning no further question
	// is needed.
	sentinel = "DONE"

	// fallbackQuestion is returned whenever the provider call fails. The
	// engine never surfaces provider errors to its caller.
	fallbackQuestion = "What is the target audience for this product?"
)

var samplingParams = entity.SamplingParams{
	Temperature:     0.7,
	TopK:            40,
	TopP:            0.95,
	MaxOutputTokens: 256,
}

// Usecase is the question session engine. It is stateless across calls: the
// client tracks the running transcript and the asked-question count.
type Usecase struct {
	generator Generator
	logger    *zap.Logger
}

func NewUsecase(generator Generator, logger *zap.Logger) *Usecase {
	return &Usecase{
		generator: generator,
		logger:    logger,
	}
}

// NextQuestion decides whether the session continues. It is total: every
// input produces an outcome, never an error.
func (uc *Usecase) NextQuestion(ctx context.Context, req *entity.NextQuestionRequest) entity.NextQuestionOutcome {
	if req.AskedCount >= MaxQuestions {
		ctxzap.Info(ctx, "question cap reached", zap.Int("asked_count", req.AskedCount))
		return entity.NextQuestionOutcome{Done: true}
	}

	text, err := uc.generator.Generate(ctx, buildPrompt(req), samplingParams)
	if err != nil {
		if errors.Is(err, entity.ErrGeneratorUnavailable) {
			ctxzap.Warn(ctx, "generation provider not configured, using fallback question")
		} else {
			ctxzap.Error(ctx, "failed to generate question", zap.Error(err))
		}
		return entity.NextQuestionOutcome{Question: fallbackQuestion}
	}

	text = strings.TrimSpace(text)
	if text == "" || text == sentinel {
		ctxzap.Info(ctx, "provider signaled no further questions")
		return entity.NextQuestionOutcome{Done: true}
	}

	return entity.NextQuestionOutcome{Question: text}
}

func buildPrompt(req *entity.NextQuestionRequest) string {
	product := fmt.Sprintf("Product Name: %s\nCategory: %s\nDescription: %s",
		req.Name, req.Category, req.Description)

	if req.PreviousAnswer != nil && *req.PreviousAnswer != "" {
		return fmt.Sprintf(`Based on the previous answer: %q, generate one concise, professional follow-up question that helps uncover transparent and verifiable information about the product. Focus on details such as ingredients, sourcing, certifications, sustainability, claims, or safety. If no more questions are needed, return %q.

%s

Return only the question text. Do not add numbering, explanations, or filler text.`,
			*req.PreviousAnswer, sentinel, product)
	}

	return fmt.Sprintf(`Generate the first professional, context-aware follow-up question that gathers transparent and verifiable information about this product. Focus on details such as ingredients, sourcing, certifications, sustainability, claims, or safety. If no questions are needed, return %q.

%s

Return only the question text. Do not add numbering, explanations, or filler text.`,
		sentinel, product)
}
