package ai

import (
	"context"

	"github.com/sumanth-github/form-backend/internal/entity"
)

type QuestionUsecase interface {
	NextQuestion(ctx context.Context, req *entity.NextQuestionRequest) entity.NextQuestionOutcome
}
