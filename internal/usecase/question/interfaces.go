package question

import (
	"context"

	"github.com/sumanth-github/form-backend/internal/entity"
)

// Generator produces text for a directive. Implementations must return
// entity.ErrGeneratorUnavailable when no credential is configured.
type Generator interface {
	Generate(ctx context.Context, prompt string, params entity.SamplingParams) (string, error)
}
