package gemini

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sumanth-github/form-backend/internal/entity"
	"go.uber.org/zap"
)

// MockConnector is a canned-text generator for local runs without a Gemini
// credential.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Generate(ctx context.Context, prompt string, params entity.SamplingParams) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating text", zap.Int("prompt_length", len(prompt)))

	// Summary directives ask for a narrative; everything else is a question
	// directive.
	if strings.Contains(prompt, "Summarize") {
		return "This product presents a clear transparency profile based on the information provided. (MOCK)", nil
	}

	return "What certifications does this product hold?", nil
}
