package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sumanth-github/form-backend/internal/config"
	"github.com/sumanth-github/form-backend/internal/entity"
	pkghttp "github.com/sumanth-github/form-backend/pkg/http"
	"go.uber.org/zap"
)

const apiKeyHeader = "x-goog-api-key"

type Connector struct {
	config    config.GeminiConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.GeminiConnectorConfig,
	logger *zap.Logger,
) *Connector {
	connCfg := &pkghttp.ConnectorConfig{
		Logger:  logger,
		BaseURL: cfg.Url,
	}

	connector := pkghttp.NewConnector(
		connCfg,
		pkghttp.WithRequestTimeout(cfg.RequestTimeout),
		pkghttp.WithConnClientTimeout(cfg.ConnTimeout),
		pkghttp.WithClientKeepAlive(cfg.KeepAlive),
		pkghttp.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkghttp.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkghttp.WithRequestLogging(),
		pkghttp.WithAPIKey(apiKeyHeader, cfg.APIKey),
	)

	return &Connector{
		connector: connector,
		config:    cfg,
		logger:    logger,
	}
}

// Generate sends a single-turn directive to the Gemini generateContent API
// and returns the trimmed candidate text. Callers must treat
// entity.ErrGeneratorUnavailable as an expected degraded mode, not a failure.
func (c *Connector) Generate(ctx context.Context, prompt string, params entity.SamplingParams) (string, error) {
	if c.config.APIKey == "" {
		return "", entity.ErrGeneratorUnavailable
	}

	ctxzap.Info(ctx, "generating text via Gemini",
		zap.String("model", c.config.Model),
		zap.Int("prompt_length", len(prompt)),
	)

	req := &entity.GeminiGenerateRequest{
		Contents: []entity.GeminiContent{
			{Parts: []entity.GeminiPart{{Text: prompt}}},
		},
		GenerationConfig: &entity.GeminiGenerationConfig{
			Temperature:     params.Temperature,
			TopK:            params.TopK,
			TopP:            params.TopP,
			MaxOutputTokens: params.MaxOutputTokens,
		},
	}

	endpoint := fmt.Sprintf("/v1beta/models/%s:generateContent", c.config.Model)

	var resp entity.GeminiGenerateResponse
	if err := c.connector.DoRequest(ctx, http.MethodPost, endpoint, req, &resp); err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in Gemini response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	text := strings.TrimSpace(sb.String())

	ctxzap.Info(ctx, "text generated successfully", zap.Int("result_length", len(text)))

	return text, nil
}
