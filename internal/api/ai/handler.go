package ai

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sumanth-github/form-backend/internal/entity"
	"github.com/sumanth-github/form-backend/internal/pkg/logger"
	"github.com/sumanth-github/form-backend/internal/pkg/response"
	"github.com/sumanth-github/form-backend/internal/pkg/validator"
	"go.uber.org/zap"
)

type Handler struct {
	usecase   QuestionUsecase
	validator *validator.Validator
}

func NewHandler(usecase QuestionUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// GenerateNextQuestion handles POST /api/ai/generate-next-question.
// The question field of the response is null when the session is done.
func (h *Handler) GenerateNextQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateNextQuestion")

	var req entity.NextQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	// Required fields are rejected before any provider call is made.
	if err := h.validator.ValidateNextQuestion(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "missing required product fields", err)
		return
	}

	ctxzap.Info(ctx, "generating next question",
		zap.String("name", req.Name),
		zap.Int("asked_count", req.AskedCount),
	)

	outcome := h.usecase.NextQuestion(ctx, &req)

	resp := entity.NextQuestionResponse{}
	if !outcome.Done {
		resp.Question = &outcome.Question
	}

	response.Success(w, &resp)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Error(ctx, message)
	}
	response.JSON(w, status, entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}
