package report

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sumanth-github/form-backend/internal/entity"
	"github.com/sumanth-github/form-backend/internal/pkg/logger"
	"github.com/sumanth-github/form-backend/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	usecase ReportUsecase
}

func NewHandler(usecase ReportUsecase) *Handler {
	return &Handler{
		usecase: usecase,
	}
}

// Preview handles GET /api/reports/preview/{product_id} and returns the
// narrative summary without rendering a document.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	ctx := logger.WithAction(r.Context(), "PreviewReport")
	ctx = logger.AddFields(ctx, zap.String("product_id", productID))

	summary, err := h.usecase.Preview(ctx, productID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, &entity.SummaryResponse{Summary: summary})
}

// Generate handles POST /api/reports/generate/{product_id} and streams the
// rendered document as the response body.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	ctx := logger.WithAction(r.Context(), "GenerateReport")
	ctx = logger.AddFields(ctx, zap.String("product_id", productID))

	format := entity.FormatPDF
	if qf := r.URL.Query().Get("format"); qf != "" {
		format = entity.ReportFormat(qf)
	}

	rep, err := h.usecase.Prepare(ctx, productID, format)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", rep.ContentType())
	w.Header().Set("Content-Disposition", "attachment; filename="+rep.Filename())

	// Headers are out once rendering starts; failures here can only be
	// logged.
	if err := rep.Render(w); err != nil {
		ctxzap.Error(ctx, "failed to render report", zap.Error(err))
		return
	}

	ctxzap.Info(ctx, "report generated", zap.String("format", string(format)))
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

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrProductNotFound) {
		h.respondError(ctx, w, http.StatusNotFound, "product not found", err)
	} else if errors.Is(err, entity.ErrInvalidParameter) {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
