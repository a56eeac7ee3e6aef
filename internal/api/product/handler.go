package product

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sumanth-github/form-backend/internal/entity"
	"github.com/sumanth-github/form-backend/internal/pkg/logger"
	"github.com/sumanth-github/form-backend/internal/pkg/response"
	"github.com/sumanth-github/form-backend/internal/pkg/validator"
	"go.uber.org/zap"
)

type Handler struct {
	usecase   ProductUsecase
	validator *validator.Validator
}

func NewHandler(usecase ProductUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// CreateProduct handles POST /api/products
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateProduct")

	var req entity.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateCreateProduct(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed: "+err.Error(), err)
		return
	}

	ctxzap.Info(ctx, "creating product",
		zap.String("name", req.Name),
		zap.String("category", req.Category),
	)

	product, err := h.usecase.CreateProduct(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Created(w, product)
}

// ListProducts handles GET /api/products
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListProducts")

	products, err := h.usecase.ListProducts(ctx)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "products listed successfully", zap.Int("count", len(products)))
	response.Success(w, products)
}

// GetProduct handles GET /api/products/{product_id}
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("product_id", productID),
		zap.String("action", "GetProduct"),
	)

	product, err := h.usecase.GetProduct(ctx, productID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, product)
}

// AppendQuestion handles POST /api/products/{product_id}/questions
func (h *Handler) AppendQuestion(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("product_id", productID),
		zap.String("action", "AppendQuestion"),
	)

	var req entity.AppendQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateAppendQuestion(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed: "+err.Error(), err)
		return
	}

	product, err := h.usecase.AppendQuestion(ctx, productID, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, product)
}

// SubmitProduct handles POST /api/products/{product_id}/submit
func (h *Handler) SubmitProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("product_id", productID),
		zap.String("action", "SubmitProduct"),
	)

	product, err := h.usecase.SubmitProduct(ctx, productID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, product)
}

// Helper methods
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
	} else if errors.Is(err, entity.ErrMissingField) || errors.Is(err, entity.ErrInvalidParameter) {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
