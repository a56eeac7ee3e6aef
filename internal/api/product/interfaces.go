package product

import (
	"context"

	"github.com/sumanth-github/form-backend/internal/entity"
)

type ProductUsecase interface {
	CreateProduct(ctx context.Context, req *entity.CreateProductRequest) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	AppendQuestion(ctx context.Context, productID string, req *entity.AppendQuestionRequest) (*entity.Product, error)
	SubmitProduct(ctx context.Context, id string) (*entity.Product, error)
}
