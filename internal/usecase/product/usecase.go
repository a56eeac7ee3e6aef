package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sumanth-github/form-backend/internal/entity"
	"github.com/sumanth-github/form-backend/internal/repository"
	"go.uber.org/zap"
)

// Usecase implements product business logic
type Usecase struct {
	productRepo  repository.ProductRepository
	questionRepo repository.QuestionRepository
	logger       *zap.Logger
}

func NewUsecase(
	productRepo repository.ProductRepository,
	questionRepo repository.QuestionRepository,
	logger *zap.Logger,
) *Usecase {
	return &Usecase{
		productRepo:  productRepo,
		questionRepo: questionRepo,
		logger:       logger,
	}
}

// CreateProduct persists a new product with any initial transcript entries.
func (uc *Usecase) CreateProduct(ctx context.Context, req *entity.CreateProductRequest) (*entity.Product, error) {
	product := entity.Product{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Submitted:   req.Submitted,
		Questions:   make([]*entity.Question, 0, len(req.Questions)),
	}

	for _, q := range req.Questions {
		product.Questions = append(product.Questions, &entity.Question{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Question:  q.Question,
			Answer:    q.Answer,
		})
	}

	created, err := uc.productRepo.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	ctxzap.Info(ctx, "product created", zap.String("product_id", created.ID))

	return created, nil
}

func (uc *Usecase) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return products, nil
}

func (uc *Usecase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	return product, nil
}

// AppendQuestion appends one question/answer pair to the stored transcript
// and returns the updated record.
func (uc *Usecase) AppendQuestion(ctx context.Context, productID string, req *entity.AppendQuestionRequest) (*entity.Product, error) {
	appended, err := uc.questionRepo.Append(ctx, entity.Question{
		ID:        uuid.New().String(),
		ProductID: productID,
		Question:  req.Question,
		Answer:    req.Answer,
	})
	if err != nil {
		return nil, fmt.Errorf("append question: %w", err)
	}

	ctxzap.Info(ctx, "question appended",
		zap.String("product_id", productID),
		zap.Int("position", appended.Position),
	)

	return uc.productRepo.Get(ctx, productID)
}

// SubmitProduct marks the Q&A phase complete for a product.
func (uc *Usecase) SubmitProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.SetSubmitted(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("submit product: %w", err)
	}

	ctxzap.Info(ctx, "product submitted", zap.String("product_id", id))

	return product, nil
}
