package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sumanth-github/form-backend/internal/entity"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	Create(ctx context.Context, product entity.Product) (*entity.Product, error)
	Get(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	SetSubmitted(ctx context.Context, id string) (*entity.Product, error)
}

var _ ProductRepository = &ProductPostgres{}

// ProductPostgres implements ProductRepository using PostgreSQL
type ProductPostgres struct {
	db *pgxpool.Pool
}

func NewProductPostgres(db *pgxpool.Pool) *ProductPostgres {
	return &ProductPostgres{
		db: db,
	}
}

func (r *ProductPostgres) Create(ctx context.Context, product entity.Product) (*entity.Product, error) {
	productID, err := uuid.Parse(product.ID)
	if err != nil {
		return nil, fmt.Errorf("parse product ID: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	created := entity.Product{Questions: []*entity.Question{}}
	err = tx.QueryRow(ctx,
		`INSERT INTO products (id, name, category, description, submitted)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, name, category, description, submitted, report_url, created_at, updated_at`,
		productID, product.Name, product.Category, product.Description, product.Submitted,
	).Scan(&created.ID, &created.Name, &created.Category, &created.Description,
		&created.Submitted, &created.ReportURL, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	if len(product.Questions) > 0 {
		rows := make([][]interface{}, 0, len(product.Questions))
		for i, q := range product.Questions {
			questionID, err := uuid.Parse(q.ID)
			if err != nil {
				return nil, fmt.Errorf("parse question ID: %w", err)
			}
			rows = append(rows, []interface{}{questionID, productID, i + 1, q.Question, q.Answer})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"product_questions"},
			[]string{"id", "product_id", "position", "question", "answer"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return nil, fmt.Errorf("batch create questions: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return r.Get(ctx, created.ID)
}

func (r *ProductPostgres) Get(ctx context.Context, id string) (*entity.Product, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return nil, entity.ErrProductNotFound
	}

	product := entity.Product{Questions: []*entity.Question{}}
	err = r.db.QueryRow(ctx,
		`SELECT id, name, category, description, submitted, report_url, created_at, updated_at
		 FROM products WHERE id = $1`,
		productID,
	).Scan(&product.ID, &product.Name, &product.Category, &product.Description,
		&product.Submitted, &product.ReportURL, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	questions, err := r.listQuestions(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	product.Questions = questions

	return &product, nil
}

func (r *ProductPostgres) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, category, description, submitted, report_url, created_at, updated_at
		 FROM products ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]*entity.Product, 0)
	byID := make(map[string]*entity.Product)
	for rows.Next() {
		product := entity.Product{Questions: []*entity.Question{}}
		if err := rows.Scan(&product.ID, &product.Name, &product.Category, &product.Description,
			&product.Submitted, &product.ReportURL, &product.CreatedAt, &product.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, &product)
		byID[product.ID] = &product
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	qRows, err := r.db.Query(ctx,
		`SELECT id, product_id, position, question, answer, created_at
		 FROM product_questions ORDER BY product_id, position`)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer qRows.Close()

	for qRows.Next() {
		var q entity.Question
		if err := qRows.Scan(&q.ID, &q.ProductID, &q.Position, &q.Question, &q.Answer, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if product, ok := byID[q.ProductID]; ok {
			product.Questions = append(product.Questions, &q)
		}
	}
	if err := qRows.Err(); err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	return products, nil
}

func (r *ProductPostgres) SetSubmitted(ctx context.Context, id string) (*entity.Product, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return nil, entity.ErrProductNotFound
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE products SET submitted = TRUE, updated_at = now() WHERE id = $1`,
		productID)
	if err != nil {
		return nil, fmt.Errorf("set submitted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entity.ErrProductNotFound
	}

	return r.Get(ctx, id)
}

func (r *ProductPostgres) listQuestions(ctx context.Context, productID string) ([]*entity.Question, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, product_id, position, question, answer, created_at
		 FROM product_questions WHERE product_id = $1 ORDER BY position`,
		productID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	questions := make([]*entity.Question, 0)
	for rows.Next() {
		var q entity.Question
		if err := rows.Scan(&q.ID, &q.ProductID, &q.Position, &q.Question, &q.Answer, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	return questions, nil
}
