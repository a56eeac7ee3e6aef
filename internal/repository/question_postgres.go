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

// QuestionRepository appends and reads transcript entries. Questions are
// append-only: there is no update or delete.
type QuestionRepository interface {
	Append(ctx context.Context, question entity.Question) (*entity.Question, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.Question, error)
}

var _ QuestionRepository = &QuestionPostgres{}

type QuestionPostgres struct {
	db *pgxpool.Pool
}

func NewQuestionPostgres(db *pgxpool.Pool) *QuestionPostgres {
	return &QuestionPostgres{
		db: db,
	}
}

// Append inserts the question at the next position for its product and
// touches the product's updated_at. The position subquery runs inside the
// same transaction, so order stays monotonic.
func (r *QuestionPostgres) Append(ctx context.Context, question entity.Question) (*entity.Question, error) {
	questionID, err := uuid.Parse(question.ID)
	if err != nil {
		return nil, fmt.Errorf("parse question ID: %w", err)
	}

	productID, err := uuid.Parse(question.ProductID)
	if err != nil {
		return nil, entity.ErrProductNotFound
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE products SET updated_at = now() WHERE id = $1`,
		productID)
	if err != nil {
		return nil, fmt.Errorf("touch product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entity.ErrProductNotFound
	}

	var appended entity.Question
	err = tx.QueryRow(ctx,
		`INSERT INTO product_questions (id, product_id, position, question, answer)
		 VALUES ($1, $2,
		         (SELECT COALESCE(MAX(position), 0) + 1 FROM product_questions WHERE product_id = $2),
		         $3, $4)
		 RETURNING id, product_id, position, question, answer, created_at`,
		questionID, productID, question.Question, question.Answer,
	).Scan(&appended.ID, &appended.ProductID, &appended.Position,
		&appended.Question, &appended.Answer, &appended.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("append question: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return &appended, nil
}

func (r *QuestionPostgres) ListByProduct(ctx context.Context, productID string) ([]*entity.Question, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, entity.ErrProductNotFound
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, product_id, position, question, answer, created_at
		 FROM product_questions WHERE product_id = $1 ORDER BY position`,
		id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []*entity.Question{}, nil
		}
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
