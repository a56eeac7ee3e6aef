package report

import (
	"context"

	"github.com/sumanth-github/form-backend/internal/entity"
	reportuc "github.com/sumanth-github/form-backend/internal/usecase/report"
)

type ReportUsecase interface {
	Preview(ctx context.Context, productID string) (string, error)
	Prepare(ctx context.Context, productID string, format entity.ReportFormat) (*reportuc.Report, error)
}
