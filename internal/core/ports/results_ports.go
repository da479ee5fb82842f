package ports

import (
	"context"

	"github.com/vncsmyrnk/scorecard/internal/core/domain"
)

type ResultsService interface {
	ComputeResults(ctx context.Context) (*domain.Results, error)
}
