package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/scorecard/internal/core/domain"
)

type CriterionRepository interface {
	Create(ctx context.Context, criterion *domain.Criterion) error
	List(ctx context.Context) ([]*domain.Criterion, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateCriterionInput struct {
	Label   string
	Kind    domain.CriterionKind
	Min     *float64
	Max     *float64
	Options []string
	Weight  *float64
}

type CriterionService interface {
	Create(ctx context.Context, input CreateCriterionInput) (*domain.Criterion, error)
	List(ctx context.Context) ([]*domain.Criterion, error)
	Delete(ctx context.Context, id string) error
}
