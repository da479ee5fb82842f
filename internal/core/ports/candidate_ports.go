package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/scorecard/internal/core/domain"
)

type CandidateRepository interface {
	Create(ctx context.Context, candidate *domain.Candidate) error
	GetByNumber(ctx context.Context, number int) (*domain.Candidate, error)
	List(ctx context.Context) ([]*domain.Candidate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateCandidateInput struct {
	Number *int
	Name   string
}

type CandidateService interface {
	Create(ctx context.Context, input CreateCandidateInput) (*domain.Candidate, error)
	List(ctx context.Context) ([]*domain.Candidate, error)
	Delete(ctx context.Context, id string) error
}
