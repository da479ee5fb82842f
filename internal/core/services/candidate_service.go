package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/scorecard/internal/core/domain"
	"github.com/vncsmyrnk/scorecard/internal/core/ports"
)

type candidateService struct {
	repo   ports.CandidateRepository
	logger *slog.Logger
}

func NewCandidateService(repo ports.CandidateRepository, logger *slog.Logger) ports.CandidateService {
	return &candidateService{
		repo:   repo,
		logger: resolveLogger(logger),
	}
}

func (s *candidateService) Create(ctx context.Context, input ports.CreateCandidateInput) (*domain.Candidate, error) {
	if input.Number == nil {
		return nil, fmt.Errorf("%w: number is required", domain.ErrInvalidCandidate)
	}
	if !domain.ValidCandidateNumber(*input.Number) {
		return nil, fmt.Errorf("%w: number out of range", domain.ErrInvalidCandidate)
	}

	candidate := &domain.Candidate{
		ID:        uuid.New(),
		Number:    *input.Number,
		Name:      strings.TrimSpace(input.Name),
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, candidate); err != nil {
		if errors.Is(err, domain.ErrCandidateNumberTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	s.logger.Info("candidate created", "candidate_id", candidate.ID, "number", candidate.Number)
	return candidate, nil
}

func (s *candidateService) List(ctx context.Context) ([]*domain.Candidate, error) {
	return s.repo.List(ctx)
}

// Delete removes the candidate only. Votes cast for it stay in the store and
// are skipped by the results aggregation.
func (s *candidateService) Delete(ctx context.Context, id string) error {
	candidateID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrCandidateNotFound
	}
	if err := s.repo.Delete(ctx, candidateID); err != nil {
		return err
	}
	s.logger.Info("candidate deleted", "candidate_id", candidateID)
	return nil
}
