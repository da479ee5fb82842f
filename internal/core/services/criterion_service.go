package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/scorecard/internal/core/domain"
	"github.com/vncsmyrnk/scorecard/internal/core/ports"
)

type criterionService struct {
	repo   ports.CriterionRepository
	logger *slog.Logger
}

func NewCriterionService(repo ports.CriterionRepository, logger *slog.Logger) ports.CriterionService {
	return &criterionService{
		repo:   repo,
		logger: resolveLogger(logger),
	}
}

func (s *criterionService) Create(ctx context.Context, input ports.CreateCriterionInput) (*domain.Criterion, error) {
	criterion, err := newCriterion(input)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, criterion); err != nil {
		return nil, fmt.Errorf("failed to create criterion: %w", err)
	}

	s.logger.Info("criterion created", "criterion_id", criterion.ID, "label", criterion.Label, "kind", criterion.Kind)
	return criterion, nil
}

func (s *criterionService) List(ctx context.Context) ([]*domain.Criterion, error) {
	return s.repo.List(ctx)
}

// Delete removes the criterion without touching stored answers; those become
// dangling and are ignored when results are computed.
func (s *criterionService) Delete(ctx context.Context, id string) error {
	criterionID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrCriterionNotFound
	}
	if err := s.repo.Delete(ctx, criterionID); err != nil {
		return err
	}
	s.logger.Info("criterion deleted", "criterion_id", criterionID)
	return nil
}

func newCriterion(input ports.CreateCriterionInput) (*domain.Criterion, error) {
	label := strings.TrimSpace(input.Label)
	if label == "" {
		return nil, fmt.Errorf("%w: label is required", domain.ErrInvalidCriterion)
	}

	kind := input.Kind
	if kind == "" {
		kind = domain.CriterionNumeric
	}
	if !domain.ValidKind(kind) {
		return nil, fmt.Errorf("%w: type must be numeric or named", domain.ErrInvalidCriterion)
	}

	weight := domain.DefaultWeight
	if input.Weight != nil {
		weight = *input.Weight
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return nil, fmt.Errorf("%w: weight must be a non-negative number", domain.ErrInvalidCriterion)
	}

	criterion := &domain.Criterion{
		ID:        uuid.New(),
		Label:     label,
		Kind:      kind,
		Weight:    weight,
		CreatedAt: time.Now(),
	}

	switch kind {
	case domain.CriterionNumeric:
		for _, bound := range []*float64{input.Min, input.Max} {
			if bound != nil && (math.IsNaN(*bound) || math.IsInf(*bound, 0)) {
				return nil, fmt.Errorf("%w: bounds must be finite", domain.ErrInvalidCriterion)
			}
		}
		criterion.Min = input.Min
		criterion.Max = input.Max
		if lo, hi := criterion.Bounds(); lo > hi {
			return nil, fmt.Errorf("%w: numericMin must not exceed numericMax", domain.ErrInvalidCriterion)
		}
		criterion.Options = []string{}
	case domain.CriterionNamed:
		options := make([]string, 0, len(input.Options))
		seen := make(map[string]bool, len(input.Options))
		for _, opt := range input.Options {
			if opt == "" || seen[opt] {
				continue
			}
			seen[opt] = true
			options = append(options, opt)
		}
		if len(options) == 0 {
			return nil, fmt.Errorf("%w: named criteria need at least one option", domain.ErrInvalidCriterion)
		}
		criterion.Options = options
	}

	return criterion, nil
}
