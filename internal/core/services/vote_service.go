package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/scorecard/internal/core/domain"
	"github.com/vncsmyrnk/scorecard/internal/core/ports"
)

type voteService struct {
	candidateRepo ports.CandidateRepository
	criterionRepo ports.CriterionRepository
	voteRepo      ports.VoteRepository
	logger        *slog.Logger
	now           func() time.Time
}

func NewVoteService(candidateRepo ports.CandidateRepository, criterionRepo ports.CriterionRepository, voteRepo ports.VoteRepository, logger *slog.Logger) ports.VoteService {
	return &voteService{
		candidateRepo: candidateRepo,
		criterionRepo: criterionRepo,
		voteRepo:      voteRepo,
		logger:        resolveLogger(logger),
		now:           time.Now,
	}
}

// Validate checks a submission against the current candidates and criteria.
// It never looks for an earlier vote: duplicates are rejected by the store.
func (s *voteService) Validate(ctx context.Context, input ports.SubmitVoteInput) (*domain.Vote, error) {
	if input.CandidateNumber == nil || !domain.ValidCandidateNumber(*input.CandidateNumber) {
		return nil, &domain.ValidationError{Kind: domain.ErrCandidateNotFound}
	}

	candidate, err := s.candidateRepo.GetByNumber(ctx, *input.CandidateNumber)
	if err != nil {
		if errors.Is(err, domain.ErrCandidateNotFound) {
			return nil, &domain.ValidationError{Kind: domain.ErrCandidateNotFound}
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	if len(input.Answers) == 0 {
		return nil, &domain.ValidationError{Kind: domain.ErrEmptyAnswers}
	}

	criteria, err := s.criterionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list criteria: %w", err)
	}
	byID := make(map[uuid.UUID]*domain.Criterion, len(criteria))
	for _, c := range criteria {
		byID[c.ID] = c
	}

	answers := make([]domain.Answer, 0, len(input.Answers))
	for _, in := range input.Answers {
		id, err := uuid.Parse(in.CriterionID)
		if err != nil {
			return nil, &domain.ValidationError{Kind: domain.ErrUnknownCriterion, CriterionID: in.CriterionID}
		}
		crit, ok := byID[id]
		if !ok {
			return nil, &domain.ValidationError{Kind: domain.ErrUnknownCriterion, CriterionID: in.CriterionID}
		}
		if err := checkAnswer(crit, in.Value); err != nil {
			return nil, err
		}
		answers = append(answers, domain.Answer{CriterionID: id, Value: in.Value})
	}

	return &domain.Vote{
		ID:          uuid.New(),
		JudgeID:     input.JudgeID,
		CandidateID: candidate.ID,
		Answers:     answers,
		CreatedAt:   s.now(),
	}, nil
}

func (s *voteService) Submit(ctx context.Context, input ports.SubmitVoteInput) (*domain.Vote, error) {
	vote, err := s.Validate(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := s.voteRepo.Insert(ctx, vote); err != nil {
		if errors.Is(err, domain.ErrDuplicateVote) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to store vote: %w", err)
	}

	s.logger.Info("vote registered",
		"vote_id", vote.ID,
		"judge_id", vote.JudgeID,
		"candidate_number", *input.CandidateNumber,
		"answers", len(vote.Answers),
	)
	return vote, nil
}

func checkAnswer(crit *domain.Criterion, value domain.AnswerValue) error {
	switch crit.Kind {
	case domain.CriterionNamed:
		if !crit.HasOption(value.OptionText()) {
			return &domain.ValidationError{
				Kind:        domain.ErrInvalidOption,
				CriterionID: crit.ID.String(),
				Label:       crit.Label,
				Options:     crit.Options,
			}
		}
	default:
		num, ok := value.Float()
		if !ok {
			return &domain.ValidationError{
				Kind:        domain.ErrInvalidNumericValue,
				CriterionID: crit.ID.String(),
				Label:       crit.Label,
			}
		}
		lo, hi := crit.Bounds()
		if num < lo || num > hi {
			return &domain.ValidationError{
				Kind:        domain.ErrOutOfRange,
				CriterionID: crit.ID.String(),
				Label:       crit.Label,
				Min:         lo,
				Max:         hi,
			}
		}
	}
	return nil
}
