package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/scorecard/internal/core/domain"
)

// VoteRepository is append-only. Insert must reject a second vote for the
// same judge and candidate with domain.ErrDuplicateVote atomically.
type VoteRepository interface {
	Insert(ctx context.Context, vote *domain.Vote) error
	ListAll(ctx context.Context) ([]*domain.Vote, error)
}

type AnswerInput struct {
	CriterionID string
	Value       domain.AnswerValue
}

type SubmitVoteInput struct {
	CandidateNumber *int
	JudgeID         uuid.UUID
	Answers         []AnswerInput
}

type VoteService interface {
	Validate(ctx context.Context, input SubmitVoteInput) (*domain.Vote, error)
	Submit(ctx context.Context, input SubmitVoteInput) (*domain.Vote, error)
}
