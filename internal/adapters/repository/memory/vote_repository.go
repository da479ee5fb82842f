package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/scorecard/internal/core/domain"
	"github.com/vncsmyrnk/scorecard/internal/core/ports"
)

type voteKey struct {
	judgeID     uuid.UUID
	candidateID uuid.UUID
}

type VoteRepository struct {
	mu    sync.RWMutex
	votes []domain.Vote
	cast  map[voteKey]struct{}
}

func NewVoteRepository() *VoteRepository {
	return &VoteRepository{
		cast: make(map[voteKey]struct{}),
	}
}

// Insert appends the vote unless the judge already voted for the candidate.
// The check and the append happen under the same lock.
func (r *VoteRepository) Insert(ctx context.Context, vote *domain.Vote) error {
	key := voteKey{judgeID: vote.JudgeID, candidateID: vote.CandidateID}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cast[key]; exists {
		return domain.ErrDuplicateVote
	}
	r.cast[key] = struct{}{}

	v := *vote
	v.Answers = append([]domain.Answer(nil), vote.Answers...)
	r.votes = append(r.votes, v)
	return nil
}

// ListAll returns votes in insertion order.
func (r *VoteRepository) ListAll(ctx context.Context) ([]*domain.Vote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Vote, 0, len(r.votes))
	for i := range r.votes {
		v := r.votes[i]
		v.Answers = append([]domain.Answer(nil), v.Answers...)
		out = append(out, &v)
	}
	return out, nil
}

var _ ports.VoteRepository = (*VoteRepository)(nil)
