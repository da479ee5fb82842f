package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/scorecard/internal/core/domain"
	"github.com/vncsmyrnk/scorecard/internal/core/ports"
)

type CandidateRepository struct {
	mu         sync.RWMutex
	candidates map[uuid.UUID]domain.Candidate
	byNumber   map[int]uuid.UUID
}

func NewCandidateRepository() *CandidateRepository {
	return &CandidateRepository{
		candidates: make(map[uuid.UUID]domain.Candidate),
		byNumber:   make(map[int]uuid.UUID),
	}
}

func (r *CandidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byNumber[candidate.Number]; taken {
		return domain.ErrCandidateNumberTaken
	}
	r.candidates[candidate.ID] = *candidate
	r.byNumber[candidate.Number] = candidate.ID
	return nil
}

func (r *CandidateRepository) GetByNumber(ctx context.Context, number int) (*domain.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byNumber[number]
	if !ok {
		return nil, domain.ErrCandidateNotFound
	}
	candidate := r.candidates[id]
	return &candidate, nil
}

func (r *CandidateRepository) List(ctx context.Context) ([]*domain.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Candidate, 0, len(r.candidates))
	for _, c := range r.candidates {
		candidate := c
		out = append(out, &candidate)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (r *CandidateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	candidate, ok := r.candidates[id]
	if !ok {
		return domain.ErrCandidateNotFound
	}
	delete(r.candidates, id)
	delete(r.byNumber, candidate.Number)
	return nil
}

var _ ports.CandidateRepository = (*CandidateRepository)(nil)
