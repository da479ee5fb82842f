package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/scorecard/internal/core/domain"
	"github.com/vncsmyrnk/scorecard/internal/core/ports"
)

type CriterionRepository struct {
	mu       sync.RWMutex
	criteria []domain.Criterion
}

func NewCriterionRepository() *CriterionRepository {
	return &CriterionRepository{}
}

func (r *CriterionRepository) Create(ctx context.Context, criterion *domain.Criterion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := *criterion
	c.Options = append([]string(nil), criterion.Options...)
	r.criteria = append(r.criteria, c)
	return nil
}

// List returns criteria newest first, like the postgres adapter.
func (r *CriterionRepository) List(ctx context.Context) ([]*domain.Criterion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Criterion, 0, len(r.criteria))
	for i := len(r.criteria) - 1; i >= 0; i-- {
		c := r.criteria[i]
		c.Options = append([]string(nil), c.Options...)
		out = append(out, &c)
	}
	return out, nil
}

func (r *CriterionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.criteria {
		if c.ID == id {
			r.criteria = append(r.criteria[:i], r.criteria[i+1:]...)
			return nil
		}
	}
	return domain.ErrCriterionNotFound
}

var _ ports.CriterionRepository = (*CriterionRepository)(nil)
