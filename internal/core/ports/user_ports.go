package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/scorecard/internal/core/domain"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	CreateJudge(ctx context.Context, input CreateUserInput) (*domain.User, error)
	ListJudges(ctx context.Context) ([]*domain.User, error)
	DeleteJudge(ctx context.Context, id string) error
	EnsureAdmin(ctx context.Context, input CreateUserInput) (*domain.User, error)
}
