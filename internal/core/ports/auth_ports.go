package ports

import (
	"context"

	"github.com/vncsmyrnk/scorecard/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error) // returns access_token, user, error
	Authenticate(ctx context.Context, accessToken string) (*domain.User, error)
}
