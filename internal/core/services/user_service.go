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
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo   ports.UserRepository
	logger *slog.Logger
}

func NewUserService(repo ports.UserRepository, logger *slog.Logger) ports.UserService {
	return &UserService{
		repo:   repo,
		logger: resolveLogger(logger),
	}
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *UserService) CreateJudge(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	user, err := s.create(ctx, input, domain.RoleJudge)
	if err != nil {
		return nil, err
	}
	s.logger.Info("judge created", "user_id", user.ID, "email", user.Email)
	return user, nil
}

func (s *UserService) ListJudges(ctx context.Context) ([]*domain.User, error) {
	return s.repo.ListByRole(ctx, domain.RoleJudge)
}

func (s *UserService) DeleteJudge(ctx context.Context, id string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.IsAdmin() {
		return fmt.Errorf("%w: admins cannot be removed", domain.ErrForbidden)
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info("judge deleted", "user_id", userID)
	return nil
}

// EnsureAdmin creates the bootstrap administrator unless the email is
// already registered.
func (s *UserService) EnsureAdmin(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	existing, err := s.repo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existing != nil {
		s.logger.Info("admin already exists", "email", existing.Email)
		return existing, nil
	}

	if strings.TrimSpace(input.Name) == "" {
		input.Name = "Admin"
	}
	user, err := s.create(ctx, input, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	s.logger.Info("admin seeded", "user_id", user.ID, "email", user.Email)
	return user, nil
}

func (s *UserService) create(ctx context.Context, input ports.CreateUserInput, role domain.Role) (*domain.User, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidUser)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
