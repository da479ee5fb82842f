package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/scorecard/internal/core/domain"
	"github.com/vncsmyrnk/scorecard/internal/core/ports"
)

type candidateRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewCandidateRepository(db *sql.DB, logger *slog.Logger) ports.CandidateRepository {
	return &candidateRepository{
		db:     db,
		logger: resolveLogger(logger),
	}
}

func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	if !domain.ValidCandidateNumber(candidate.Number) {
		return fmt.Errorf("%w: number out of range", domain.ErrInvalidCandidate)
	}

	query := `
		INSERT INTO candidates (id, number, name, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query, candidate.ID, candidate.Number, candidate.Name, candidate.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCandidateNumberTaken
		}
		return logError(r.logger, "candidate_repo_create_failed", fmt.Errorf("failed to insert candidate: %w", err),
			"number", candidate.Number,
		)
	}
	return nil
}

func (r *candidateRepository) GetByNumber(ctx context.Context, number int) (*domain.Candidate, error) {
	if !domain.ValidCandidateNumber(number) {
		return nil, domain.ErrCandidateNotFound
	}

	query := `
		SELECT id, number, name, created_at
		FROM candidates
		WHERE number = $1
	`
	var candidate domain.Candidate
	err := r.db.QueryRowContext(ctx, query, number).Scan(&candidate.ID, &candidate.Number, &candidate.Name, &candidate.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return &candidate, nil
}

func (r *candidateRepository) List(ctx context.Context) ([]*domain.Candidate, error) {
	query := `
		SELECT id, number, name, created_at
		FROM candidates
		ORDER BY number
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, logError(r.logger, "candidate_repo_list_failed", fmt.Errorf("failed to list candidates: %w", err))
	}
	defer rows.Close()

	candidates := make([]*domain.Candidate, 0)
	for rows.Next() {
		var candidate domain.Candidate
		if err := rows.Scan(&candidate.ID, &candidate.Number, &candidate.Name, &candidate.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, &candidate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating candidates: %w", err)
	}
	return candidates, nil
}

func (r *candidateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return logError(r.logger, "candidate_repo_delete_failed", fmt.Errorf("failed to delete candidate: %w", err),
			"candidate_id", id,
		)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return domain.ErrCandidateNotFound
	}
	return nil
}
