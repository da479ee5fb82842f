package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/vncsmyrnk/scorecard/internal/core/domain"
	"github.com/vncsmyrnk/scorecard/internal/core/ports"
)

type criterionRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewCriterionRepository(db *sql.DB, logger *slog.Logger) ports.CriterionRepository {
	return &criterionRepository{
		db:     db,
		logger: resolveLogger(logger),
	}
}

func (r *criterionRepository) Create(ctx context.Context, criterion *domain.Criterion) error {
	query := `
		INSERT INTO criteria (id, label, kind, numeric_min, numeric_max, options, weight, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	options := criterion.Options
	if options == nil {
		options = []string{}
	}
	_, err := r.db.ExecContext(ctx, query,
		criterion.ID,
		criterion.Label,
		string(criterion.Kind),
		nullFloat(criterion.Min),
		nullFloat(criterion.Max),
		pq.Array(options),
		criterion.Weight,
		criterion.CreatedAt,
	)
	if err != nil {
		return logError(r.logger, "criterion_repo_create_failed", fmt.Errorf("failed to insert criterion: %w", err),
			"label", criterion.Label,
		)
	}
	return nil
}

func (r *criterionRepository) List(ctx context.Context) ([]*domain.Criterion, error) {
	query := `
		SELECT id, label, kind, numeric_min, numeric_max, options, weight, created_at
		FROM criteria
		ORDER BY created_at DESC, id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, logError(r.logger, "criterion_repo_list_failed", fmt.Errorf("failed to list criteria: %w", err))
	}
	defer rows.Close()

	criteria := make([]*domain.Criterion, 0)
	for rows.Next() {
		var c domain.Criterion
		var kind string
		var min, max sql.NullFloat64
		options := []string{}
		if err := rows.Scan(&c.ID, &c.Label, &kind, &min, &max, pq.Array(&options), &c.Weight, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan criterion: %w", err)
		}
		c.Kind = domain.CriterionKind(kind)
		if min.Valid {
			c.Min = &min.Float64
		}
		if max.Valid {
			c.Max = &max.Float64
		}
		c.Options = options
		criteria = append(criteria, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating criteria: %w", err)
	}
	return criteria, nil
}

func (r *criterionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM criteria WHERE id = $1`, id)
	if err != nil {
		return logError(r.logger, "criterion_repo_delete_failed", fmt.Errorf("failed to delete criterion: %w", err),
			"criterion_id", id,
		)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return domain.ErrCriterionNotFound
	}
	return nil
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
