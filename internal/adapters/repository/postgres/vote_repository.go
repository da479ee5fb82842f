package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/vncsmyrnk/scorecard/internal/core/domain"
	"github.com/vncsmyrnk/scorecard/internal/core/ports"
)

type voteRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewVoteRepository(db *sql.DB, logger *slog.Logger) ports.VoteRepository {
	return &voteRepository{
		db:     db,
		logger: resolveLogger(logger),
	}
}

// Insert relies on votes_judge_candidate_key: of two concurrent inserts for
// the same judge and candidate, the loser gets domain.ErrDuplicateVote.
func (r *voteRepository) Insert(ctx context.Context, vote *domain.Vote) error {
	answers, err := json.Marshal(vote.Answers)
	if err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}

	query := `
		INSERT INTO votes (id, judge_id, candidate_id, answers, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.db.ExecContext(ctx, query, vote.ID, vote.JudgeID, vote.CandidateID, string(answers), vote.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateVote
		}
		return logError(r.logger, "vote_repo_insert_failed", fmt.Errorf("failed to save vote: %w", err),
			"vote_id", vote.ID,
			"judge_id", vote.JudgeID,
			"candidate_id", vote.CandidateID,
		)
	}
	return nil
}

func (r *voteRepository) ListAll(ctx context.Context) ([]*domain.Vote, error) {
	query := `
		SELECT id, judge_id, candidate_id, answers, created_at
		FROM votes
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, logError(r.logger, "vote_repo_list_failed", fmt.Errorf("failed to list votes: %w", err))
	}
	defer rows.Close()

	votes := make([]*domain.Vote, 0)
	for rows.Next() {
		var vote domain.Vote
		var answers []byte
		if err := rows.Scan(&vote.ID, &vote.JudgeID, &vote.CandidateID, &answers, &vote.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		if err := json.Unmarshal(answers, &vote.Answers); err != nil {
			return nil, fmt.Errorf("failed to decode answers of vote %s: %w", vote.ID, err)
		}
		votes = append(votes, &vote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating votes: %w", err)
	}
	return votes, nil
}
