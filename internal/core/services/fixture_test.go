package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/scorecard/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/scorecard/internal/core/domain"
	"github.com/vncsmyrnk/scorecard/internal/core/ports"
)

type fixture struct {
	candidates *memory.CandidateRepository
	criteria   *memory.CriterionRepository
	votes      *memory.VoteRepository
	users      *memory.UserRepository
}

func newFixture() *fixture {
	return &fixture{
		candidates: memory.NewCandidateRepository(),
		criteria:   memory.NewCriterionRepository(),
		votes:      memory.NewVoteRepository(),
		users:      memory.NewUserRepository(),
	}
}

func (f *fixture) voteService() ports.VoteService {
	return NewVoteService(f.candidates, f.criteria, f.votes, nil)
}

func (f *fixture) resultsService(policy domain.NonNumericPolicy) ports.ResultsService {
	return NewResultsService(f.candidates, f.criteria, f.votes, policy, nil)
}

func (f *fixture) addCandidate(t *testing.T, number int, name string) *domain.Candidate {
	t.Helper()
	c, err := NewCandidateService(f.candidates, nil).Create(context.Background(), ports.CreateCandidateInput{Number: &number, Name: name})
	require.NoError(t, err)
	return c
}

func (f *fixture) addNumeric(t *testing.T, label string, min, max, weight float64) *domain.Criterion {
	t.Helper()
	c, err := NewCriterionService(f.criteria, nil).Create(context.Background(), ports.CreateCriterionInput{
		Label:  label,
		Kind:   domain.CriterionNumeric,
		Min:    &min,
		Max:    &max,
		Weight: &weight,
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) addNamed(t *testing.T, label string, options ...string) *domain.Criterion {
	t.Helper()
	c, err := NewCriterionService(f.criteria, nil).Create(context.Background(), ports.CreateCriterionInput{
		Label:   label,
		Kind:    domain.CriterionNamed,
		Options: options,
	})
	require.NoError(t, err)
	return c
}

func intPtr(n int) *int { return &n }

func num(f float64) domain.AnswerValue { return domain.NumberValue(f) }

func text(s string) domain.AnswerValue { return domain.TextValue(s) }

func answer(c *domain.Criterion, v domain.AnswerValue) ports.AnswerInput {
	return ports.AnswerInput{CriterionID: c.ID.String(), Value: v}
}
