package services

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/scorecard/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/scorecard/internal/core/domain"
	"github.com/vncsmyrnk/scorecard/internal/core/ports"
)

func floatPtr(f float64) *float64 { return &f }

func TestCriterionService_Create(t *testing.T) {
	tests := []struct {
		name    string
		input   ports.CreateCriterionInput
		wantErr bool
		check   func(t *testing.T, c *domain.Criterion)
	}{
		{
			name:  "defaults to numeric with weight one",
			input: ports.CreateCriterionInput{Label: "  Voice "},
			check: func(t *testing.T, c *domain.Criterion) {
				assert.Equal(t, "Voice", c.Label)
				assert.Equal(t, domain.CriterionNumeric, c.Kind)
				assert.Equal(t, 1.0, c.Weight)
				lo, hi := c.Bounds()
				assert.Equal(t, 1.0, lo)
				assert.Equal(t, 5.0, hi)
				assert.Empty(t, c.Options)
			},
		},
		{
			name:  "named keeps distinct options",
			input: ports.CreateCriterionInput{Label: "Style", Kind: domain.CriterionNamed, Options: []string{"Pop", "", "Pop", "Rock"}},
			check: func(t *testing.T, c *domain.Criterion) {
				assert.Equal(t, []string{"Pop", "Rock"}, c.Options)
			},
		},
		{name: "missing label", input: ports.CreateCriterionInput{Label: " "}, wantErr: true},
		{name: "unknown kind", input: ports.CreateCriterionInput{Label: "X", Kind: "boolean"}, wantErr: true},
		{name: "named without options", input: ports.CreateCriterionInput{Label: "X", Kind: domain.CriterionNamed}, wantErr: true},
		{name: "inverted bounds", input: ports.CreateCriterionInput{Label: "X", Min: floatPtr(5), Max: floatPtr(1)}, wantErr: true},
		{name: "min above default max", input: ports.CreateCriterionInput{Label: "X", Min: floatPtr(6)}, wantErr: true},
		{name: "negative weight", input: ports.CreateCriterionInput{Label: "X", Weight: floatPtr(-1)}, wantErr: true},
		{name: "infinite bound", input: ports.CreateCriterionInput{Label: "X", Max: floatPtr(math.Inf(1))}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCriterionService(memory.NewCriterionRepository(), nil)
			c, err := svc.Create(context.Background(), tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidCriterion)
				return
			}
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestCriterionService_Delete(t *testing.T) {
	svc := NewCriterionService(memory.NewCriterionRepository(), nil)
	ctx := context.Background()

	c, err := svc.Create(ctx, ports.CreateCriterionInput{Label: "Voice"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, c.ID.String()))
	assert.ErrorIs(t, svc.Delete(ctx, c.ID.String()), domain.ErrCriterionNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "not-a-uuid"), domain.ErrCriterionNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCandidateService(t *testing.T) {
	svc := NewCandidateService(memory.NewCandidateRepository(), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, ports.CreateCandidateInput{Name: "No number"})
	assert.ErrorIs(t, err, domain.ErrInvalidCandidate)

	c, err := svc.Create(ctx, ports.CreateCandidateInput{Number: intPtr(3), Name: " Three "})
	require.NoError(t, err)
	assert.Equal(t, "Three", c.Name)

	_, err = svc.Create(ctx, ports.CreateCandidateInput{Number: intPtr(3)})
	assert.ErrorIs(t, err, domain.ErrCandidateNumberTaken)

	_, err = svc.Create(ctx, ports.CreateCandidateInput{Number: intPtr(3000000000)})
	assert.ErrorIs(t, err, domain.ErrInvalidCandidate)

	_, err = svc.Create(ctx, ports.CreateCandidateInput{Number: intPtr(1)})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].Number)

	require.NoError(t, svc.Delete(ctx, c.ID.String()))
	assert.ErrorIs(t, svc.Delete(ctx, c.ID.String()), domain.ErrCandidateNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, uuid.NewString()), domain.ErrCandidateNotFound)
}
