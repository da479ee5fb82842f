package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/scorecard/internal/core/domain"
	"github.com/vncsmyrnk/scorecard/internal/core/ports"
)

const topN = 3

type resultsService struct {
	candidateRepo ports.CandidateRepository
	criterionRepo ports.CriterionRepository
	voteRepo      ports.VoteRepository
	policy        domain.NonNumericPolicy
	logger        *slog.Logger
}

func NewResultsService(candidateRepo ports.CandidateRepository, criterionRepo ports.CriterionRepository, voteRepo ports.VoteRepository, policy domain.NonNumericPolicy, logger *slog.Logger) ports.ResultsService {
	if policy == "" {
		policy = domain.NonNumericZero
	}
	return &resultsService{
		candidateRepo: candidateRepo,
		criterionRepo: criterionRepo,
		voteRepo:      voteRepo,
		policy:        policy,
		logger:        resolveLogger(logger),
	}
}

// ComputeResults ranks every candidate by the mean of its votes' weighted
// averages. Nothing is cached; each call reads the stores again.
func (s *resultsService) ComputeResults(ctx context.Context) (*domain.Results, error) {
	votes, err := s.voteRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	candidates, err := s.candidateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	criteria, err := s.criterionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list criteria: %w", err)
	}

	return s.rank(votes, candidates, criteria), nil
}

type candidateTally struct {
	candidate *domain.Candidate
	sum       float64
	counted   int
}

func (s *resultsService) rank(votes []*domain.Vote, candidates []*domain.Candidate, criteria []*domain.Criterion) *domain.Results {
	candidateByID := make(map[uuid.UUID]*domain.Candidate, len(candidates))
	for _, c := range candidates {
		candidateByID[c.ID] = c
	}
	criterionByID := make(map[uuid.UUID]*domain.Criterion, len(criteria))
	for _, c := range criteria {
		criterionByID[c.ID] = c
	}

	// tallies keeps first-seen order, which is the only tie-break.
	tallies := make([]*candidateTally, 0, len(candidates))
	tallyByID := make(map[uuid.UUID]*candidateTally, len(candidates))

	for _, vote := range votes {
		candidate, ok := candidateByID[vote.CandidateID]
		if !ok {
			s.logger.Debug("vote references missing candidate; ignored",
				"vote_id", vote.ID, "candidate_id", vote.CandidateID)
			continue
		}
		tally, ok := tallyByID[candidate.ID]
		if !ok {
			tally = &candidateTally{candidate: candidate}
			tallyByID[candidate.ID] = tally
			tallies = append(tallies, tally)
		}

		avg, ok := s.voteAverage(vote, criterionByID)
		if !ok {
			continue
		}
		tally.sum += avg
		tally.counted++
	}

	for _, c := range candidates {
		if _, ok := tallyByID[c.ID]; !ok {
			tally := &candidateTally{candidate: c}
			tallyByID[c.ID] = tally
			tallies = append(tallies, tally)
		}
	}

	entries := make([]domain.RankedEntry, 0, len(tallies))
	for _, t := range tallies {
		entry := domain.RankedEntry{
			Candidate: domain.CandidateSummary{Number: t.candidate.Number, Name: t.candidate.Name},
		}
		if t.counted > 0 {
			entry.Average = t.sum / float64(t.counted)
			entry.Votes = t.counted
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Average > entries[j].Average
	})

	n := topN
	if len(entries) < n {
		n = len(entries)
	}
	top := make([]domain.RankedEntry, n)
	copy(top, entries[:n])

	return &domain.Results{Top3: top, Results: entries}
}

// voteAverage returns the weighted mean of a vote's numeric answers. The
// second result is false when no answer carried any weight.
func (s *resultsService) voteAverage(vote *domain.Vote, criterionByID map[uuid.UUID]*domain.Criterion) (float64, bool) {
	var weighted, weights float64
	for _, answer := range vote.Answers {
		crit, ok := criterionByID[answer.CriterionID]
		if !ok {
			s.logger.Debug("vote references missing criterion; answer ignored",
				"vote_id", vote.ID, "criterion_id", answer.CriterionID)
			continue
		}
		if crit.Kind != domain.CriterionNumeric {
			continue
		}

		value, ok := answer.Value.Float()
		if !ok {
			if s.policy == domain.NonNumericSkip {
				continue
			}
			value = 0
		}
		weighted += value * crit.Weight
		weights += crit.Weight
	}

	if weights <= 0 {
		return 0, false
	}
	return weighted / weights, true
}
