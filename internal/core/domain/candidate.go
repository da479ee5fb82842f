package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Candidate numbers are stored as 32-bit integers.
const (
	MinCandidateNumber = math.MinInt32
	MaxCandidateNumber = math.MaxInt32
)

type Candidate struct {
	ID        uuid.UUID `json:"id"`
	Number    int       `json:"number"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func ValidCandidateNumber(n int) bool {
	return n >= MinCandidateNumber && n <= MaxCandidateNumber
}
