package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCandidateNotFound   = errors.New("candidate not found")
	ErrEmptyAnswers        = errors.New("at least one criterion must be answered")
	ErrUnknownCriterion    = errors.New("unknown criterion")
	ErrInvalidNumericValue = errors.New("invalid numeric value")
	ErrOutOfRange          = errors.New("value out of range")
	ErrInvalidOption       = errors.New("invalid option")
	ErrDuplicateVote       = errors.New("judge has already voted for this candidate")

	ErrCriterionNotFound    = errors.New("criterion not found")
	ErrInvalidCriterion     = errors.New("invalid criterion")
	ErrInvalidCandidate     = errors.New("invalid candidate")
	ErrCandidateNumberTaken = errors.New("candidate number already exists")

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidUser        = errors.New("invalid user")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	ErrInternal = errors.New("internal server error")
)

// ValidationError describes why a submitted vote was rejected. It unwraps to
// one of the vote sentinel errors so callers can match it with errors.Is.
type ValidationError struct {
	Kind        error
	CriterionID string
	Label       string
	Min         float64
	Max         float64
	Options     []string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ErrUnknownCriterion:
		return fmt.Sprintf("unknown criterion: %s", e.CriterionID)
	case ErrInvalidNumericValue:
		return fmt.Sprintf("invalid value for %s", e.Label)
	case ErrOutOfRange:
		return fmt.Sprintf("%s must be between %s and %s", e.Label, formatNumber(e.Min), formatNumber(e.Max))
	case ErrInvalidOption:
		return fmt.Sprintf("invalid option for %s (allowed: %s)", e.Label, strings.Join(e.Options, ", "))
	case nil:
		return "invalid vote"
	default:
		return e.Kind.Error()
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}
