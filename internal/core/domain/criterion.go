package domain

import (
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type CriterionKind string

const (
	CriterionNumeric CriterionKind = "numeric"
	CriterionNamed   CriterionKind = "named"
)

const (
	DefaultNumericMin = 1.0
	DefaultNumericMax = 5.0
	DefaultWeight     = 1.0
)

type Criterion struct {
	ID        uuid.UUID     `json:"id"`
	Label     string        `json:"label"`
	Kind      CriterionKind `json:"type"`
	Min       *float64      `json:"numericMin,omitempty"`
	Max       *float64      `json:"numericMax,omitempty"`
	Options   []string      `json:"options"`
	Weight    float64       `json:"weight"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Bounds returns the inclusive range accepted by a numeric criterion,
// falling back to 1..5 for unset ends.
func (c Criterion) Bounds() (float64, float64) {
	lo, hi := DefaultNumericMin, DefaultNumericMax
	if c.Min != nil {
		lo = *c.Min
	}
	if c.Max != nil {
		hi = *c.Max
	}
	return lo, hi
}

func (c Criterion) HasOption(value string) bool {
	for _, opt := range c.Options {
		if opt == value {
			return true
		}
	}
	return false
}

func ValidKind(kind CriterionKind) bool {
	return kind == CriterionNumeric || kind == CriterionNamed
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
