package domain

// CandidateSummary is the public face of a candidate inside a ranking.
type CandidateSummary struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

type RankedEntry struct {
	Candidate CandidateSummary `json:"candidate"`
	Average   float64          `json:"average"`
	Votes     int              `json:"votes"`
}

type Results struct {
	Top3    []RankedEntry `json:"top3"`
	Results []RankedEntry `json:"results"`
}

// NonNumericPolicy decides what the aggregator does with a stored numeric
// answer whose value no longer parses as a number.
type NonNumericPolicy string

const (
	NonNumericZero NonNumericPolicy = "zero"
	NonNumericSkip NonNumericPolicy = "skip"
)

func ParseNonNumericPolicy(s string) (NonNumericPolicy, bool) {
	switch NonNumericPolicy(s) {
	case "", NonNumericZero:
		return NonNumericZero, true
	case NonNumericSkip:
		return NonNumericSkip, true
	}
	return "", false
}
