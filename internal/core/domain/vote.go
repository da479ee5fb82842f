package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Vote is one judge's complete evaluation of one candidate. It is never
// updated once stored.
type Vote struct {
	ID          uuid.UUID `json:"id"`
	JudgeID     uuid.UUID `json:"judgeId"`
	CandidateID uuid.UUID `json:"candidateId"`
	Answers     []Answer  `json:"answers"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Answer struct {
	CriterionID uuid.UUID   `json:"criterionId"`
	Value       AnswerValue `json:"value"`
}

// AnswerValue keeps a submitted value as it arrived on the wire: a JSON
// number or a JSON string.
type AnswerValue struct {
	text   string
	number bool
}

var ErrInvalidAnswerValue = errors.New("answer value must be a number or a string")

func NumberValue(f float64) AnswerValue {
	return AnswerValue{text: strconv.FormatFloat(f, 'f', -1, 64), number: true}
}

func TextValue(s string) AnswerValue {
	return AnswerValue{text: s}
}

// String is the exact text used to match named options.
func (v AnswerValue) String() string {
	return v.text
}

// OptionText is the text compared against named options. Numbers use their
// shortest decimal form, so 3.0 and 3 both read "3"; strings are unchanged.
func (v AnswerValue) OptionText() string {
	if !v.number {
		return v.text
	}
	if f, ok := v.Float(); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return v.text
}

func (v AnswerValue) IsNumber() bool {
	return v.number
}

// Float parses the value as a finite number. Surrounding whitespace is
// ignored; empty strings, NaN and infinities are not numbers.
func (v AnswerValue) Float() (float64, bool) {
	s := strings.TrimSpace(v.text)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(f) {
		return 0, false
	}
	return f, true
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.number {
		return []byte(v.text), nil
	}
	return json.Marshal(v.text)
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = AnswerValue{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = TextValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return ErrInvalidAnswerValue
	}
	*v = AnswerValue{text: n.String(), number: true}
	return nil
}
