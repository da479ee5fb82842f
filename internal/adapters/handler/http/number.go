package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// flexibleInt accepts a whole number sent either as a JSON number or as a
// numeric string, the way browser forms tend to submit it.
type flexibleInt struct {
	value *int
}

func (n *flexibleInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		n.value = nil
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			n.value = nil
			return nil
		}
	}

	v, err := parseWholeNumber(raw)
	if err != nil {
		return err
	}
	n.value = &v
	return nil
}

// parseWholeNumber reads integers exactly. Fractional forms such as "7.0"
// are accepted only while float64 still represents every integer.
func parseWholeNumber(raw string) (int, error) {
	if i, err := strconv.ParseInt(raw, 10, 0); err == nil {
		return int(i), nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.Abs(f) > maxExactFloatInt || f != math.Trunc(f) {
		return 0, fmt.Errorf("%q is not a whole number", raw)
	}
	return int(f), nil
}

const maxExactFloatInt = 1 << 53

func (n flexibleInt) Ptr() *int {
	return n.value
}
