// Package number provides the total string-to-number coercions used
// by variant value access. Every function returns a zero value on
// input it cannot parse; none of them fail.
package number

import (
	"math"
	"strconv"
	"strings"
)

// ParseInteger parses s as a signed integer. Plain integer syntax is
// tried first; a float form like "1.5e2" truncates toward zero. Out of
// range or non-numeric input yields 0.
func ParseInteger(s string) int64 {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f)
		}
	}
	return 0
}

// ParseUint parses s as an unsigned integer, with the same float
// fallback as ParseInteger. Negative or non-numeric input yields 0.
func ParseUint(s string) uint64 {
	s = strings.TrimSpace(s)
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f >= 0 && f < math.MaxUint64 {
			return uint64(f)
		}
	}
	return 0
}

// ParseFloat parses s as a float. Non-numeric input yields 0.
func ParseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
