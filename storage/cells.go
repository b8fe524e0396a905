package storage

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"shelter-cost/models"
)

// numberRegexp accepts a non-negative decimal once currency symbols and
// thousands separators have been removed.
var numberRegexp = regexp.MustCompile(`^\d+(?:\.\d+)?$|^\.\d+$`)

func cleanNumber(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if !numberRegexp.MatchString(s) {
		return "", fmt.Errorf("%w: %q", models.ErrInvalidValue, raw)
	}
	return s, nil
}

// parseCount reads a non-negative whole number such as "1,204" or "350.0".
func parseCount(raw string) (int64, error) {
	s, err := cleanNumber(raw)
	if err != nil {
		return 0, err
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q is not a whole number", models.ErrInvalidValue, raw)
	}
	return int64(f), nil
}

// parseAmount reads a non-negative decimal such as "$7.25".
func parseAmount(raw string) (float64, error) {
	s, err := cleanNumber(raw)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidValue, raw)
	}
	return f, nil
}

// normaliseState strips surrounding whitespace and collapses internal runs.
// Letter case is kept; joins match states case-sensitively.
func normaliseState(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	return strings.Join(fields, " ")
}
