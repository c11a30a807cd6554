// Package quantity parses human-readable base-count targets.
package quantity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when a target string is not a plain
// non-negative integer or an integer with an Mb/Gb suffix.
var ErrInvalidFormat = errors.New("invalid base count format")

// Multipliers for the accepted suffixes. Only megabases and gigabases are
// recognized; other SI prefixes and fractional values are rejected.
const (
	megabase = 1_000_000
	gigabase = 1_000_000_000
)

// ParseBaseCount converts a target string into a base count.
// Accepted forms (case-insensitive): "2500000", "10Mb", "1Gb".
func ParseBaseCount(s string) (int64, error) {
	lower := strings.ToLower(s)

	multiplier := int64(1)
	digits := lower
	switch {
	case strings.HasSuffix(lower, "mb"):
		multiplier = megabase
		digits = lower[:len(lower)-2]
	case strings.HasSuffix(lower, "gb"):
		multiplier = gigabase
		digits = lower[:len(lower)-2]
	}

	if !allDigits(digits) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	return n * multiplier, nil
}

// allDigits reports whether s is a non-empty run of ASCII digits.
// Signs, spaces and decimal points are all rejected.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
