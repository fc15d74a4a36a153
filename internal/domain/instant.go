package domain

import (
	"fmt"
	"strings"
	"time"
)

// Layouts that parse but carry no offset information.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// ParseInstant parses an RFC 3339 timestamp. Timestamps without an explicit
// offset are rejected with ErrNaiveInstant instead of being assumed UTC.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidInstant)
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}

	for _, layout := range naiveLayouts {
		if _, naiveErr := time.Parse(layout, s); naiveErr == nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrNaiveInstant, s)
		}
	}

	return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInstant, err)
}
