package base

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// ParseTime accepts any layout dateparse understands. Dates without a zone
// are read as UTC.
func ParseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t.UTC(), nil
}

// NormalizeDate rewrites s as RFC 3339. An empty string stays empty.
func NormalizeDate(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	t, err := ParseTime(s)
	if err != nil {
		return "", err
	}
	return t.Format(time.RFC3339), nil
}
