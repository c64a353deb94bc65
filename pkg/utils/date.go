package utils

import "time"

// ParseISODate parses the date part of an ISO-8601 value.
// Malformed or empty input yields nil, never an error (record ingestion must not abort).
func ParseISODate(s string) *time.Time {
	if s == "" {
		return nil
	}
	if len(s) > 10 {
		s = s[:10]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// ParseISODateTime parses an ISO-8601 timestamp, accepting a trailing "Z".
// Malformed or empty input yields nil.
func ParseISODateTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05.000-0700", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// LastDayOfMonth returns the last calendar day of the given month
func LastDayOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}
