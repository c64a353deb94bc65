package copilot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveReferenceDate(t *testing.T) {
	today := time.Date(2025, time.July, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		question string
		expected *time.Time
	}{
		{
			name:     "literal ISO date wins",
			question: "what was ARR on 2025-03-31?",
			expected: datePtr(2025, time.March, 31),
		},
		{
			name:     "last month resolves to its last day",
			question: "who was our largest customer last month?",
			expected: datePtr(2025, time.June, 30),
		},
		{
			name:     "month name with four-digit year",
			question: "total ARR as of March 2025",
			expected: datePtr(2025, time.March, 31),
		},
		{
			name:     "abbreviated month with two-digit year",
			question: "total ARR as of Mar '25",
			expected: datePtr(2025, time.March, 31),
		},
		{
			name:     "month year without trigger word is ignored",
			question: "March 2025 was a strong quarter, what's our ARR?",
			expected: nil,
		},
		{
			name:     "no temporal phrase",
			question: "what's our total ARR?",
			expected: nil,
		},
		{
			name:     "february resolves to its actual last day",
			question: "carr as of February 2024",
			expected: datePtr(2024, time.February, 29),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveReferenceDate(tt.question, today)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.expected, *got)
		})
	}
}

func TestResolveReferenceDate_LastMonthAcrossYearBoundary(t *testing.T) {
	today := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)

	got := ResolveReferenceDate("arr last month", today)
	require.NotNil(t, got)
	assert.Equal(t, *datePtr(2024, time.December, 31), *got)
}

func TestResolveMonthYear(t *testing.T) {
	tests := []struct {
		name     string
		question string
		year     int
		month    time.Month
		ok       bool
	}{
		{"full month and year", "renewals in June 2025", 2025, time.June, true},
		{"abbreviation with dot", "renewals in Jun. 2025", 2025, time.June, true},
		{"two-digit year below 50", "renewals in june 25", 2025, time.June, true},
		{"two-digit year with apostrophe", "renewals in June '31", 2031, time.June, true},
		{"four-digit year out of range", "renewals in June 1999", 0, 0, false},
		{"first occurrence wins", "compare March 2025 and April 2026", 2025, time.March, true},
		{"month alone", "renewals in June", 0, 0, false},
		{"no month", "what's happening", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month, ok := ResolveMonthYear(tt.question)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.year, year)
				assert.Equal(t, tt.month, month)
			}
		})
	}
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
