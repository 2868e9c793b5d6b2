// Package testutil provides test helper functions for unit and integration
// tests.
package testutil

import (
	"testing"
	"time"
)

// FutureDate returns a YYYY-MM-DD date string the given number of days from
// now. Tests build their departure dates with this instead of hard-coding
// dates that go stale.
func FutureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", value, err)
	}
	return parsed
}
