package newsfeed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeExpiry(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		value    int
		unit     string
		expected time.Time
	}{
		{"minutes", 30, UnitMinutes, now.Add(30 * time.Minute)},
		{"hours", 6, UnitHours, now.Add(6 * time.Hour)},
		{"days", 3, UnitDays, now.Add(72 * time.Hour)},
		{"weeks", 2, UnitWeeks, now.Add(14 * 24 * time.Hour)},
		{"months", 1, UnitMonths, time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)},
		{"years", 2, UnitYears, time.Date(2028, 9, 1, 12, 0, 0, 0, time.UTC)},
		{"unknown unit defaults to a day", 5, "fortnights", now.Add(24 * time.Hour)},
		{"empty unit defaults to a day", 1, "", now.Add(24 * time.Hour)},
		{"zero value coerced to one", 0, UnitHours, now.Add(time.Hour)},
		{"negative value coerced to one", -4, UnitDays, now.Add(24 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeExpiry(now, tt.value, tt.unit)
			assert.Equal(t, tt.expected, got)
			assert.True(t, got.After(now))
		})
	}
}

func TestComputeExpiryMonthOverflow(t *testing.T) {
	// January 31 has no counterpart in February; AddDate semantics normalize
	// the overflow forward into March.
	now := time.Date(2026, 1, 31, 9, 0, 0, 0, time.UTC)
	got := ComputeExpiry(now, 1, UnitMonths)
	assert.Equal(t, time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC), got)
}

func TestComputeExpiryLeapYear(t *testing.T) {
	now := time.Date(2028, 2, 29, 9, 0, 0, 0, time.UTC)
	got := ComputeExpiry(now, 1, UnitYears)
	assert.Equal(t, time.Date(2029, 3, 1, 9, 0, 0, 0, time.UTC), got)
}
