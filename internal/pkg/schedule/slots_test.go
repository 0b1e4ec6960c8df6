package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlotGrid(t *testing.T) {
	assert.Len(t, EntryTimes, 9)
	assert.Len(t, ExitTimes, 9)

	// Every entry except the first period's start is also an exit boundary.
	for i := 1; i < len(EntryTimes); i++ {
		assert.Equal(t, EntryTimes[i], ExitTimes[i-1])
	}

	assert.True(t, ValidEntryTime("07:30"))
	assert.True(t, ValidEntryTime("13:30"))
	assert.False(t, ValidEntryTime("14:15"))
	assert.False(t, ValidEntryTime("07:31"))

	assert.True(t, ValidExitTime("14:15"))
	assert.False(t, ValidExitTime("07:30"))
	assert.False(t, ValidExitTime(""))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		aEntry   string
		aExit    string
		bEntry   string
		bExit    string
		expected bool
	}{
		{"identical windows", "09:00", "09:45", "09:00", "09:45", true},
		{"contained window", "09:00", "10:30", "09:45", "10:30", true},
		{"partial overlap", "09:30", "10:00", "09:00", "09:45", true},
		{"adjacent before", "08:15", "09:00", "09:00", "09:45", false},
		{"adjacent after", "09:45", "10:30", "09:00", "09:45", false},
		{"disjoint", "07:30", "08:15", "12:00", "12:45", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tt.aEntry, tt.aExit, tt.bEntry, tt.bExit))
			// Overlap is symmetric
			assert.Equal(t, tt.expected, Overlaps(tt.bEntry, tt.bExit, tt.aEntry, tt.aExit))
		})
	}
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2026, 3, 14, 15, 9, 26, 535, time.Local)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local), DateOnly(ts))
}

func TestSlotEnd(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2026, 3, 14, 9, 45, 0, 0, time.Local), SlotEnd(date, "09:45"))

	// Unparseable clock strings degrade to midnight rather than panicking.
	assert.Equal(t, date, SlotEnd(date, "bogus"))
}
