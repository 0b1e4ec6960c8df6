package schedule

import "time"

// The school day is divided into nine 45-minute periods. A reservation enters
// at one boundary and exits at a later one; the clock strings are zero-padded
// so plain string comparison orders them correctly.
var (
	EntryTimes = []string{"07:30", "08:15", "09:00", "09:45", "10:30", "11:15", "12:00", "12:45", "13:30"}
	ExitTimes  = []string{"08:15", "09:00", "09:45", "10:30", "11:15", "12:00", "12:45", "13:30", "14:15"}
)

// ValidEntryTime reports whether s is one of the allowed entry boundaries.
func ValidEntryTime(s string) bool {
	return containsSlot(EntryTimes, s)
}

// ValidExitTime reports whether s is one of the allowed exit boundaries.
func ValidExitTime(s string) bool {
	return containsSlot(ExitTimes, s)
}

func containsSlot(slots []string, s string) bool {
	for _, slot := range slots {
		if slot == s {
			return true
		}
	}
	return false
}

// Overlaps tests two half-open [entry, exit) windows on the same date.
// Touching boundaries (a.exit == b.entry) do not overlap.
func Overlaps(aEntry, aExit, bEntry, bExit string) bool {
	return aEntry < bExit && bEntry < aExit
}

// DateOnly truncates t to midnight in its location, for date-level grouping
// and comparison where time-of-day is ignored.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SlotEnd combines a reservation date with its exit clock string.
func SlotEnd(date time.Time, exitTime string) time.Time {
	clock, err := time.Parse("15:04", exitTime)
	if err != nil {
		return DateOnly(date)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, date.Location())
}
