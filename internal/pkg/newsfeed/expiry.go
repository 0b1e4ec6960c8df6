package newsfeed

import "time"

// Duration units accepted for news expiry.
const (
	UnitMinutes = "minutes"
	UnitHours   = "hours"
	UnitDays    = "days"
	UnitWeeks   = "weeks"
	UnitMonths  = "months"
	UnitYears   = "years"
)

// ComputeExpiry returns the absolute expiry timestamp for a (value, unit)
// pair relative to now. Minutes through weeks use exact duration arithmetic;
// months and years advance the calendar field, so overflowing day-of-month
// normalizes forward (Jan 31 + 1 month lands in early March, per
// time.Time.AddDate). A non-positive value is coerced to 1 and an unknown or
// missing unit defaults to one day, so the result is always after now.
func ComputeExpiry(now time.Time, value int, unit string) time.Time {
	if value < 1 {
		value = 1
	}

	switch unit {
	case UnitMinutes:
		return now.Add(time.Duration(value) * time.Minute)
	case UnitHours:
		return now.Add(time.Duration(value) * time.Hour)
	case UnitDays:
		return now.Add(time.Duration(value) * 24 * time.Hour)
	case UnitWeeks:
		return now.Add(time.Duration(value) * 7 * 24 * time.Hour)
	case UnitMonths:
		return now.AddDate(0, value, 0)
	case UnitYears:
		return now.AddDate(value, 0, 0)
	default:
		return now.Add(24 * time.Hour)
	}
}
