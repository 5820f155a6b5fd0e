package reservation

import (
	"time"

	"rentadmin/internal/domain"
)

// NormalizeDate drops the time-of-day component. All range comparisons
// operate on calendar days at midnight UTC.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a "2006-01-02" calendar date and normalizes it.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return NormalizeDate(t), nil
}

// RangesOverlap reports whether two closed day ranges share at least one
// calendar day. Closed intervals mean checkout day and check-in day of
// two different reservations conflict (no same-day turnover).
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// IsAvailable reports whether the candidate range is free on the given
// property. Cancelled reservations never block; reservations of other
// properties are ignored. The input slice is treated as an immutable
// snapshot.
func IsAvailable(propertyID int64, start, end time.Time, existing []domain.Reservation) bool {
	start, end = NormalizeDate(start), NormalizeDate(end)
	for i := range existing {
		r := &existing[i]
		if r.PropertyID != propertyID || !r.Blocks() {
			continue
		}
		if RangesOverlap(start, end, NormalizeDate(r.StartDate), NormalizeDate(r.EndDate)) {
			return false
		}
	}
	return true
}
