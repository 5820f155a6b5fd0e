package calendar

import (
	"sort"
	"time"

	"rentadmin/internal/domain"
	"rentadmin/internal/modules/reservation"
)

// DayEntry is one occupied property-day of the visible month.
type DayEntry struct {
	ReservationID int64   `json:"reservation_id"`
	Price         float64 `json:"price"`
}

// OccupancyIndex maps propertyID -> dayOfMonth -> occupancy, built once
// per visible month so grid rendering is O(1) per cell.
type OccupancyIndex map[int64]map[int]DayEntry

// MonthWindow returns the first and last calendar day of a month, at
// midnight UTC.
func MonthWindow(year int, month time.Month) (first, last time.Time) {
	first = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)
	return first, last
}

// BuildOccupancyIndex records the nightly price of every occupied
// property-day inside the visible month. Reservation ranges are clipped
// to the month window; ranges that fall entirely outside contribute
// nothing. Cancelled reservations are skipped.
//
// When two reservations cover the same property-day (the availability
// check prevents this, but the data layer does not enforce it for
// historical rows), the one with the highest ID wins: iteration is
// sorted by ID ascending so the newest write lands last, deterministic
// regardless of input order.
func BuildOccupancyIndex(reservations []domain.Reservation, year int, month time.Month) OccupancyIndex {
	first, last := MonthWindow(year, month)

	sorted := make([]domain.Reservation, len(reservations))
	copy(sorted, reservations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	index := make(OccupancyIndex)
	for i := range sorted {
		r := &sorted[i]
		if !r.Blocks() {
			continue
		}

		start := reservation.NormalizeDate(r.StartDate)
		end := reservation.NormalizeDate(r.EndDate)
		if start.Before(first) {
			start = first
		}
		if end.After(last) {
			end = last
		}
		if start.After(end) {
			continue
		}

		price := r.NightlyPrice()
		days := index[r.PropertyID]
		if days == nil {
			days = make(map[int]DayEntry)
			index[r.PropertyID] = days
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			days[d.Day()] = DayEntry{ReservationID: r.ID, Price: price}
		}
	}
	return index
}

// OccupancyOf looks up one property-day. Absence means unoccupied.
func (idx OccupancyIndex) OccupancyOf(propertyID int64, day int) (DayEntry, bool) {
	days, ok := idx[propertyID]
	if !ok {
		return DayEntry{}, false
	}
	entry, ok := days[day]
	return entry, ok
}
