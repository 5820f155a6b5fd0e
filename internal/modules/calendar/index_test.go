package calendar

import (
	"testing"
	"time"

	"rentadmin/internal/domain"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBuildOccupancyIndex(t *testing.T) {
	reservations := []domain.Reservation{
		{ID: 1, PropertyID: 1, StartDate: date("2025-10-05"), EndDate: date("2025-10-08"), TotalPrice: 120000, Status: domain.ReservationConfirmed},
		{ID: 2, PropertyID: 2, StartDate: date("2025-10-10"), EndDate: date("2025-10-10"), TotalPrice: 30000, Status: domain.ReservationPending},
		{ID: 3, PropertyID: 1, StartDate: date("2025-10-20"), EndDate: date("2025-10-25"), TotalPrice: 50000, Status: domain.ReservationCancelled},
	}

	idx := BuildOccupancyIndex(reservations, 2025, time.October)

	for day := 5; day <= 8; day++ {
		entry, ok := idx.OccupancyOf(1, day)
		assert.True(t, ok, "day %d should be occupied", day)
		assert.Equal(t, int64(1), entry.ReservationID)
		assert.Equal(t, 30000.0, entry.Price) // 120000 over 4 occupied days
	}

	_, ok := idx.OccupancyOf(1, 4)
	assert.False(t, ok)
	_, ok = idx.OccupancyOf(1, 9)
	assert.False(t, ok)

	// one-day stay counts one occupied day
	entry, ok := idx.OccupancyOf(2, 10)
	assert.True(t, ok)
	assert.Equal(t, 30000.0, entry.Price)

	// cancelled reservations leave no trace
	for day := 20; day <= 25; day++ {
		_, ok := idx.OccupancyOf(1, day)
		assert.False(t, ok, "cancelled day %d should be free", day)
	}
}

func TestBuildOccupancyIndexClipsToMonth(t *testing.T) {
	reservations := []domain.Reservation{
		{ID: 1, PropertyID: 1, StartDate: date("2025-09-28"), EndDate: date("2025-10-03"), TotalPrice: 60000, Status: domain.ReservationConfirmed},
		{ID: 2, PropertyID: 1, StartDate: date("2025-10-30"), EndDate: date("2025-11-02"), TotalPrice: 40000, Status: domain.ReservationConfirmed},
		{ID: 3, PropertyID: 1, StartDate: date("2025-08-01"), EndDate: date("2025-08-10"), TotalPrice: 90000, Status: domain.ReservationConfirmed},
	}

	idx := BuildOccupancyIndex(reservations, 2025, time.October)

	for day := 1; day <= 3; day++ {
		_, ok := idx.OccupancyOf(1, day)
		assert.True(t, ok, "day %d spills in from September", day)
	}
	for day := 30; day <= 31; day++ {
		_, ok := idx.OccupancyOf(1, day)
		assert.True(t, ok, "day %d spills out into November", day)
	}
	for day := 4; day <= 29; day++ {
		_, ok := idx.OccupancyOf(1, day)
		assert.False(t, ok)
	}
}

func TestBuildOccupancyIndexTieBreak(t *testing.T) {
	overlapping := []domain.Reservation{
		{ID: 7, PropertyID: 1, StartDate: date("2025-10-05"), EndDate: date("2025-10-10"), TotalPrice: 50000, Status: domain.ReservationConfirmed},
		{ID: 3, PropertyID: 1, StartDate: date("2025-10-08"), EndDate: date("2025-10-12"), TotalPrice: 40000, Status: domain.ReservationConfirmed},
	}

	// the highest reservation ID wins the contested days, regardless of
	// input order
	for _, input := range [][]domain.Reservation{
		overlapping,
		{overlapping[1], overlapping[0]},
	} {
		idx := BuildOccupancyIndex(input, 2025, time.October)

		entry, ok := idx.OccupancyOf(1, 9)
		assert.True(t, ok)
		assert.Equal(t, int64(7), entry.ReservationID)

		entry, ok = idx.OccupancyOf(1, 11)
		assert.True(t, ok)
		assert.Equal(t, int64(3), entry.ReservationID)
	}
}

func TestBuildMonthGrid(t *testing.T) {
	idx := BuildOccupancyIndex([]domain.Reservation{
		{ID: 1, PropertyID: 1, StartDate: date("2025-10-05"), EndDate: date("2025-10-08"), TotalPrice: 120000, Status: domain.ReservationConfirmed},
	}, 2025, time.October)

	cells := BuildMonthGrid(idx, 2025, time.October)
	assert.Len(t, cells, 42)

	// October 2025 starts on a Wednesday: three leading September days
	assert.Equal(t, "2025-09-28", cells[0].Date)
	assert.False(t, cells[0].InMonth)
	assert.Equal(t, "2025-10-01", cells[3].Date)
	assert.True(t, cells[3].InMonth)
	assert.Equal(t, "2025-10-31", cells[33].Date)
	assert.False(t, cells[34].InMonth)
	assert.Equal(t, "2025-11-08", cells[41].Date)

	occupied := cells[3+4] // October 5th
	assert.Equal(t, "2025-10-05", occupied.Date)
	entry, ok := occupied.Occupancy[1]
	assert.True(t, ok)
	assert.Equal(t, int64(1), entry.ReservationID)

	free := cells[3] // October 1st
	assert.Empty(t, free.Occupancy)
}

func TestMonthWindow(t *testing.T) {
	first, last := MonthWindow(2024, time.February)
	assert.Equal(t, date("2024-02-01"), first)
	assert.Equal(t, date("2024-02-29"), last) // leap year
}
