package calendar

import (
	"context"
	"time"

	"rentadmin/internal/domain"
)

// ReservationReader loads the reservations overlapping a month window.
type ReservationReader interface {
	ListInMonth(ctx context.Context, first, last time.Time) ([]domain.Reservation, error)
}

type Service struct {
	reservations ReservationReader
}

func NewService(reservations ReservationReader) *Service {
	return &Service{reservations: reservations}
}

type MonthView struct {
	Year  int        `json:"year"`
	Month int        `json:"month"`
	Cells []GridCell `json:"cells"`
}

func (s *Service) GetMonth(ctx context.Context, year int, month time.Month) (*MonthView, error) {
	first, last := MonthWindow(year, month)

	reservations, err := s.reservations.ListInMonth(ctx, first, last)
	if err != nil {
		return nil, err
	}

	index := BuildOccupancyIndex(reservations, year, month)
	return &MonthView{
		Year:  year,
		Month: int(month),
		Cells: BuildMonthGrid(index, year, month),
	}, nil
}
