package analytics

import (
	"context"
	"time"

	"rentadmin/internal/domain"
	"rentadmin/internal/repository"
)

type ReservationStats interface {
	CountActive(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	Upcoming(ctx context.Context, from, to time.Time, limit int) ([]domain.Reservation, error)
	AggregateByOrigin(ctx context.Context, from, to time.Time) ([]repository.OriginCount, error)
	List(ctx context.Context, f repository.ReservationFilters) ([]domain.Reservation, error)
}

type PaymentStats interface {
	CountByStatus(ctx context.Context, status domain.PaymentStatus) (int64, error)
	SumPaidSince(ctx context.Context, since time.Time) (repository.PaidTotals, error)
	SumPaidForProperty(ctx context.Context, propertyID int64, month string) (repository.PropertyTotals, error)
	List(ctx context.Context, f repository.PaymentFilters) ([]domain.Payment, error)
}

type ExpenseStats interface {
	SumForProperty(ctx context.Context, propertyID int64, month string) (float64, error)
}

type PropertyLister interface {
	List(ctx context.Context, f repository.PropertyFilters) ([]domain.Property, error)
	CountActive(ctx context.Context) (int64, error)
}
