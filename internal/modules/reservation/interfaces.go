package reservation

import (
	"context"

	"rentadmin/internal/domain"
	"rentadmin/internal/repository"
)

// ReservationRepository defines the persistence operations the service needs.
type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListBlocking(ctx context.Context, propertyID, excludeID int64) ([]domain.Reservation, error)
	List(ctx context.Context, f repository.ReservationFilters) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
}

// PropertyReader resolves the property a reservation is booked against.
type PropertyReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// Notifier receives reservation lifecycle events. A nil Notifier is
// allowed and means notifications are disabled.
type Notifier interface {
	ReservationCreated(ctx context.Context, r *domain.Reservation, propertyName string)
	ReservationCancelled(ctx context.Context, r *domain.Reservation, propertyName string)
}
