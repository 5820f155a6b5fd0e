package payment

import (
	"context"

	"rentadmin/internal/domain"
	"rentadmin/internal/repository"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	List(ctx context.Context, f repository.PaymentFilters) ([]domain.Payment, error)
	Update(ctx context.Context, p *domain.Payment) error
}

type ReservationReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

type PropertyReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// Notifier is optional; a nil Notifier disables outbound notifications.
type Notifier interface {
	PaymentReceived(ctx context.Context, p *domain.Payment)
}
