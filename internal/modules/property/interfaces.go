package property

import (
	"context"

	"rentadmin/internal/domain"
	"rentadmin/internal/repository"
)

// PropertyRepository defines the persistence operations the service needs.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	List(ctx context.Context, f repository.PropertyFilters) ([]domain.Property, error)
	Update(ctx context.Context, p *domain.Property) error
	SetActive(ctx context.Context, id int64, active bool) error
}
