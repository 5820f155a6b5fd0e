package property

import (
	"context"
	"testing"

	"rentadmin/internal/domain"
	"rentadmin/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	if p != nil && args.Error(0) == nil {
		p.ID = 999
	}
	return args.Error(0)
}

func (m *MockPropertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) List(ctx context.Context, f repository.PropertyFilters) ([]domain.Property, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPropertyRepository) SetActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func TestCreateProperty(t *testing.T) {
	repo := new(MockPropertyRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Property")).Return(nil)

	p, err := svc.Create(context.Background(), 7, CreatePropertyRequest{
		Name:         "Depto Playa Grande",
		City:         "Mar del Plata",
		Type:         "apartment",
		Capacity:     4,
		NightlyPrice: 45000,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(999), p.ID)
	assert.Equal(t, int64(7), p.OwnerID)
	assert.Equal(t, domain.PropertyApartment, p.Type)
	assert.True(t, p.IsActive)
}

func TestCreatePropertyInvalidType(t *testing.T) {
	repo := new(MockPropertyRepository)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), 7, CreatePropertyRequest{
		Name:     "Igloo",
		Type:     "igloo",
		Capacity: 2,
	})
	assert.ErrorIs(t, err, ErrInvalidType)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdatePropertyPartial(t *testing.T) {
	repo := new(MockPropertyRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Property{
		ID: 1, Name: "Old Name", City: "Mar del Plata", NightlyPrice: 45000, Type: domain.PropertyApartment,
	}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Property")).Return(nil)

	name := "New Name"
	price := 52000.0
	p, err := svc.Update(context.Background(), 1, UpdatePropertyRequest{
		Name:         &name,
		NightlyPrice: &price,
	})
	assert.NoError(t, err)
	assert.Equal(t, "New Name", p.Name)
	assert.Equal(t, 52000.0, p.NightlyPrice)
	assert.Equal(t, "Mar del Plata", p.City) // untouched fields survive
}

func TestDeleteIsSoft(t *testing.T) {
	repo := new(MockPropertyRepository)
	svc := NewService(repo)

	repo.On("SetActive", mock.Anything, int64(1), false).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 1))
	repo.AssertExpectations(t)
}
