package payment

import (
	"context"
	"testing"

	"rentadmin/internal/domain"
	"rentadmin/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	if p != nil && args.Error(0) == nil {
		p.ID = 999
	}
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) List(ctx context.Context, f repository.PaymentFilters) ([]domain.Payment, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockReservationReader struct {
	mock.Mock
}

func (m *MockReservationReader) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

type MockPropertyReader struct {
	mock.Mock
}

func (m *MockPropertyReader) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func newTestService(payments *MockPaymentRepository, reservations *MockReservationReader, properties *MockPropertyReader) *Service {
	return NewService(payments, reservations, properties, nil, nil, 10)
}

func TestCreatePayment(t *testing.T) {
	payments := new(MockPaymentRepository)
	reservations := new(MockReservationReader)
	properties := new(MockPropertyReader)
	svc := newTestService(payments, reservations, properties)

	reservations.On("GetByID", mock.Anything, int64(5)).Return(&domain.Reservation{
		ID: 5, PropertyID: 1, TotalPrice: 180000,
	}, nil)
	properties.On("GetByID", mock.Anything, int64(1)).Return(&domain.Property{
		ID: 1, OwnerID: 7,
	}, nil)
	payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)

	p, err := svc.Create(context.Background(), CreatePaymentRequest{
		ReservationID: 5,
		Method:        "transfer",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), p.OwnerID)
	assert.Equal(t, 180000.0, p.Amount) // falls back to the reservation total
	assert.Equal(t, 10.0, p.CommissionPct)
	assert.Equal(t, 18000.0, p.CommissionAmount)
	assert.Equal(t, 162000.0, p.OwnerAmount)
	assert.Equal(t, domain.PaymentPending, p.Status)
	assert.Contains(t, p.Reference, "rcpt-")
	payments.AssertExpectations(t)
}

func TestCreatePaymentCustomCommission(t *testing.T) {
	payments := new(MockPaymentRepository)
	reservations := new(MockReservationReader)
	properties := new(MockPropertyReader)
	svc := newTestService(payments, reservations, properties)

	reservations.On("GetByID", mock.Anything, int64(5)).Return(&domain.Reservation{
		ID: 5, PropertyID: 1, TotalPrice: 100000,
	}, nil)
	properties.On("GetByID", mock.Anything, int64(1)).Return(&domain.Property{ID: 1, OwnerID: 7}, nil)
	payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)

	pct := 20.0
	p, err := svc.Create(context.Background(), CreatePaymentRequest{
		ReservationID: 5,
		Amount:        100000,
		CommissionPct: &pct,
		Method:        "cash",
	})
	assert.NoError(t, err)
	assert.Equal(t, 20000.0, p.CommissionAmount)
	assert.Equal(t, 80000.0, p.OwnerAmount)
}

func TestCreatePaymentReservationMissing(t *testing.T) {
	payments := new(MockPaymentRepository)
	reservations := new(MockReservationReader)
	properties := new(MockPropertyReader)
	svc := newTestService(payments, reservations, properties)

	reservations.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), CreatePaymentRequest{
		ReservationID: 42,
		Method:        "cash",
	})
	assert.ErrorIs(t, err, ErrReservationNotFound)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdatePaymentMarksPaid(t *testing.T) {
	payments := new(MockPaymentRepository)
	reservations := new(MockReservationReader)
	properties := new(MockPropertyReader)
	svc := newTestService(payments, reservations, properties)

	payments.On("GetByID", mock.Anything, int64(1)).Return(&domain.Payment{
		ID: 1, Status: domain.PaymentPending,
	}, nil)
	payments.On("Update", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)

	status := "paid"
	p, err := svc.Update(context.Background(), 1, UpdatePaymentRequest{Status: &status})
	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, p.Status)
	assert.NotNil(t, p.PaidAt)
}

func TestUpdatePaymentPaidIsFinal(t *testing.T) {
	payments := new(MockPaymentRepository)
	reservations := new(MockReservationReader)
	properties := new(MockPropertyReader)
	svc := newTestService(payments, reservations, properties)

	payments.On("GetByID", mock.Anything, int64(1)).Return(&domain.Payment{
		ID: 1, Status: domain.PaymentPaid,
	}, nil)

	status := "cancelled"
	_, err := svc.Update(context.Background(), 1, UpdatePaymentRequest{Status: &status})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	payments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPaymentTransitions(t *testing.T) {
	assert.True(t, transitionAllowed(domain.PaymentPending, domain.PaymentPaid))
	assert.True(t, transitionAllowed(domain.PaymentPending, domain.PaymentCancelled))
	assert.True(t, transitionAllowed(domain.PaymentCancelled, domain.PaymentPending))
	assert.False(t, transitionAllowed(domain.PaymentCancelled, domain.PaymentPaid))
	assert.False(t, transitionAllowed(domain.PaymentPaid, domain.PaymentPending))
}
