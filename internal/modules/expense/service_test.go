package expense

import (
	"context"
	"testing"

	"rentadmin/internal/domain"
	"rentadmin/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	args := m.Called(ctx, e)
	if e != nil && args.Error(0) == nil {
		e.ID = 999
	}
	return args.Error(0)
}

func (m *MockExpenseRepository) GetByID(ctx context.Context, id int64) (*domain.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) List(ctx context.Context, f repository.ExpenseFilters) ([]domain.Expense, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) Update(ctx context.Context, e *domain.Expense) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
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

func TestCreateExpense(t *testing.T) {
	repo := new(MockExpenseRepository)
	props := new(MockPropertyReader)
	svc := NewService(repo, props)

	props.On("GetByID", mock.Anything, int64(1)).Return(&domain.Property{ID: 1}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Expense")).Return(nil)

	e, err := svc.Create(context.Background(), CreateExpenseRequest{
		PropertyID: 1,
		Month:      "2025-10",
		Category:   "cleaning",
		Amount:     15000,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(999), e.ID)
	assert.Equal(t, domain.ExpenseCleaning, e.Category)
	repo.AssertExpectations(t)
}

func TestCreateExpenseInvalidMonth(t *testing.T) {
	repo := new(MockExpenseRepository)
	props := new(MockPropertyReader)
	svc := NewService(repo, props)

	for _, month := range []string{"2025-13", "2025", "10-2025", "2025-10-05"} {
		_, err := svc.Create(context.Background(), CreateExpenseRequest{
			PropertyID: 1,
			Month:      month,
			Category:   "cleaning",
			Amount:     100,
		})
		assert.ErrorIs(t, err, ErrInvalidMonth, "month %q", month)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateExpenseUnknownCategory(t *testing.T) {
	repo := new(MockExpenseRepository)
	props := new(MockPropertyReader)
	svc := NewService(repo, props)

	_, err := svc.Create(context.Background(), CreateExpenseRequest{
		PropertyID: 1,
		Month:      "2025-10",
		Category:   "entertainment",
		Amount:     100,
	})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCreateExpenseMissingProperty(t *testing.T) {
	repo := new(MockExpenseRepository)
	props := new(MockPropertyReader)
	svc := NewService(repo, props)

	props.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), CreateExpenseRequest{
		PropertyID: 42,
		Month:      "2025-10",
		Category:   "supplies",
		Amount:     100,
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateExpense(t *testing.T) {
	repo := new(MockExpenseRepository)
	props := new(MockPropertyReader)
	svc := NewService(repo, props)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Expense{
		ID: 1, PropertyID: 1, Month: "2025-10", Category: domain.ExpenseCleaning, Amount: 15000,
	}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Expense")).Return(nil)

	amount := 18000.0
	category := "maintenance"
	e, err := svc.Update(context.Background(), 1, UpdateExpenseRequest{
		Amount:   &amount,
		Category: &category,
	})
	assert.NoError(t, err)
	assert.Equal(t, 18000.0, e.Amount)
	assert.Equal(t, domain.ExpenseMaintenance, e.Category)
	assert.Equal(t, "2025-10", e.Month) // untouched fields survive
}

func TestUpdateExpenseNegativeAmount(t *testing.T) {
	repo := new(MockExpenseRepository)
	props := new(MockPropertyReader)
	svc := NewService(repo, props)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Expense{ID: 1, Amount: 100}, nil)

	amount := -5.0
	_, err := svc.Update(context.Background(), 1, UpdateExpenseRequest{Amount: &amount})
	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
