package expense

import (
	"context"
	"fmt"
	"time"

	"rentadmin/internal/domain"
	"rentadmin/internal/pkg/validator"
	"rentadmin/internal/repository"
)

type Service struct {
	expenses   ExpenseRepository
	properties PropertyReader
}

func NewService(expenses ExpenseRepository, properties PropertyReader) *Service {
	return &Service{expenses: expenses, properties: properties}
}

// validateMonth accepts only real "2006-01" year-months.
func validateMonth(month string) error {
	if _, err := time.Parse("2006-01", month); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, req CreateExpenseRequest) (*domain.Expense, error) {
	if err := validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := validateMonth(req.Month); err != nil {
		return nil, err
	}

	category, err := domain.ParseExpenseCategory(req.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, req.Category)
	}

	if _, err := s.properties.GetByID(ctx, req.PropertyID); err != nil {
		return nil, err
	}

	e := &domain.Expense{
		PropertyID:  req.PropertyID,
		Month:       req.Month,
		Category:    category,
		Description: req.Description,
		Amount:      req.Amount,
	}
	if err := s.expenses.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return e, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Expense, error) {
	return s.expenses.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f repository.ExpenseFilters) ([]domain.Expense, error) {
	return s.expenses.List(ctx, f)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateExpenseRequest) (*domain.Expense, error) {
	e, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Month != nil {
		if err := validateMonth(*req.Month); err != nil {
			return nil, err
		}
		e.Month = *req.Month
	}
	if req.Category != nil {
		category, err := domain.ParseExpenseCategory(*req.Category)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, *req.Category)
		}
		e.Category = category
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, fmt.Errorf("%w: amount must not be negative", ErrValidation)
		}
		e.Amount = *req.Amount
	}

	if err := s.expenses.Update(ctx, e); err != nil {
		return nil, fmt.Errorf("update expense: %w", err)
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.expenses.Delete(ctx, id)
}
