package domain

import (
	"errors"
	"time"
)

type ExpenseCategory string

const (
	ExpenseCleaning    ExpenseCategory = "cleaning"
	ExpenseMaintenance ExpenseCategory = "maintenance"
	ExpenseSupplies    ExpenseCategory = "supplies"
	ExpenseServices    ExpenseCategory = "services"
	ExpenseTaxes       ExpenseCategory = "taxes"
	ExpenseOther       ExpenseCategory = "other"
)

func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	switch ExpenseCategory(s) {
	case ExpenseCleaning, ExpenseMaintenance, ExpenseSupplies,
		ExpenseServices, ExpenseTaxes, ExpenseOther:
		return ExpenseCategory(s), nil
	}
	return "", errors.New("unknown expense category: " + s)
}

// Expense is recorded at year-month granularity ("2006-01").
type Expense struct {
	ID          int64           `json:"id"`
	PropertyID  int64           `json:"property_id" validate:"required"`
	Month       string          `json:"month" validate:"required"`
	Category    ExpenseCategory `json:"category"`
	Description string          `json:"description,omitempty"`
	Amount      float64         `json:"amount" validate:"gte=0"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}
