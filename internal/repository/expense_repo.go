package repository

import (
	"context"
	"time"

	"rentadmin/internal/domain"

	"gorm.io/gorm"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

type expenseModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	PropertyID  int64     `gorm:"column:property_id;index"`
	Month       string    `gorm:"column:month;index"`
	Category    string    `gorm:"column:category"`
	Description *string   `gorm:"column:description"`
	Amount      float64   `gorm:"column:amount"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (expenseModel) TableName() string { return "expenses" }

func toDomainExpense(m expenseModel) *domain.Expense {
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}
	return &domain.Expense{
		ID:          m.ID,
		PropertyID:  m.PropertyID,
		Month:       m.Month,
		Category:    domain.ExpenseCategory(m.Category),
		Description: desc,
		Amount:      m.Amount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toExpenseModel(e *domain.Expense) expenseModel {
	var desc *string
	if e.Description != "" {
		v := e.Description
		desc = &v
	}
	return expenseModel{
		ID:          e.ID,
		PropertyID:  e.PropertyID,
		Month:       e.Month,
		Category:    string(e.Category),
		Description: desc,
		Amount:      e.Amount,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

type ExpenseFilters struct {
	PropertyID int64
	Month      string
	Category   string
}

func (r *ExpenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	m := toExpenseModel(e)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainExpense(m)
	return nil
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id int64) (*domain.Expense, error) {
	var m expenseModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainExpense(m), nil
}

func (r *ExpenseRepository) List(ctx context.Context, f ExpenseFilters) ([]domain.Expense, error) {
	q := r.db.WithContext(ctx).Model(&expenseModel{})
	if f.PropertyID != 0 {
		q = q.Where("property_id = ?", f.PropertyID)
	}
	if f.Month != "" {
		q = q.Where("month = ?", f.Month)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}

	var rows []expenseModel
	if err := q.Order("month DESC, created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Expense, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainExpense(m))
	}
	return out, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, e *domain.Expense) error {
	m := toExpenseModel(e)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *ExpenseRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&expenseModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SumForProperty totals expenses of one property, optionally for a single
// "2006-01" month.
func (r *ExpenseRepository) SumForProperty(ctx context.Context, propertyID int64, month string) (float64, error) {
	q := r.db.WithContext(ctx).Model(&expenseModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("property_id = ?", propertyID)
	if month != "" {
		q = q.Where("month = ?", month)
	}

	var total float64
	if err := q.Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
