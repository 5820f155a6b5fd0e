package repository

import (
	"context"
	"time"

	"rentadmin/internal/domain"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentModel struct {
	ID               int64      `gorm:"column:id;primaryKey"`
	ReservationID    int64      `gorm:"column:reservation_id;index"`
	PropertyID       int64      `gorm:"column:property_id;index"`
	OwnerID          int64      `gorm:"column:owner_id;index"`
	Amount           float64    `gorm:"column:amount"`
	CommissionPct    float64    `gorm:"column:commission_pct"`
	CommissionAmount float64    `gorm:"column:commission_amount"`
	OwnerAmount      float64    `gorm:"column:owner_amount"`
	Method           string     `gorm:"column:method"`
	Status           string     `gorm:"column:status"`
	PaidAt           *time.Time `gorm:"column:paid_at"`
	Reference        *string    `gorm:"column:reference"`
	Notes            *string    `gorm:"column:notes;type:text"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

func (paymentModel) TableName() string { return "payments" }

func toDomainPayment(m paymentModel) *domain.Payment {
	var reference, notes string
	if m.Reference != nil {
		reference = *m.Reference
	}
	if m.Notes != nil {
		notes = *m.Notes
	}
	return &domain.Payment{
		ID:               m.ID,
		ReservationID:    m.ReservationID,
		PropertyID:       m.PropertyID,
		OwnerID:          m.OwnerID,
		Amount:           m.Amount,
		CommissionPct:    m.CommissionPct,
		CommissionAmount: m.CommissionAmount,
		OwnerAmount:      m.OwnerAmount,
		Method:           domain.PaymentMethod(m.Method),
		Status:           domain.PaymentStatus(m.Status),
		PaidAt:           m.PaidAt,
		Reference:        reference,
		Notes:            notes,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toPaymentModel(p *domain.Payment) paymentModel {
	nullable := func(v string) *string {
		if v == "" {
			return nil
		}
		return &v
	}
	return paymentModel{
		ID:               p.ID,
		ReservationID:    p.ReservationID,
		PropertyID:       p.PropertyID,
		OwnerID:          p.OwnerID,
		Amount:           p.Amount,
		CommissionPct:    p.CommissionPct,
		CommissionAmount: p.CommissionAmount,
		OwnerAmount:      p.OwnerAmount,
		Method:           string(p.Method),
		Status:           string(p.Status),
		PaidAt:           p.PaidAt,
		Reference:        nullable(p.Reference),
		Notes:            nullable(p.Notes),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

type PaymentFilters struct {
	OwnerID    int64
	PropertyID int64
	Status     string
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	m := toPaymentModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPayment(m)
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var m paymentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPayment(m), nil
}

func (r *PaymentRepository) List(ctx context.Context, f PaymentFilters) ([]domain.Payment, error) {
	q := r.db.WithContext(ctx).Model(&paymentModel{})
	if f.OwnerID != 0 {
		q = q.Where("owner_id = ?", f.OwnerID)
	}
	if f.PropertyID != 0 {
		q = q.Where("property_id = ?", f.PropertyID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var rows []paymentModel
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Payment, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPayment(m))
	}
	return out, nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	m := toPaymentModel(p)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *PaymentRepository) CountByStatus(ctx context.Context, status domain.PaymentStatus) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&paymentModel{}).Where("status = ?", string(status)).Count(&cnt)
	return cnt, tx.Error
}

type PaidTotals struct {
	Income      float64 `gorm:"column:income"`
	Commissions float64 `gorm:"column:commissions"`
}

// SumPaidSince totals paid payments created at or after the given time.
func (r *PaymentRepository) SumPaidSince(ctx context.Context, since time.Time) (PaidTotals, error) {
	var totals PaidTotals
	tx := r.db.WithContext(ctx).Model(&paymentModel{}).
		Select("COALESCE(SUM(amount), 0) AS income, COALESCE(SUM(commission_amount), 0) AS commissions").
		Where("status = ?", string(domain.PaymentPaid)).
		Where("created_at >= ?", since).
		Scan(&totals)
	return totals, tx.Error
}

type PropertyTotals struct {
	Income      float64 `gorm:"column:income"`
	OwnerPayout float64 `gorm:"column:owner_payout"`
}

// SumPaidForProperty totals paid payments of one property, optionally for
// a single "2006-01" month (matched against paid_at).
func (r *PaymentRepository) SumPaidForProperty(ctx context.Context, propertyID int64, month string) (PropertyTotals, error) {
	q := r.db.WithContext(ctx).Model(&paymentModel{}).
		Select("COALESCE(SUM(amount), 0) AS income, COALESCE(SUM(owner_amount), 0) AS owner_payout").
		Where("property_id = ?", propertyID).
		Where("status = ?", string(domain.PaymentPaid))
	if month != "" {
		first, err := time.Parse("2006-01", month)
		if err == nil {
			last := first.AddDate(0, 1, 0)
			q = q.Where("paid_at >= ? AND paid_at < ?", first, last)
		}
	}

	var totals PropertyTotals
	tx := q.Scan(&totals)
	return totals, tx.Error
}
