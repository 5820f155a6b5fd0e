package repository

import (
	"context"
	"time"

	"rentadmin/internal/domain"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	PropertyID int64     `gorm:"column:property_id;index:idx_reservations_property_dates"`
	GuestName  string    `gorm:"column:guest_name"`
	GuestEmail *string   `gorm:"column:guest_email"`
	GuestPhone *string   `gorm:"column:guest_phone"`
	StartDate  time.Time `gorm:"column:start_date;index:idx_reservations_property_dates"`
	EndDate    time.Time `gorm:"column:end_date;index:idx_reservations_property_dates"`
	Guests     int       `gorm:"column:guests"`
	TotalPrice float64   `gorm:"column:total_price"`
	Origin     string    `gorm:"column:origin"`
	Status     string    `gorm:"column:status"`
	Notes      *string   `gorm:"column:notes;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) *domain.Reservation {
	var email, phone, notes string
	if m.GuestEmail != nil {
		email = *m.GuestEmail
	}
	if m.GuestPhone != nil {
		phone = *m.GuestPhone
	}
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Reservation{
		ID:         m.ID,
		PropertyID: m.PropertyID,
		GuestName:  m.GuestName,
		GuestEmail: email,
		GuestPhone: phone,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		Guests:     m.Guests,
		TotalPrice: m.TotalPrice,
		Origin:     domain.Origin(m.Origin),
		Status:     domain.ReservationStatus(m.Status),
		Notes:      notes,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toReservationModel(r *domain.Reservation) reservationModel {
	nullable := func(v string) *string {
		if v == "" {
			return nil
		}
		return &v
	}

	return reservationModel{
		ID:         r.ID,
		PropertyID: r.PropertyID,
		GuestName:  r.GuestName,
		GuestEmail: nullable(r.GuestEmail),
		GuestPhone: nullable(r.GuestPhone),
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Guests:     r.Guests,
		TotalPrice: r.TotalPrice,
		Origin:     string(r.Origin),
		Status:     string(r.Status),
		Notes:      nullable(r.Notes),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// ReservationFilters narrows List results. From/To select reservations
// whose closed date range shares at least one day with [From, To].
type ReservationFilters struct {
	PropertyID int64
	Status     string
	From       *time.Time
	To         *time.Time
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(res)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*res = *toDomainReservation(m)
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var m reservationModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservation(m), nil
}

// ListBlocking returns the non-cancelled reservations of a property,
// optionally excluding one reservation (used when reviving a cancelled
// reservation, which must not conflict with itself).
func (r *ReservationRepository) ListBlocking(ctx context.Context, propertyID, excludeID int64) ([]domain.Reservation, error) {
	q := r.db.WithContext(ctx).Model(&reservationModel{}).
		Where("property_id = ?", propertyID).
		Where("status <> ?", string(domain.ReservationCancelled))
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var rows []reservationModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

func (r *ReservationRepository) List(ctx context.Context, f ReservationFilters) ([]domain.Reservation, error) {
	q := r.db.WithContext(ctx).Model(&reservationModel{})
	if f.PropertyID != 0 {
		q = q.Where("property_id = ?", f.PropertyID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.From != nil && f.To != nil {
		// closed-interval overlap with the requested window
		q = q.Where("start_date <= ? AND end_date >= ?", *f.To, *f.From)
	} else if f.From != nil {
		q = q.Where("end_date >= ?", *f.From)
	} else if f.To != nil {
		q = q.Where("start_date <= ?", *f.To)
	}

	var rows []reservationModel
	if err := q.Order("start_date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

// ListInMonth returns reservations of any status overlapping the month
// window; the occupancy indexer filters cancelled ones itself.
func (r *ReservationRepository) ListInMonth(ctx context.Context, first, last time.Time) ([]domain.Reservation, error) {
	var rows []reservationModel
	tx := r.db.WithContext(ctx).
		Where("start_date <= ? AND end_date >= ?", last, first).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	tx := r.db.WithContext(ctx).Model(&reservationModel{}).Where("id = ?", id).Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReservationRepository) CountActive(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&reservationModel{}).
		Where("status IN ?", []string{
			string(domain.ReservationConfirmed),
			string(domain.ReservationInProgress),
		}).
		Count(&cnt)
	return cnt, tx.Error
}

func (r *ReservationRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&reservationModel{}).
		Where("created_at >= ?", since).
		Count(&cnt)
	return cnt, tx.Error
}

// Upcoming returns pending/confirmed reservations starting in [from, to],
// soonest first.
func (r *ReservationRepository) Upcoming(ctx context.Context, from, to time.Time, limit int) ([]domain.Reservation, error) {
	var rows []reservationModel
	tx := r.db.WithContext(ctx).
		Where("start_date >= ? AND start_date <= ?", from, to).
		Where("status IN ?", []string{
			string(domain.ReservationPending),
			string(domain.ReservationConfirmed),
		}).
		Order("start_date ASC").
		Limit(limit).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

type OriginCount struct {
	Origin  string  `gorm:"column:origin"`
	Count   int64   `gorm:"column:count"`
	Revenue float64 `gorm:"column:revenue"`
}

// AggregateByOrigin groups reservations created in [from, to] by booking
// channel, most frequent first. Zero times mean an unbounded window.
func (r *ReservationRepository) AggregateByOrigin(ctx context.Context, from, to time.Time) ([]OriginCount, error) {
	q := r.db.WithContext(ctx).Model(&reservationModel{}).
		Select("origin, COUNT(1) AS count, COALESCE(SUM(total_price), 0) AS revenue").
		Where("status <> ?", string(domain.ReservationCancelled))
	if !from.IsZero() {
		q = q.Where("created_at >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("created_at <= ?", to)
	}

	var rows []OriginCount
	if err := q.Group("origin").Order("count DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
