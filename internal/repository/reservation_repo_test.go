package repository

import (
	"context"
	"testing"
	"time"

	"rentadmin/internal/database"
	"rentadmin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func seedReservation(t *testing.T, repo *ReservationRepository, propertyID int64, start, end string, status domain.ReservationStatus, origin domain.Origin, price float64) *domain.Reservation {
	t.Helper()

	r := &domain.Reservation{
		PropertyID: propertyID,
		GuestName:  "Guest",
		StartDate:  day(start),
		EndDate:    day(end),
		Guests:     2,
		TotalPrice: price,
		Origin:     origin,
		Status:     status,
	}
	require.NoError(t, repo.Create(context.Background(), r))
	return r
}

func TestReservationListBlocking(t *testing.T) {
	repo := NewReservationRepository(newTestDB(t))
	ctx := context.Background()

	kept := seedReservation(t, repo, 1, "2025-10-05", "2025-10-08", domain.ReservationConfirmed, domain.OriginAirbnb, 100)
	seedReservation(t, repo, 1, "2025-10-10", "2025-10-12", domain.ReservationCancelled, domain.OriginBooking, 100)
	seedReservation(t, repo, 2, "2025-10-05", "2025-10-08", domain.ReservationConfirmed, domain.OriginOther, 100)

	blocking, err := repo.ListBlocking(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, blocking, 1)
	assert.Equal(t, kept.ID, blocking[0].ID)

	// excluding the only blocker leaves nothing
	blocking, err = repo.ListBlocking(ctx, 1, kept.ID)
	require.NoError(t, err)
	assert.Empty(t, blocking)
}

func TestReservationListWindowFilter(t *testing.T) {
	repo := NewReservationRepository(newTestDB(t))
	ctx := context.Background()

	inside := seedReservation(t, repo, 1, "2025-10-05", "2025-10-08", domain.ReservationConfirmed, domain.OriginAirbnb, 100)
	straddling := seedReservation(t, repo, 1, "2025-09-28", "2025-10-02", domain.ReservationConfirmed, domain.OriginBooking, 100)
	seedReservation(t, repo, 1, "2025-11-05", "2025-11-08", domain.ReservationConfirmed, domain.OriginOther, 100)

	from, to := day("2025-10-01"), day("2025-10-31")
	got, err := repo.List(ctx, ReservationFilters{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, got, 2)

	ids := []int64{got[0].ID, got[1].ID}
	assert.Contains(t, ids, inside.ID)
	assert.Contains(t, ids, straddling.ID)
}

func TestReservationUpdateStatus(t *testing.T) {
	repo := NewReservationRepository(newTestDB(t))
	ctx := context.Background()

	r := seedReservation(t, repo, 1, "2025-10-05", "2025-10-08", domain.ReservationPending, domain.OriginAirbnb, 100)

	require.NoError(t, repo.UpdateStatus(ctx, r.ID, domain.ReservationConfirmed))

	got, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationConfirmed, got.Status)

	err = repo.UpdateStatus(ctx, 9999, domain.ReservationConfirmed)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAggregateByOrigin(t *testing.T) {
	repo := NewReservationRepository(newTestDB(t))
	ctx := context.Background()

	seedReservation(t, repo, 1, "2025-10-01", "2025-10-03", domain.ReservationConfirmed, domain.OriginAirbnb, 100)
	seedReservation(t, repo, 1, "2025-10-05", "2025-10-07", domain.ReservationCompleted, domain.OriginAirbnb, 200)
	seedReservation(t, repo, 2, "2025-10-09", "2025-10-11", domain.ReservationConfirmed, domain.OriginBooking, 400)
	seedReservation(t, repo, 2, "2025-10-13", "2025-10-15", domain.ReservationCancelled, domain.OriginBooking, 800)

	rows, err := repo.AggregateByOrigin(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// most frequent channel first, cancelled reservations excluded
	assert.Equal(t, "airbnb", rows[0].Origin)
	assert.Equal(t, int64(2), rows[0].Count)
	assert.Equal(t, 300.0, rows[0].Revenue)
	assert.Equal(t, "booking", rows[1].Origin)
	assert.Equal(t, 400.0, rows[1].Revenue)
}

func TestCountActiveAndCreatedSince(t *testing.T) {
	repo := NewReservationRepository(newTestDB(t))
	ctx := context.Background()

	seedReservation(t, repo, 1, "2025-10-01", "2025-10-03", domain.ReservationConfirmed, domain.OriginAirbnb, 100)
	seedReservation(t, repo, 1, "2025-10-05", "2025-10-07", domain.ReservationInProgress, domain.OriginAirbnb, 100)
	seedReservation(t, repo, 1, "2025-10-09", "2025-10-11", domain.ReservationCompleted, domain.OriginAirbnb, 100)
	seedReservation(t, repo, 1, "2025-10-13", "2025-10-15", domain.ReservationCancelled, domain.OriginAirbnb, 100)

	active, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), active)

	recent, err := repo.CountCreatedSince(ctx, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(4), recent)
}

func TestPaymentSums(t *testing.T) {
	db := newTestDB(t)
	payments := NewPaymentRepository(db)
	ctx := context.Background()

	paidAt := day("2025-10-10")
	mk := func(propertyID int64, amount, commission, owner float64, status domain.PaymentStatus, paidAt *time.Time) {
		p := &domain.Payment{
			ReservationID:    1,
			PropertyID:       propertyID,
			OwnerID:          7,
			Amount:           amount,
			CommissionPct:    10,
			CommissionAmount: commission,
			OwnerAmount:      owner,
			Method:           domain.MethodTransfer,
			Status:           status,
			PaidAt:           paidAt,
		}
		require.NoError(t, payments.Create(ctx, p))
	}

	mk(1, 100000, 10000, 90000, domain.PaymentPaid, &paidAt)
	mk(1, 50000, 5000, 45000, domain.PaymentPending, nil)
	mk(2, 30000, 3000, 27000, domain.PaymentPaid, &paidAt)

	totals, err := payments.SumPaidSince(ctx, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 130000.0, totals.Income)
	assert.Equal(t, 13000.0, totals.Commissions)

	forProp, err := payments.SumPaidForProperty(ctx, 1, "2025-10")
	require.NoError(t, err)
	assert.Equal(t, 100000.0, forProp.Income)
	assert.Equal(t, 90000.0, forProp.OwnerPayout)

	// pending payments never count
	pending, err := payments.CountByStatus(ctx, domain.PaymentPending)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending)
}

func TestExpenseSumForProperty(t *testing.T) {
	db := newTestDB(t)
	expenses := NewExpenseRepository(db)
	ctx := context.Background()

	mk := func(propertyID int64, month string, amount float64) {
		require.NoError(t, expenses.Create(ctx, &domain.Expense{
			PropertyID: propertyID,
			Month:      month,
			Category:   domain.ExpenseCleaning,
			Amount:     amount,
		}))
	}
	mk(1, "2025-10", 4000)
	mk(1, "2025-10", 6000)
	mk(1, "2025-09", 999)
	mk(2, "2025-10", 123)

	total, err := expenses.SumForProperty(ctx, 1, "2025-10")
	require.NoError(t, err)
	assert.Equal(t, 10000.0, total)

	allMonths, err := expenses.SumForProperty(ctx, 1, "")
	require.NoError(t, err)
	assert.Equal(t, 10999.0, allMonths)
}
