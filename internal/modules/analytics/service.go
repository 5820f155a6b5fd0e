package analytics

import (
	"context"
	"fmt"
	"time"

	"rentadmin/internal/cache"
	"rentadmin/internal/domain"
	"rentadmin/internal/repository"
)

type Service struct {
	reservations ReservationStats
	payments     PaymentStats
	expenses     ExpenseStats
	properties   PropertyLister
	cache        *cache.Cache
}

func NewService(reservations ReservationStats, payments PaymentStats, expenses ExpenseStats, properties PropertyLister, c *cache.Cache) *Service {
	return &Service{
		reservations: reservations,
		payments:     payments,
		expenses:     expenses,
		properties:   properties,
		cache:        c,
	}
}

type DashboardStats struct {
	ActiveProperties      int64                `json:"active_properties"`
	ActiveReservations    int64                `json:"active_reservations"`
	ReservationsThisMonth int64                `json:"reservations_this_month"`
	MonthIncome           float64              `json:"month_income"`
	MonthCommissions      float64              `json:"month_commissions"`
	PendingPayments       int64                `json:"pending_payments"`
	Upcoming              []domain.Reservation `json:"upcoming"`
}

// Dashboard assembles the landing-page counters. Results are cached; any
// reservation or payment write invalidates the cache key.
func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if s.cache.Get(ctx, cache.KeyDashboardStats, &stats) {
		return &stats, nil
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var err error
	if stats.ActiveProperties, err = s.properties.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("count properties: %w", err)
	}
	if stats.ActiveReservations, err = s.reservations.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("count reservations: %w", err)
	}
	if stats.ReservationsThisMonth, err = s.reservations.CountCreatedSince(ctx, monthStart); err != nil {
		return nil, fmt.Errorf("count new reservations: %w", err)
	}

	totals, err := s.payments.SumPaidSince(ctx, monthStart)
	if err != nil {
		return nil, fmt.Errorf("sum payments: %w", err)
	}
	stats.MonthIncome = totals.Income
	stats.MonthCommissions = totals.Commissions

	if stats.PendingPayments, err = s.payments.CountByStatus(ctx, domain.PaymentPending); err != nil {
		return nil, fmt.Errorf("count pending payments: %w", err)
	}

	stats.Upcoming, err = s.reservations.Upcoming(ctx, now, now.AddDate(0, 0, 7), 5)
	if err != nil {
		return nil, fmt.Errorf("load upcoming reservations: %w", err)
	}

	s.cache.Set(ctx, cache.KeyDashboardStats, &stats)
	return &stats, nil
}

type OriginTotal struct {
	Origin  string  `json:"origin"`
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

// ByOrigin breaks down non-cancelled reservations by booking channel.
// Zero times mean an unbounded window; the unbounded result is cached.
func (s *Service) ByOrigin(ctx context.Context, from, to time.Time) ([]OriginTotal, error) {
	unbounded := from.IsZero() && to.IsZero()

	var out []OriginTotal
	if unbounded && s.cache.Get(ctx, cache.KeyOriginTotals, &out) {
		return out, nil
	}

	rows, err := s.reservations.AggregateByOrigin(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("aggregate by origin: %w", err)
	}

	out = make([]OriginTotal, 0, len(rows))
	for _, row := range rows {
		out = append(out, OriginTotal{Origin: row.Origin, Count: row.Count, Revenue: row.Revenue})
	}

	if unbounded {
		s.cache.Set(ctx, cache.KeyOriginTotals, out)
	}
	return out, nil
}

type PropertyPerformance struct {
	PropertyID   int64   `json:"property_id"`
	PropertyName string  `json:"property_name"`
	Income       float64 `json:"income"`
	OwnerPayout  float64 `json:"owner_payout"`
	Expenses     float64 `json:"expenses"`
	Profit       float64 `json:"profit"`
	Margin       float64 `json:"margin"`
}

// ByProperty reports income, payouts, expenses and profit per active
// property, optionally narrowed to one "2006-01" month.
func (s *Service) ByProperty(ctx context.Context, month string) ([]PropertyPerformance, error) {
	active := true
	properties, err := s.properties.List(ctx, repository.PropertyFilters{Active: &active})
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}

	out := make([]PropertyPerformance, 0, len(properties))
	for i := range properties {
		p := &properties[i]

		totals, err := s.payments.SumPaidForProperty(ctx, p.ID, month)
		if err != nil {
			return nil, fmt.Errorf("sum payments for property %d: %w", p.ID, err)
		}
		expenses, err := s.expenses.SumForProperty(ctx, p.ID, month)
		if err != nil {
			return nil, fmt.Errorf("sum expenses for property %d: %w", p.ID, err)
		}

		profit, margin := ComputeProfit(totals.Income, totals.OwnerPayout, expenses)
		out = append(out, PropertyPerformance{
			PropertyID:   p.ID,
			PropertyName: p.Name,
			Income:       totals.Income,
			OwnerPayout:  totals.OwnerPayout,
			Expenses:     expenses,
			Profit:       profit,
			Margin:       margin,
		})
	}
	return out, nil
}
