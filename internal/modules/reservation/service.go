package reservation

import (
	"context"
	"math"

	"rentadmin/internal/cache"
	"rentadmin/internal/domain"
	"rentadmin/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	reservations ReservationRepository
	properties   PropertyReader
	notifs       Notifier
	cache        *cache.Cache
}

func NewService(reservations ReservationRepository, properties PropertyReader, notifs Notifier, c *cache.Cache) *Service {
	return &Service{
		reservations: reservations,
		properties:   properties,
		notifs:       notifs,
		cache:        c,
	}
}

func (s *Service) Create(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	start, err := ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, ErrValidation
	}

	origin, err := domain.ParseOrigin(req.Origin)
	if err != nil {
		return nil, ErrValidation
	}

	prop, err := s.properties.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, ErrPropertyNotFound
	}
	if !prop.IsActive {
		return nil, ErrPropertyInactive
	}

	existing, err := s.reservations.ListBlocking(ctx, req.PropertyID, 0)
	if err != nil {
		return nil, err
	}
	if !IsAvailable(req.PropertyID, start, end, existing) {
		return nil, ErrNotAvailable
	}

	total := req.TotalPrice
	if total == 0 {
		nights := int(end.Sub(start).Hours()/24) + 1
		total = math.Round(float64(nights)*prop.NightlyPrice*100) / 100
	}

	r := &domain.Reservation{
		PropertyID: req.PropertyID,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		GuestPhone: req.GuestPhone,
		StartDate:  start,
		EndDate:    end,
		Guests:     req.Guests,
		TotalPrice: total,
		Origin:     origin,
		Status:     domain.ReservationPending,
		Notes:      req.Notes,
	}

	if err := s.reservations.Create(ctx, r); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			// 23P01 = exclusion_violation on the no-double-booking constraint
			if pgErr.Code == "23P01" || (pgErr.Code == "23505" && pgErr.ConstraintName == "idx_no_double_booking") {
				return nil, ErrDoubleBooking
			}
		}
		return nil, err
	}

	s.invalidateAnalytics(ctx)
	if s.notifs != nil {
		s.notifs.ReservationCreated(ctx, r, prop.Name)
	}

	return r, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f repository.ReservationFilters) ([]domain.Reservation, error) {
	return s.reservations.List(ctx, f)
}

// UpdateStatus transitions a reservation. Reviving a cancelled
// reservation re-runs the availability check, since other bookings may
// have taken the dates in the meantime.
func (s *Service) UpdateStatus(ctx context.Context, id int64, newStatus domain.ReservationStatus) (*domain.Reservation, error) {
	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(r.Status, newStatus) {
		return nil, ErrInvalidStatusTransition
	}

	if r.Status == domain.ReservationCancelled && newStatus != domain.ReservationCancelled {
		existing, err := s.reservations.ListBlocking(ctx, r.PropertyID, r.ID)
		if err != nil {
			return nil, err
		}
		if !IsAvailable(r.PropertyID, r.StartDate, r.EndDate, existing) {
			return nil, ErrNotAvailable
		}
	}

	if err := s.reservations.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	s.invalidateAnalytics(ctx)

	r, err = s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if newStatus == domain.ReservationCancelled && s.notifs != nil {
		name := ""
		if prop, perr := s.properties.GetByID(ctx, r.PropertyID); perr == nil {
			name = prop.Name
		}
		s.notifs.ReservationCancelled(ctx, r, name)
	}

	return r, nil
}

// Cancel flips the reservation to cancelled, keeping the record.
func (s *Service) Cancel(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.UpdateStatus(ctx, id, domain.ReservationCancelled)
}

func (s *Service) invalidateAnalytics(ctx context.Context) {
	s.cache.Invalidate(ctx, cache.KeyDashboardStats, cache.KeyOriginTotals)
}

func transitionAllowed(from, to domain.ReservationStatus) bool {
	if from == to {
		return false
	}
	switch from {
	case domain.ReservationPending:
		return to == domain.ReservationConfirmed || to == domain.ReservationCancelled
	case domain.ReservationConfirmed:
		return to == domain.ReservationInProgress || to == domain.ReservationCompleted || to == domain.ReservationCancelled
	case domain.ReservationInProgress:
		return to == domain.ReservationCompleted || to == domain.ReservationCancelled
	case domain.ReservationCompleted:
		return false
	case domain.ReservationCancelled:
		// uncancel: dates must still be free, checked by the caller
		return to == domain.ReservationPending || to == domain.ReservationConfirmed
	}
	return false
}
