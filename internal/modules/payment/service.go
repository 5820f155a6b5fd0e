package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentadmin/internal/cache"
	"rentadmin/internal/domain"
	"rentadmin/internal/pkg/validator"
	"rentadmin/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	payments     PaymentRepository
	reservations ReservationReader
	properties   PropertyReader
	notifier     Notifier
	cache        *cache.Cache
	defaultPct   float64
}

func NewService(payments PaymentRepository, reservations ReservationReader, properties PropertyReader, notifier Notifier, c *cache.Cache, defaultPct float64) *Service {
	return &Service{
		payments:     payments,
		reservations: reservations,
		properties:   properties,
		notifier:     notifier,
		cache:        c,
		defaultPct:   defaultPct,
	}
}

func (s *Service) Create(ctx context.Context, req CreatePaymentRequest) (*domain.Payment, error) {
	if err := validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	method, err := domain.ParsePaymentMethod(req.Method)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	r, err := s.reservations.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("load reservation: %w", err)
	}

	prop, err := s.properties.GetByID(ctx, r.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("load property: %w", err)
	}

	amount := req.Amount
	if amount == 0 {
		amount = r.TotalPrice
	}

	pct := s.defaultPct
	if req.CommissionPct != nil {
		pct = *req.CommissionPct
	}
	commission, owner := ComputeCommission(amount, pct)

	p := &domain.Payment{
		ReservationID:    r.ID,
		PropertyID:       r.PropertyID,
		OwnerID:          prop.OwnerID,
		Amount:           amount,
		CommissionPct:    pct,
		CommissionAmount: commission,
		OwnerAmount:      owner,
		Method:           method,
		Status:           domain.PaymentPending,
		Reference:        "rcpt-" + uuid.NewString(),
		Notes:            req.Notes,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.invalidateAnalytics(ctx)
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	return s.payments.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f repository.PaymentFilters) ([]domain.Payment, error) {
	return s.payments.List(ctx, f)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdatePaymentRequest) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	becamePaid := false
	if req.Status != nil {
		status, err := domain.ParsePaymentStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		if status != p.Status {
			if !transitionAllowed(p.Status, status) {
				return nil, ErrInvalidStatusTransition
			}
			if status == domain.PaymentPaid {
				now := time.Now().UTC()
				p.PaidAt = &now
				becamePaid = true
			} else {
				p.PaidAt = nil
			}
			p.Status = status
		}
	}
	if req.Method != nil {
		method, err := domain.ParsePaymentMethod(*req.Method)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		p.Method = method
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}

	if err := s.payments.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}

	s.invalidateAnalytics(ctx)
	if becamePaid && s.notifier != nil {
		s.notifier.PaymentReceived(ctx, p)
	}
	return p, nil
}

// transitionAllowed encodes the payment lifecycle: a pending payment can
// settle or be voided, and a voided one can be reopened. Paid is final.
func transitionAllowed(from, to domain.PaymentStatus) bool {
	switch from {
	case domain.PaymentPending:
		return to == domain.PaymentPaid || to == domain.PaymentCancelled
	case domain.PaymentCancelled:
		return to == domain.PaymentPending
	default:
		return false
	}
}

func (s *Service) invalidateAnalytics(ctx context.Context) {
	s.cache.Invalidate(ctx, cache.KeyDashboardStats, cache.KeyOriginTotals)
}
