package notification

import (
	"context"
	"fmt"
	"time"

	"rentadmin/internal/domain"
)

// Event is the payload broadcast to dashboard websocket clients.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
	At   string `json:"at"`
}

// Service dispatches domain events to the websocket hub and, when
// configured, to Telegram. It satisfies the reservation and payment
// notifier interfaces.
type Service struct {
	hub      *Hub
	telegram *TelegramSender
}

func NewService(hub *Hub, telegram *TelegramSender) *Service {
	return &Service{hub: hub, telegram: telegram}
}

func (s *Service) emit(eventType string, data any) {
	s.hub.Broadcast(Event{
		Type: eventType,
		Data: data,
		At:   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Service) ReservationCreated(ctx context.Context, r *domain.Reservation, propertyName string) {
	s.emit("reservation.created", r)
	s.telegram.Send(fmt.Sprintf(
		"New reservation: %s at %s, %s to %s (%s)",
		r.GuestName, propertyName,
		r.StartDate.Format("2006-01-02"), r.EndDate.Format("2006-01-02"),
		r.Origin,
	))
}

func (s *Service) ReservationCancelled(ctx context.Context, r *domain.Reservation, propertyName string) {
	s.emit("reservation.cancelled", r)
	s.telegram.Send(fmt.Sprintf(
		"Reservation cancelled: %s at %s, %s to %s",
		r.GuestName, propertyName,
		r.StartDate.Format("2006-01-02"), r.EndDate.Format("2006-01-02"),
	))
}

func (s *Service) PaymentReceived(ctx context.Context, p *domain.Payment) {
	s.emit("payment.paid", p)
	s.telegram.Send(fmt.Sprintf(
		"Payment received: %.2f (commission %.2f, owner %.2f) for reservation #%d",
		p.Amount, p.CommissionAmount, p.OwnerAmount, p.ReservationID,
	))
}
