package domain

import (
	"errors"
	"time"
)

type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodTransfer PaymentMethod = "transfer"
	MethodCard     PaymentMethod = "card"
	MethodPlatform PaymentMethod = "platform"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case MethodCash, MethodTransfer, MethodCard, MethodPlatform:
		return PaymentMethod(s), nil
	}
	return "", errors.New("unknown payment method: " + s)
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPaid, PaymentCancelled:
		return PaymentStatus(s), nil
	}
	return "", errors.New("unknown payment status: " + s)
}

// Payment records the settlement of a reservation: how much of the gross
// amount is retained as commission versus paid out to the property owner.
type Payment struct {
	ID               int64         `json:"id"`
	ReservationID    int64         `json:"reservation_id" validate:"required"`
	PropertyID       int64         `json:"property_id" validate:"required"`
	OwnerID          int64         `json:"owner_id"`
	Amount           float64       `json:"amount" validate:"gte=0"`
	CommissionPct    float64       `json:"commission_pct" validate:"gte=0,lte=100"`
	CommissionAmount float64       `json:"commission_amount"`
	OwnerAmount      float64       `json:"owner_amount"`
	Method           PaymentMethod `json:"method"`
	Status           PaymentStatus `json:"status"`
	PaidAt           *time.Time    `json:"paid_at,omitempty"`
	Reference        string        `json:"reference,omitempty"`
	Notes            string        `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`

	Reservation *Reservation `json:"reservation,omitempty" gorm:"foreignKey:ReservationID"`
	Property    *Property    `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
	Owner       *User        `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}
