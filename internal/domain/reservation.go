package domain

import (
	"errors"
	"time"
)

type ReservationStatus string

const (
	ReservationPending    ReservationStatus = "pending"
	ReservationConfirmed  ReservationStatus = "confirmed"
	ReservationInProgress ReservationStatus = "in_progress"
	ReservationCompleted  ReservationStatus = "completed"
	ReservationCancelled  ReservationStatus = "cancelled"
)

func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch ReservationStatus(s) {
	case ReservationPending, ReservationConfirmed, ReservationInProgress,
		ReservationCompleted, ReservationCancelled:
		return ReservationStatus(s), nil
	}
	return "", errors.New("unknown reservation status: " + s)
}

// Origin is the booking channel a reservation came through.
type Origin string

const (
	OriginAirbnb      Origin = "airbnb"
	OriginBooking     Origin = "booking"
	OriginFacebook    Origin = "facebook"
	OriginMarketplace Origin = "marketplace"
	OriginReferred    Origin = "referred"
	OriginOther       Origin = "other"
)

func ParseOrigin(s string) (Origin, error) {
	switch Origin(s) {
	case OriginAirbnb, OriginBooking, OriginFacebook, OriginMarketplace,
		OriginReferred, OriginOther:
		return Origin(s), nil
	}
	return "", errors.New("unknown origin: " + s)
}

// Reservation dates are calendar dates normalized to midnight UTC.
// StartDate and EndDate form a closed interval: both days are occupied,
// so same-day turnover between two reservations is a conflict.
type Reservation struct {
	ID         int64             `json:"id"`
	PropertyID int64             `json:"property_id" validate:"required"`
	GuestName  string            `json:"guest_name" validate:"required"`
	GuestEmail string            `json:"guest_email,omitempty"`
	GuestPhone string            `json:"guest_phone,omitempty"`
	StartDate  time.Time         `json:"start_date" validate:"required"`
	EndDate    time.Time         `json:"end_date" validate:"required"`
	Guests     int               `json:"guests" validate:"gte=1"`
	TotalPrice float64           `json:"total_price" validate:"gte=0"`
	Origin     Origin            `json:"origin"`
	Status     ReservationStatus `json:"status"`
	Notes      string            `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`

	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}

// Blocks reports whether the reservation can make dates unavailable.
func (r *Reservation) Blocks() bool {
	return r.Status != ReservationCancelled
}

// NightlyPrice spreads the total price over the occupied days of the
// stay. The interval is closed, so a stay from the 5th to the 8th
// covers four days, and a derived total divided back out returns the
// property's nightly rate.
func (r *Reservation) NightlyPrice() float64 {
	days := int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return r.TotalPrice / float64(days)
}
