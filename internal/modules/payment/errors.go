package payment

import "errors"

var (
	ErrValidation              = errors.New("invalid payment data")
	ErrReservationNotFound     = errors.New("reservation not found")
	ErrInvalidStatusTransition = errors.New("payment status transition not allowed")
)
