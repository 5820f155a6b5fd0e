package reservation

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrInvalidDate             = errors.New("invalid date")
	ErrNotAvailable            = errors.New("property not available for the selected dates")
	ErrDoubleBooking           = errors.New("double booking constraint violation")
	ErrPropertyNotFound        = errors.New("property not found")
	ErrPropertyInactive        = errors.New("property is inactive")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
