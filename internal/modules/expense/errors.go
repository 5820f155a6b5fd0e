package expense

import "errors"

var (
	ErrValidation      = errors.New("invalid expense data")
	ErrInvalidMonth    = errors.New("month must be in YYYY-MM format")
	ErrUnknownCategory = errors.New("unknown expense category")
)
