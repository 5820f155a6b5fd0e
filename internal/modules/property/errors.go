package property

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrInvalidType = errors.New("invalid property type")
)
