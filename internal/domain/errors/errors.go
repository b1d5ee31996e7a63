package errors

import "errors"

var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrNotFound             = errors.New("not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidDateRange     = errors.New("invalid date range")
	ErrInvalidOperator      = errors.New("unknown operator")
	ErrConfirmationRequired = errors.New("confirmation required")
)
