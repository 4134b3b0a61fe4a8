package model

import "errors"

// ValidationError is a client input problem whose message is safe to return.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrMissingFields  = &ValidationError{Message: "Missing required fields: user_message and companion_name"}
	ErrInvalidPayload = &ValidationError{Message: "Invalid JSON payload"}
)

// IsValidationError reports whether err should be echoed to the caller as a 400.
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
