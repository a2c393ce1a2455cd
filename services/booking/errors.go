package booking

import "errors"

var (
	// ErrValidation reports a missing or malformed required field.
	ErrValidation = errors.New("validation error")
	// ErrUnknownService reports a booking referencing a service that is
	// not in the catalog.
	ErrUnknownService = errors.New("unknown service")
	// ErrBookingNotFound reports an operation on a nonexistent booking.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrIllegalTransition reports a status change the booking lifecycle
	// does not allow.
	ErrIllegalTransition = errors.New("illegal status transition")
)
