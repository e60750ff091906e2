package booking

import "errors"

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidMediaID     = errors.New("invalid media id")
	ErrMissingContact     = errors.New("client name and email are required")
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
	ErrInvalidTransition  = errors.New("booking status transition not allowed")
	ErrBookingNotAccepted = errors.New("could not save your booking, please try again")
)
