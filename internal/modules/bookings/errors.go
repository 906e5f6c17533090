package bookings

import "errors"

var (
	ErrMissingFields   = errors.New("missing required booking fields")
	ErrInvalidTime     = errors.New("invalid booking time")
	ErrTimeOrder       = errors.New("end time must be after start time")
	ErrCreateForbidden = errors.New("only the user role may create bookings")
	ErrManageForbidden = errors.New("only admin or staff may manage bookings")
	ErrUnknownStatus   = errors.New("unknown booking status id")
	ErrNotFound        = errors.New("booking not found")
	ErrIncompleteTime  = errors.New("booking time data incomplete")
)
