package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserRequired      = errors.New("a user is required to book a seat")
	ErrDuplicateSeat     = errors.New("seat number already exists for this movie")
	ErrSeatUnavailable   = errors.New("seat is already booked")
	ErrSeatWrongMovie    = errors.New("seat is not available for this movie")

	// ErrBookingConflict is reported when the store rejects a booking that passed
	// every precondition. It matches ErrSeatUnavailable under errors.Is.
	ErrBookingConflict = fmt.Errorf("%w: conflicting booking committed first", ErrSeatUnavailable)
)
