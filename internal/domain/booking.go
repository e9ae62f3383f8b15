package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID          int
	Reference   uuid.UUID
	MovieID     int
	SeatID      int
	UserID      int
	MovieTitle  string
	SeatNumber  string
	Username    string
	UserEmail   string
	BookingDate time.Time
}

type BookingFilters struct {
	UserID *int
}

type BookingRepository interface {
	GetAll(ctx context.Context, filters BookingFilters) ([]*Booking, error)
	GetById(ctx context.Context, id int) (*Booking, error)
	// Create inserts the booking and stamps its ID, BookingDate and user
	// details. A second booking for the same movie and seat fails with
	// ErrBookingConflict.
	Create(ctx context.Context, booking *Booking) error
}
