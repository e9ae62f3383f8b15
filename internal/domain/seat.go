package domain

import "context"

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatBooked    SeatStatus = "booked"
)

type Seat struct {
	ID         int
	SeatNumber string
	Status     SeatStatus
	MovieID    *int
	MovieTitle string
}

// NewSeat returns an available seat, optionally pinned to a movie.
func NewSeat(seatNumber string, movieID *int) *Seat {
	return &Seat{
		SeatNumber: seatNumber,
		Status:     SeatAvailable,
		MovieID:    movieID,
	}
}

func (s *Seat) IsBooked() bool {
	return s.Status == SeatBooked
}

// Book marks the seat as booked for movieID and pins it to that movie.
// A seat without a movie belongs to the shared pool and is claimed by the
// first movie that books it.
func (s *Seat) Book(movieID int) error {
	if s.IsBooked() {
		return ErrSeatUnavailable
	}

	if s.MovieID != nil && *s.MovieID != movieID {
		return ErrSeatWrongMovie
	}

	s.Status = SeatBooked
	s.MovieID = &movieID

	return nil
}

type SeatFilters struct {
	Status  *SeatStatus
	MovieID *int
}

type SeatRepository interface {
	GetAll(ctx context.Context, filters SeatFilters) ([]*Seat, error)
	// GetBookableForMovie returns the seats pinned to the movie together with
	// the unassigned pool.
	GetBookableForMovie(ctx context.Context, movieID int) ([]*Seat, error)
	GetById(ctx context.Context, id int) (*Seat, error)
	// GetByIdForUpdate locks the seat row until the surrounding transaction ends.
	GetByIdForUpdate(ctx context.Context, id int) (*Seat, error)
	Create(ctx context.Context, seat *Seat) error
	Update(ctx context.Context, seat *Seat) error
}
