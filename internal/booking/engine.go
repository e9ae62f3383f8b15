// Package booking decides whether a seat may be booked for a movie and
// records the booking atomically with the seat state change.
package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/metinatakli/seat-booking/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/metinatakli/seat-booking/internal/booking"

type Engine struct {
	tx       domain.TxManager
	movies   domain.MovieRepository
	seats    domain.SeatRepository
	bookings domain.BookingRepository

	newReference func() uuid.UUID
	tracer       trace.Tracer
}

type Option func(*Engine)

// WithReferenceGenerator overrides how booking references are generated.
func WithReferenceGenerator(fn func() uuid.UUID) Option {
	return func(e *Engine) {
		e.newReference = fn
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(e *Engine) {
		e.tracer = tracer
	}
}

func NewEngine(
	tx domain.TxManager,
	movies domain.MovieRepository,
	seats domain.SeatRepository,
	bookings domain.BookingRepository,
	opts ...Option,
) *Engine {
	e := &Engine{
		tx:           tx,
		movies:       movies,
		seats:        seats,
		bookings:     bookings,
		newReference: uuid.New,
		tracer:       otel.Tracer(tracerName),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// AttemptBooking books seatID for movieID on behalf of userID.
//
// The seat row is locked for the duration of the transaction, so concurrent
// attempts for the same seat are serialized and only the first one succeeds.
// Rule failures leave the store untouched.
func (e *Engine) AttemptBooking(ctx context.Context, movieID, seatID, userID int) (*domain.Booking, error) {
	ctx, span := e.tracer.Start(ctx, "booking.AttemptBooking", trace.WithAttributes(
		attribute.Int("booking.movie_id", movieID),
		attribute.Int("booking.seat_id", seatID),
		attribute.Int("booking.user_id", userID),
	))
	defer span.End()

	booking, err := e.attemptBooking(ctx, movieID, seatID, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("booking.id", booking.ID))

	return booking, nil
}

func (e *Engine) attemptBooking(ctx context.Context, movieID, seatID, userID int) (*domain.Booking, error) {
	if userID < 1 {
		return nil, domain.ErrUserRequired
	}

	var booking *domain.Booking

	err := e.tx.WithTx(ctx, func(ctx context.Context) error {
		movie, err := e.movies.GetById(ctx, movieID)
		if err != nil {
			return err
		}

		seat, err := e.seats.GetByIdForUpdate(ctx, seatID)
		if err != nil {
			return err
		}

		err = seat.Book(movie.ID)
		if err != nil {
			return err
		}

		err = e.seats.Update(ctx, seat)
		if err != nil {
			// an unassigned seat whose number is already taken by the movie
			if errors.Is(err, domain.ErrDuplicateSeat) {
				return domain.ErrSeatWrongMovie
			}

			return err
		}

		b := &domain.Booking{
			Reference:  e.newReference(),
			MovieID:    movie.ID,
			SeatID:     seat.ID,
			UserID:     userID,
			MovieTitle: movie.Title,
			SeatNumber: seat.SeatNumber,
		}

		err = e.bookings.Create(ctx, b)
		if err != nil {
			return err
		}

		booking = b

		return nil
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}
