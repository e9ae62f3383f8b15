package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/seat-booking/internal/domain"
)

const bookingMovieSeatKey = "bookings_movie_id_seat_id_key"

const bookingColumns = `
	b.id,
	b.reference,
	b.movie_id,
	b.seat_id,
	b.user_id,
	m.title,
	s.seat_number,
	u.username,
	u.email,
	b.booking_date
`

const bookingJoins = `
	FROM bookings b
	JOIN movies m ON b.movie_id = m.id
	JOIN seats s ON b.seat_id = s.id
	JOIN users u ON b.user_id = u.id
`

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) GetAll(ctx context.Context, filters domain.BookingFilters) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + `
		WHERE ($1::bigint IS NULL OR b.user_id = $1)
		ORDER BY b.booking_date DESC, b.id DESC
	`

	rows, err := conn(ctx, p.db).Query(ctx, query, filters.UserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []*domain.Booking{}

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (p *PostgresBookingRepository) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + `
		WHERE b.id = $1
	`

	booking, err := scanBooking(conn(ctx, p.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return booking, nil
}

func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		WITH inserted AS (
			INSERT INTO bookings (reference, movie_id, seat_id, user_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id, user_id, booking_date
		)
		SELECT i.id, i.booking_date, u.username, u.email
		FROM inserted i
		JOIN users u ON i.user_id = u.id
	`

	err := conn(ctx, p.db).QueryRow(
		ctx,
		query,
		booking.Reference,
		booking.MovieID,
		booking.SeatID,
		booking.UserID).Scan(&booking.ID, &booking.BookingDate, &booking.Username, &booking.UserEmail)

	if err != nil {
		switch {
		case isUniqueViolation(err, bookingMovieSeatKey):
			return domain.ErrBookingConflict
		case isForeignKeyViolation(err):
			return domain.ErrRecordNotFound
		default:
			return err
		}
	}

	return nil
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var booking domain.Booking

	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.MovieID,
		&booking.SeatID,
		&booking.UserID,
		&booking.MovieTitle,
		&booking.SeatNumber,
		&booking.Username,
		&booking.UserEmail,
		&booking.BookingDate,
	)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}
