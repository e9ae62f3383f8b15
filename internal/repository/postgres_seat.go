package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/seat-booking/internal/domain"
)

const seatNumberMovieKey = "seats_seat_number_movie_id_key"

const seatColumns = `
	se.id,
	se.seat_number,
	se.status,
	se.movie_id,
	COALESCE(m.title, '')
`

type PostgresSeatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatRepository(db *pgxpool.Pool) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

func (p *PostgresSeatRepository) GetAll(ctx context.Context, filters domain.SeatFilters) ([]*domain.Seat, error) {
	var (
		conditions []string
		args       []any
	)

	if filters.Status != nil {
		args = append(args, *filters.Status)
		conditions = append(conditions, fmt.Sprintf("se.status = $%d", len(args)))
	}

	if filters.MovieID != nil {
		args = append(args, *filters.MovieID)
		conditions = append(conditions, fmt.Sprintf("se.movie_id = $%d", len(args)))
	}

	query := `SELECT ` + seatColumns + `
		FROM seats se
		LEFT JOIN movies m ON se.movie_id = m.id`

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY se.seat_number, se.id"

	return p.querySeats(ctx, query, args...)
}

func (p *PostgresSeatRepository) GetBookableForMovie(ctx context.Context, movieID int) ([]*domain.Seat, error) {
	query := `SELECT ` + seatColumns + `
		FROM seats se
		LEFT JOIN movies m ON se.movie_id = m.id
		WHERE se.movie_id = $1 OR se.movie_id IS NULL
		ORDER BY se.seat_number, se.id
	`

	return p.querySeats(ctx, query, movieID)
}

func (p *PostgresSeatRepository) GetById(ctx context.Context, id int) (*domain.Seat, error) {
	query := `SELECT ` + seatColumns + `
		FROM seats se
		LEFT JOIN movies m ON se.movie_id = m.id
		WHERE se.id = $1
	`

	return p.querySeat(ctx, query, id)
}

func (p *PostgresSeatRepository) GetByIdForUpdate(ctx context.Context, id int) (*domain.Seat, error) {
	query := `SELECT ` + seatColumns + `
		FROM seats se
		LEFT JOIN movies m ON se.movie_id = m.id
		WHERE se.id = $1
		FOR UPDATE OF se
	`

	return p.querySeat(ctx, query, id)
}

func (p *PostgresSeatRepository) Create(ctx context.Context, seat *domain.Seat) error {
	query := `
		INSERT INTO seats (seat_number, status, movie_id)
		VALUES ($1, $2, $3)
		RETURNING id, COALESCE((SELECT title FROM movies WHERE id = $3), '')
	`

	err := conn(ctx, p.db).QueryRow(ctx, query, seat.SeatNumber, seat.Status, seat.MovieID).
		Scan(&seat.ID, &seat.MovieTitle)
	if err != nil {
		switch {
		case isUniqueViolation(err, seatNumberMovieKey):
			return domain.ErrDuplicateSeat
		case isForeignKeyViolation(err):
			return domain.ErrRecordNotFound
		default:
			return err
		}
	}

	return nil
}

func (p *PostgresSeatRepository) Update(ctx context.Context, seat *domain.Seat) error {
	query := `
		UPDATE seats
		SET seat_number = $1, status = $2, movie_id = $3
		WHERE id = $4
	`

	tag, err := conn(ctx, p.db).Exec(ctx, query, seat.SeatNumber, seat.Status, seat.MovieID, seat.ID)
	if err != nil {
		switch {
		case isUniqueViolation(err, seatNumberMovieKey):
			return domain.ErrDuplicateSeat
		case isForeignKeyViolation(err):
			return domain.ErrRecordNotFound
		default:
			return err
		}
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresSeatRepository) querySeat(ctx context.Context, query string, args ...any) (*domain.Seat, error) {
	var seat domain.Seat

	err := conn(ctx, p.db).QueryRow(ctx, query, args...).Scan(
		&seat.ID,
		&seat.SeatNumber,
		&seat.Status,
		&seat.MovieID,
		&seat.MovieTitle,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &seat, nil
}

func (p *PostgresSeatRepository) querySeats(ctx context.Context, query string, args ...any) ([]*domain.Seat, error) {
	rows, err := conn(ctx, p.db).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := []*domain.Seat{}

	for rows.Next() {
		var seat domain.Seat

		err = rows.Scan(
			&seat.ID,
			&seat.SeatNumber,
			&seat.Status,
			&seat.MovieID,
			&seat.MovieTitle,
		)
		if err != nil {
			return nil, err
		}

		seats = append(seats, &seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}
