package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/seat-booking/internal/domain"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	query := `
		SELECT id, title, description, release_date, duration
		FROM movies
		ORDER BY release_date, id
	`

	rows, err := conn(ctx, p.db).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.ReleaseDate,
			&movie.Duration,
		)
		if err != nil {
			return nil, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `
		SELECT id, title, description, release_date, duration
		FROM movies
		WHERE id = $1
	`

	var movie domain.Movie

	err := conn(ctx, p.db).QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.ReleaseDate,
		&movie.Duration,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &movie, nil
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `
		INSERT INTO movies (title, description, release_date, duration)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	return conn(ctx, p.db).QueryRow(
		ctx,
		query,
		movie.Title,
		movie.Description,
		movie.ReleaseDate,
		movie.Duration).Scan(&movie.ID)
}

func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `
		UPDATE movies
		SET title = $1, description = $2, release_date = $3, duration = $4
		WHERE id = $5
	`

	tag, err := conn(ctx, p.db).Exec(
		ctx,
		query,
		movie.Title,
		movie.Description,
		movie.ReleaseDate,
		movie.Duration,
		movie.ID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

// Delete removes the movie; its seats and bookings go with it.
func (p *PostgresMovieRepository) Delete(ctx context.Context, id int) error {
	tag, err := conn(ctx, p.db).Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
