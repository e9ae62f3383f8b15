package domain

import (
	"context"
	"time"
)

type Movie struct {
	ID          int
	Title       string
	Description string
	ReleaseDate time.Time
	Duration    int
}

type MovieRepository interface {
	GetAll(ctx context.Context) ([]*Movie, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int) error
}
