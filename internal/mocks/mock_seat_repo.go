package mocks

import (
	"context"

	"github.com/metinatakli/seat-booking/internal/domain"
)

type MockSeatRepo struct {
	domain.SeatRepository
	GetAllFunc              func(ctx context.Context, filters domain.SeatFilters) ([]*domain.Seat, error)
	GetBookableForMovieFunc func(ctx context.Context, movieID int) ([]*domain.Seat, error)
	GetByIdFunc             func(ctx context.Context, id int) (*domain.Seat, error)
	CreateFunc              func(ctx context.Context, seat *domain.Seat) error
}

func (m *MockSeatRepo) GetAll(ctx context.Context, filters domain.SeatFilters) ([]*domain.Seat, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockSeatRepo) GetBookableForMovie(ctx context.Context, movieID int) ([]*domain.Seat, error) {
	return m.GetBookableForMovieFunc(ctx, movieID)
}

func (m *MockSeatRepo) GetById(ctx context.Context, id int) (*domain.Seat, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockSeatRepo) Create(ctx context.Context, seat *domain.Seat) error {
	return m.CreateFunc(ctx, seat)
}
