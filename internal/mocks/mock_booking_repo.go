package mocks

import (
	"context"

	"github.com/metinatakli/seat-booking/internal/domain"
)

type MockBookingRepo struct {
	domain.BookingRepository
	GetAllFunc  func(ctx context.Context, filters domain.BookingFilters) ([]*domain.Booking, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Booking, error)
}

func (m *MockBookingRepo) GetAll(ctx context.Context, filters domain.BookingFilters) ([]*domain.Booking, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockBookingRepo) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	return m.GetByIdFunc(ctx, id)
}
