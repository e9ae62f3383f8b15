package mocks

import (
	"context"

	"github.com/metinatakli/seat-booking/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockBookingEngine records booking attempts with testify's mock package.
type MockBookingEngine struct {
	mock.Mock
}

func (m *MockBookingEngine) AttemptBooking(ctx context.Context, movieID, seatID, userID int) (*domain.Booking, error) {
	args := m.Called(ctx, movieID, seatID, userID)

	booking, _ := args.Get(0).(*domain.Booking)
	return booking, args.Error(1)
}
