package booking

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/metinatakli/seat-booking/internal/domain"
)

// fakeStore is an in-memory store whose transactions are serialized and
// rolled back by restoring a snapshot.
type fakeStore struct {
	mu       sync.Mutex
	movies   map[int]domain.Movie
	seats    map[int]domain.Seat
	users    map[int]domain.User
	bookings []domain.Booking

	now func() time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		movies: map[int]domain.Movie{},
		seats:  map[int]domain.Seat{},
		users:  map[int]domain.User{},
		now:    time.Now,
	}
}

func (s *fakeStore) addMovie(id int, title string) {
	s.movies[id] = domain.Movie{ID: id, Title: title, Duration: 120}
}

func (s *fakeStore) addSeat(id int, number string, status domain.SeatStatus, movieID *int) {
	s.seats[id] = domain.Seat{ID: id, SeatNumber: number, Status: status, MovieID: movieID}
}

func (s *fakeStore) addUser(id int, username string) {
	s.users[id] = domain.User{ID: id, Username: username, Email: username + "@example.com"}
}

func (s *fakeStore) seat(id int) domain.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.seats[id]
}

func (s *fakeStore) allBookings() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]domain.Booking(nil), s.bookings...)
}

func (s *fakeStore) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seats := maps.Clone(s.seats)
	bookings := append([]domain.Booking(nil), s.bookings...)

	err := fn(ctx)
	if err != nil {
		s.seats = seats
		s.bookings = bookings
	}

	return err
}

type fakeMovies struct {
	domain.MovieRepository
	store *fakeStore
}

func (f fakeMovies) GetById(_ context.Context, id int) (*domain.Movie, error) {
	movie, ok := f.store.movies[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &movie, nil
}

type fakeSeats struct {
	domain.SeatRepository
	store *fakeStore
}

func (f fakeSeats) GetByIdForUpdate(_ context.Context, id int) (*domain.Seat, error) {
	seat, ok := f.store.seats[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &seat, nil
}

func (f fakeSeats) Update(_ context.Context, seat *domain.Seat) error {
	if _, ok := f.store.seats[seat.ID]; !ok {
		return domain.ErrRecordNotFound
	}

	for id, other := range f.store.seats {
		if id != seat.ID && other.SeatNumber == seat.SeatNumber && sameMovie(other.MovieID, seat.MovieID) {
			return domain.ErrDuplicateSeat
		}
	}

	f.store.seats[seat.ID] = *seat

	return nil
}

type fakeBookings struct {
	domain.BookingRepository
	store *fakeStore
}

func (f fakeBookings) Create(_ context.Context, booking *domain.Booking) error {
	for _, b := range f.store.bookings {
		if b.MovieID == booking.MovieID && b.SeatID == booking.SeatID {
			return domain.ErrBookingConflict
		}
	}

	user, ok := f.store.users[booking.UserID]
	if !ok {
		return domain.ErrRecordNotFound
	}

	booking.ID = len(f.store.bookings) + 1
	booking.BookingDate = f.store.now()
	booking.Username = user.Username
	booking.UserEmail = user.Email

	f.store.bookings = append(f.store.bookings, *booking)

	return nil
}

func sameMovie(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}

func newTestEngine(store *fakeStore, opts ...Option) *Engine {
	return NewEngine(store, fakeMovies{store: store}, fakeSeats{store: store}, fakeBookings{store: store}, opts...)
}
