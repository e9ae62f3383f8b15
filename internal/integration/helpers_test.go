package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/seat-booking/internal/domain"
	"github.com/metinatakli/seat-booking/internal/repository"
	"github.com/stretchr/testify/require"
)

// keysToIgnore are generated by the server and differ on every run.
var keysToIgnore = map[string]struct{}{
	"timestamp":   {},
	"requestId":   {},
	"createdAt":   {},
	"reference":   {},
	"bookingDate": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	clean(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func clean(v any) {
	switch v := v.(type) {
	case map[string]any:
		for k := range v {
			if _, ok := keysToIgnore[k]; ok {
				delete(v, k)
				continue
			}
			clean(v[k])
		}
	case []any:
		for _, item := range v {
			clean(item)
		}
	}
}

func truncateAll(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), `TRUNCATE bookings, seats, movies, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

func insertTestUser(t testing.TB, db *pgxpool.Pool, username, email string) int {
	user := &domain.User{Username: username, Email: email}
	require.NoError(t, user.Password.Set(TestUserPassword))

	err := repository.NewPostgresUserRepository(db).Create(context.Background(), user)
	require.NoError(t, err)

	return user.ID
}

func insertTestMovie(t testing.TB, db *pgxpool.Pool, title, releaseDate string) int {
	date, err := time.Parse("2006-01-02", releaseDate)
	require.NoError(t, err)

	movie := &domain.Movie{
		Title:       title,
		Description: TestMovieDescription,
		ReleaseDate: date,
		Duration:    TestMovieDuration,
	}

	err = repository.NewPostgresMovieRepository(db).Create(context.Background(), movie)
	require.NoError(t, err)

	return movie.ID
}

func insertTestSeat(t testing.TB, db *pgxpool.Pool, seatNumber string, movieID *int) int {
	seat := domain.NewSeat(seatNumber, movieID)

	err := repository.NewPostgresSeatRepository(db).Create(context.Background(), seat)
	require.NoError(t, err)

	return seat.ID
}

// setupBookingState creates TestUsername, "Test Movie" and seat A1 assigned
// to it, all with id 1.
func setupBookingState(t testing.TB, app *TestApp) {
	insertTestUser(t, app.DB, TestUsername, TestUserEmail)
	movieID := insertTestMovie(t, app.DB, TestMovieTitle, TestMovieReleaseDate)
	insertTestSeat(t, app.DB, TestSeatNumber, &movieID)
}

func getSeat(t testing.TB, db *pgxpool.Pool, id int) *domain.Seat {
	seat, err := repository.NewPostgresSeatRepository(db).GetById(context.Background(), id)
	require.NoError(t, err)

	return seat
}

func countRows(t testing.TB, db *pgxpool.Pool, table string) int {
	var n int
	err := db.QueryRow(context.Background(), `SELECT COUNT(*) FROM `+table).Scan(&n)
	require.NoError(t, err)

	return n
}

func ptr[T any](v T) *T {
	return &v
}
