package integration_test

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/seat-booking/internal/app"
	"github.com/metinatakli/seat-booking/internal/booking"
	"github.com/metinatakli/seat-booking/internal/events"
	"github.com/metinatakli/seat-booking/internal/mailer"
	"github.com/metinatakli/seat-booking/internal/metrics"
	"github.com/metinatakli/seat-booking/internal/repository"
	appvalidator "github.com/metinatakli/seat-booking/internal/validator"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type TestApp struct {
	App       *app.Application
	Handler   http.Handler
	DB        *pgxpool.Pool
	Redis     *redis.Client
	Mailer    *mailer.MockMailer
	Publisher *events.RecordingPublisher
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	validator := appvalidator.NewValidator()
	mailer := mailer.NewMockMailer()
	publisher := &events.RecordingPublisher{}

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	userRepo := repository.NewPostgresUserRepository(db)
	movieRepo := repository.NewPostgresMovieRepository(db)
	seatRepo := repository.NewPostgresSeatRepository(db)
	bookingRepo := repository.NewPostgresBookingRepository(db)

	engine := booking.NewEngine(repository.NewPostgresTxManager(db), movieRepo, seatRepo, bookingRepo)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		mailer,
		sessionManager,
		publisher,
		metrics.New(),
		userRepo,
		movieRepo,
		seatRepo,
		bookingRepo,
		engine,
	)

	return &TestApp{
		App:       application,
		Handler:   application.Routes(),
		DB:        db,
		Redis:     redisClient,
		Mailer:    mailer,
		Publisher: publisher,
	}, nil
}

func (a *TestApp) Close() {
	a.Redis.Close()
	a.DB.Close()
}

// login authenticates through the API and returns the session cookies.
func (a *TestApp) login(t testing.TB, username, password string) []*http.Cookie {
	body := fmt.Sprintf(`{"username": %q, "password": %q}`, username, password)

	req := httptest.NewRequest(http.MethodPost, "/api/users/authenticate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	a.Handler.ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusNoContent, res.StatusCode, "login as %s failed", username)

	cookies := res.Cookies()
	require.NotEmpty(t, cookies, "login did not set a session cookie")

	return cookies
}
