package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/seat-booking/api"
	"github.com/metinatakli/seat-booking/internal/events"
	"github.com/metinatakli/seat-booking/internal/mailer"
	"github.com/metinatakli/seat-booking/internal/metrics"
	"github.com/metinatakli/seat-booking/internal/mocks"
	"github.com/metinatakli/seat-booking/internal/validator"
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		config:         Config{Env: "test"},
		validator:      validator.NewValidator(),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessionManager: scs.New(),
		mailer:         mailer.NewMockMailer(),
		publisher:      &events.RecordingPublisher{},
		metrics:        metrics.New(),
		bookingCounter: newBookingCounter(),
		templateCache:  mustTemplateCache(),
		openapiRouter:  mustOpenAPIRouter(),
		userRepo:       &mocks.MockUserRepo{},
		movieRepo:      &mocks.MockMovieRepo{},
		seatRepo:       &mocks.MockSeatRepo{},
		bookingRepo:    &mocks.MockBookingRepo{},
		bookingEngine:  &mocks.MockBookingEngine{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// setupTestSession loads an empty session into the request context and
// stores userId in it. A zero userId leaves the session anonymous.
func setupTestSession(t *testing.T, app *Application, r *http.Request, userId int) *http.Request {
	ctx, err := app.sessionManager.Load(r.Context(), "")
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}

	if userId != 0 {
		app.sessionManager.Put(ctx, SessionKeyUserId.String(), userId)
	}

	return r.WithContext(ctx)
}

// withAuthenticatedUser mimics requireAuthentication for handlers called
// directly.
func withAuthenticatedUser(r *http.Request, userId int) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), SessionKeyUserId, userId))
}

func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}

		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}
