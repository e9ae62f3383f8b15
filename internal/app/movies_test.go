package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/seat-booking/api"
	"github.com/metinatakli/seat-booking/internal/domain"
	"github.com/metinatakli/seat-booking/internal/mocks"
	"github.com/metinatakli/seat-booking/internal/validator"
	"github.com/oapi-codegen/runtime/types"
)

func TestGetMovies(t *testing.T) {
	first := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2024, time.July, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		getAllFunc     func(context.Context) ([]*domain.Movie, error)
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.MovieListResponse
	}{
		{
			name: "returns movies in store order",
			getAllFunc: func(ctx context.Context) ([]*domain.Movie, error) {
				return []*domain.Movie{
					{ID: 2, Title: "Early Movie", Description: "First out", ReleaseDate: first, Duration: 95},
					{ID: 1, Title: "Late Movie", Description: "Second out", ReleaseDate: second, Duration: 130},
				}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.MovieListResponse{
				Movies: []api.Movie{
					{Id: 2, Title: "Early Movie", Description: "First out", ReleaseDate: types.Date{Time: first}, Duration: 95},
					{Id: 1, Title: "Late Movie", Description: "Second out", ReleaseDate: types.Date{Time: second}, Duration: 130},
				},
			},
		},
		{
			name: "returns empty list when there are no movies",
			getAllFunc: func(ctx context.Context) ([]*domain.Movie, error) {
				return []*domain.Movie{}, nil
			},
			wantStatus:   http.StatusOK,
			wantResponse: &api.MovieListResponse{Movies: []api.Movie{}},
		},
		{
			name: "database error",
			getAllFunc: func(ctx context.Context) ([]*domain.Movie, error) {
				return nil, fmt.Errorf("database error")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.movieRepo = &mocks.MockMovieRepo{
					GetAllFunc: tt.getAllFunc,
				}
			})

			w, r := executeRequest(t, http.MethodGet, "/api/movies", nil)

			app.GetMovies(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("GetMovies() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				var response api.MovieListResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				if err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, &response); diff != "" {
					t.Errorf("GetMovies() response mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestGetMovieById(t *testing.T) {
	releaseDate := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		movieId        int
		getByIdFunc    func(context.Context, int) (*domain.Movie, error)
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.Movie
	}{
		{
			name:    "existing movie",
			movieId: 1,
			getByIdFunc: func(ctx context.Context, id int) (*domain.Movie, error) {
				return &domain.Movie{ID: id, Title: "Test Movie", Description: "A test", ReleaseDate: releaseDate, Duration: 120}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.Movie{
				Id:          1,
				Title:       "Test Movie",
				Description: "A test",
				ReleaseDate: types.Date{Time: releaseDate},
				Duration:    120,
			},
		},
		{
			name:    "missing movie",
			movieId: 42,
			getByIdFunc: func(ctx context.Context, id int) (*domain.Movie, error) {
				return nil, domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:    "database error",
			movieId: 1,
			getByIdFunc: func(ctx context.Context, id int) (*domain.Movie, error) {
				return nil, fmt.Errorf("database error")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.movieRepo = &mocks.MockMovieRepo{
					GetByIdFunc: tt.getByIdFunc,
				}
			})

			w, r := executeRequest(t, http.MethodGet, fmt.Sprintf("/api/movies/%d", tt.movieId), nil)

			app.GetMovieById(w, r, tt.movieId)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("GetMovieById() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				var response api.Movie
				err := json.NewDecoder(w.Body).Decode(&response)
				if err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, &response); diff != "" {
					t.Errorf("GetMovieById() response mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestCreateMovie(t *testing.T) {
	validBody := map[string]any{
		"title":       "Test Movie",
		"description": "A test",
		"releaseDate": "2024-03-01",
		"duration":    120,
	}

	tests := []struct {
		name           string
		body           any
		createFunc     func(context.Context, *domain.Movie) error
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.Movie
	}{
		{
			name: "creates movie",
			body: validBody,
			createFunc: func(ctx context.Context, movie *domain.Movie) error {
				movie.ID = 7
				return nil
			},
			wantStatus: http.StatusCreated,
			wantResponse: &api.Movie{
				Id:          7,
				Title:       "Test Movie",
				Description: "A test",
				ReleaseDate: types.Date{Time: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
				Duration:    120,
			},
		},
		{
			name: "missing title",
			body: map[string]any{
				"description": "A test",
				"releaseDate": "2024-03-01",
				"duration":    120,
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name: "duration out of range",
			body: map[string]any{
				"title":       "Test Movie",
				"description": "A test",
				"releaseDate": "2024-03-01",
				"duration":    5000,
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: fmt.Sprintf(validator.ErrMaxValue, "1000"),
		},
		{
			name: "unknown field",
			body: map[string]any{
				"title":  "Test Movie",
				"poster": "x.jpg",
			},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: `body contains unknown key "poster"`,
		},
		{
			name: "database error",
			body: validBody,
			createFunc: func(ctx context.Context, movie *domain.Movie) error {
				return fmt.Errorf("database error")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.movieRepo = &mocks.MockMovieRepo{
					CreateFunc: tt.createFunc,
				}
			})

			w, r := executeRequest(t, http.MethodPost, "/api/movies", tt.body)

			app.CreateMovie(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("CreateMovie() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				var response api.Movie
				err := json.NewDecoder(w.Body).Decode(&response)
				if err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, &response); diff != "" {
					t.Errorf("CreateMovie() response mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestUpdateMovie(t *testing.T) {
	body := map[string]any{
		"title":       "Renamed",
		"description": "Updated",
		"releaseDate": "2025-01-15",
		"duration":    99,
	}

	tests := []struct {
		name           string
		updateFunc     func(context.Context, *domain.Movie) error
		wantStatus     int
		wantErrMessage string
	}{
		{
			name: "updates movie",
			updateFunc: func(ctx context.Context, movie *domain.Movie) error {
				if movie.ID != 3 || movie.Title != "Renamed" {
					return fmt.Errorf("unexpected movie %+v", movie)
				}
				return nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing movie",
			updateFunc: func(ctx context.Context, movie *domain.Movie) error {
				return domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.movieRepo = &mocks.MockMovieRepo{
					UpdateFunc: tt.updateFunc,
				}
			})

			w, r := executeRequest(t, http.MethodPut, "/api/movies/3", body)

			app.UpdateMovie(w, r, 3)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("UpdateMovie() status = %v, want %v", got, tt.wantStatus)
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestDeleteMovie(t *testing.T) {
	tests := []struct {
		name           string
		deleteFunc     func(context.Context, int) error
		wantStatus     int
		wantErrMessage string
	}{
		{
			name: "deletes movie",
			deleteFunc: func(ctx context.Context, id int) error {
				return nil
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "missing movie",
			deleteFunc: func(ctx context.Context, id int) error {
				return domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name: "database error",
			deleteFunc: func(ctx context.Context, id int) error {
				return fmt.Errorf("database error")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.movieRepo = &mocks.MockMovieRepo{
					DeleteFunc: tt.deleteFunc,
				}
			})

			w, r := executeRequest(t, http.MethodDelete, "/api/movies/5", nil)

			app.DeleteMovie(w, r, 5)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("DeleteMovie() status = %v, want %v", got, tt.wantStatus)
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestGetMovieSeats(t *testing.T) {
	tests := []struct {
		name           string
		getByIdFunc    func(context.Context, int) (*domain.Movie, error)
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.SeatListResponse
	}{
		{
			name: "lists seats pinned to the movie",
			getByIdFunc: func(ctx context.Context, id int) (*domain.Movie, error) {
				return &domain.Movie{ID: id, Title: "Test Movie"}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.SeatListResponse{
				Seats: []api.Seat{
					{Id: 1, SeatNumber: "A1", Status: api.Booked, Movie: ptr(4), MovieTitle: ptr("Test Movie")},
				},
			},
		},
		{
			name: "missing movie",
			getByIdFunc: func(ctx context.Context, id int) (*domain.Movie, error) {
				return nil, domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFilters domain.SeatFilters

			app := newTestApplication(func(a *Application) {
				a.movieRepo = &mocks.MockMovieRepo{
					GetByIdFunc: tt.getByIdFunc,
				}
				a.seatRepo = &mocks.MockSeatRepo{
					GetAllFunc: func(ctx context.Context, filters domain.SeatFilters) ([]*domain.Seat, error) {
						gotFilters = filters
						return []*domain.Seat{
							{ID: 1, SeatNumber: "A1", Status: domain.SeatBooked, MovieID: ptr(4), MovieTitle: "Test Movie"},
						}, nil
					},
				}
			})

			w, r := executeRequest(t, http.MethodGet, "/api/movies/4/seats", nil)

			app.GetMovieSeats(w, r, 4)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("GetMovieSeats() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				if gotFilters.MovieID == nil || *gotFilters.MovieID != 4 || gotFilters.Status != nil {
					t.Errorf("GetMovieSeats() filters = %+v, want movie 4 only", gotFilters)
				}

				var response api.SeatListResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				if err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, &response); diff != "" {
					t.Errorf("GetMovieSeats() response mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}
