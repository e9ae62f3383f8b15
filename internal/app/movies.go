package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/seat-booking/api"
	"github.com/metinatakli/seat-booking/internal/domain"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies: toApiMovies(movies),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieById(w http.ResponseWriter, r *http.Request, movieId int) {
	movie, err := app.movieRepo.GetById(r.Context(), movieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovie(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie := toDomainMovie(input)

	err = app.movieRepo.Create(r.Context(), movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("movie created", "movie_id", movie.ID)

	err = app.writeJSON(w, http.StatusCreated, toApiMovie(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request, movieId int) {
	var input api.UpdateMovieJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie := toDomainMovie(input)
	movie.ID = movieId

	err = app.movieRepo.Update(r.Context(), movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovie(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeleteMovie removes the movie along with its seats and bookings.
func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request, movieId int) {
	err := app.movieRepo.Delete(r.Context(), movieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.contextGetLogger(r).Info("movie deleted", "movie_id", movieId)

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) GetMovieSeats(w http.ResponseWriter, r *http.Request, movieId int) {
	_, err := app.movieRepo.GetById(r.Context(), movieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	seats, err := app.seatRepo.GetAll(r.Context(), domain.SeatFilters{MovieID: &movieId})
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.SeatListResponse{Seats: toApiSeats(seats)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toDomainMovie(input api.MovieRequest) *domain.Movie {
	return &domain.Movie{
		Title:       input.Title,
		Description: input.Description,
		ReleaseDate: input.ReleaseDate.Time,
		Duration:    input.Duration,
	}
}

func toApiMovies(movies []*domain.Movie) []api.Movie {
	resp := make([]api.Movie, len(movies))

	for i, movie := range movies {
		resp[i] = toApiMovie(movie)
	}

	return resp
}

func toApiMovie(movie *domain.Movie) api.Movie {
	if movie == nil {
		return api.Movie{}
	}

	return api.Movie{
		Id:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		ReleaseDate: openapi_types.Date{Time: movie.ReleaseDate},
		Duration:    movie.Duration,
	}
}
