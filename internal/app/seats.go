package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/seat-booking/api"
	"github.com/metinatakli/seat-booking/internal/domain"
)

func (app *Application) GetSeats(w http.ResponseWriter, r *http.Request, params api.GetSeatsParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := domain.SeatFilters{MovieID: params.Movie}
	if params.Status != nil {
		filters.Status = (*domain.SeatStatus)(params.Status)
	}

	app.writeSeats(w, r, filters)
}

func (app *Application) GetAvailableSeats(w http.ResponseWriter, r *http.Request) {
	status := domain.SeatAvailable

	app.writeSeats(w, r, domain.SeatFilters{Status: &status})
}

func (app *Application) writeSeats(w http.ResponseWriter, r *http.Request, filters domain.SeatFilters) {
	seats, err := app.seatRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.SeatListResponse{Seats: toApiSeats(seats)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetSeatById(w http.ResponseWriter, r *http.Request, seatId int) {
	seat, err := app.seatRepo.GetById(r.Context(), seatId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiSeat(seat), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// CreateSeat adds an available seat, either to a movie or to the shared pool
// when no movie is given.
func (app *Application) CreateSeat(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateSeatJSONRequestBody

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

	seat := domain.NewSeat(input.SeatNumber, input.Movie)

	err = app.seatRepo.Create(r.Context(), seat)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateSeat):
			logger.Warn("seat creation rejected: duplicate seat number", "seat_number", input.SeatNumber)
			app.badRequestResponse(w, r, errors.New(ErrSeatNumberDuplicate))
		case errors.Is(err, domain.ErrRecordNotFound):
			app.badRequestResponse(w, r, fmt.Errorf("movie %d does not exist", *input.Movie))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiSeat(seat), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// BookSeat books the seat for the caller. The movie comes from the request
// body, or from the seat itself when it is already assigned to one.
func (app *Application) BookSeat(w http.ResponseWriter, r *http.Request, seatId int) {
	var input api.BookSeatJSONRequestBody

	err := app.readOptionalJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	var movieId int

	if input.Movie != nil {
		movieId = *input.Movie
	} else {
		seat, err := app.seatRepo.GetById(r.Context(), seatId)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrRecordNotFound):
				app.notFoundResponse(w, r)
			default:
				app.serverErrorResponse(w, r, err)
			}

			return
		}

		if seat.MovieID == nil {
			app.badRequestResponse(w, r, errors.New(ErrSeatMovieRequired))
			return
		}

		movieId = *seat.MovieID
	}

	_, err = app.attemptBooking(r, movieId, seatId, app.contextGetUserId(r))
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	seat, err := app.seatRepo.GetById(r.Context(), seatId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiSeat(seat), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiSeats(seats []*domain.Seat) []api.Seat {
	resp := make([]api.Seat, len(seats))

	for i, seat := range seats {
		resp[i] = toApiSeat(seat)
	}

	return resp
}

func toApiSeat(seat *domain.Seat) api.Seat {
	resp := api.Seat{
		Id:         seat.ID,
		SeatNumber: seat.SeatNumber,
		Status:     api.SeatStatus(seat.Status),
		Movie:      seat.MovieID,
	}

	if seat.MovieID != nil && seat.MovieTitle != "" {
		title := seat.MovieTitle
		resp.MovieTitle = &title
	}

	return resp
}
