package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/metinatakli/seat-booking/api"
	"github.com/metinatakli/seat-booking/internal/domain"
	"github.com/metinatakli/seat-booking/internal/events"
	"github.com/metinatakli/seat-booking/internal/metrics"
	"github.com/metinatakli/seat-booking/internal/ticket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const bookingConfirmationTemplate = "booking_confirmation.tmpl"

func (app *Application) GetBookings(w http.ResponseWriter, r *http.Request, params api.GetBookingsParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	bookings, err := app.bookingRepo.GetAll(r.Context(), domain.BookingFilters{UserID: params.User})
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookingListResponse{
		Bookings: toApiBookings(bookings),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetMyBookings lists the caller's bookings. Unlike the public listing it
// carries the ticket references.
func (app *Application) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	bookings, err := app.bookingRepo.GetAll(r.Context(), domain.BookingFilters{UserID: &userId})
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UserBookingListResponse{
		Bookings: toApiUserBookings(bookings),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingById(w http.ResponseWriter, r *http.Request, bookingId int) {
	booking, ok := app.loadBooking(w, r, bookingId)
	if !ok {
		return
	}

	err := app.writeJSON(w, http.StatusOK, toApiBooking(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var input api.CreateBookingJSONRequestBody

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

	booking, err := app.attemptBooking(r, input.Movie, input.Seat, app.contextGetUserId(r))
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/api/bookings/%d", booking.ID))

	err = app.writeJSON(w, http.StatusCreated, toApiUserBooking(booking), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetBookingTicket renders the PDF ticket of a booking. Bookings of other
// users are reported as missing.
func (app *Application) GetBookingTicket(w http.ResponseWriter, r *http.Request, bookingId int) {
	booking, ok := app.loadBooking(w, r, bookingId)
	if !ok {
		return
	}

	if booking.UserID != app.contextGetUserId(r) {
		app.contextGetLogger(r).Warn("ticket requested for booking of another user", "booking_id", booking.ID)
		app.notFoundResponse(w, r)
		return
	}

	pdf, err := ticket.Render(booking)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="ticket-%s.pdf"`, booking.Reference))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

func (app *Application) loadBooking(w http.ResponseWriter, r *http.Request, bookingId int) (*domain.Booking, bool) {
	booking, err := app.bookingRepo.GetById(r.Context(), bookingId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return nil, false
	}

	return booking, true
}

// attemptBooking runs the booking engine and records the outcome. Follow-up
// notifications are sent in the background once the booking is committed.
func (app *Application) attemptBooking(r *http.Request, movieId, seatId, userId int) (*domain.Booking, error) {
	logger := app.contextGetLogger(r).With("movie_id", movieId, "seat_id", seatId, "user_id", userId)

	booking, err := app.bookingEngine.AttemptBooking(r.Context(), movieId, seatId, userId)

	outcome := bookingOutcome(err)
	app.metrics.BookingsTotal.WithLabelValues(outcome).Inc()
	app.bookingCounter.Add(r.Context(), 1, metric.WithAttributes(attribute.String("outcome", outcome)))

	switch outcome {
	case metrics.OutcomeSuccess:
		logger.Info("seat booked", "booking_id", booking.ID)
	case metrics.OutcomeError:
		logger.Error("booking attempt failed", "error", err)
	default:
		logger.Warn("booking attempt rejected", "outcome", outcome, "error", err)
	}

	if err != nil {
		return nil, err
	}

	app.notifyBookingCreated(r.Context(), booking)

	return booking, nil
}

func (app *Application) notifyBookingCreated(ctx context.Context, booking *domain.Booking) {
	ctx = context.WithoutCancel(ctx)
	logger := app.logger.With("booking_id", booking.ID)

	app.background(func() {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		err := app.publisher.PublishBookingCreated(ctx, events.NewBookingCreated(booking))
		if err != nil {
			logger.Error("failed to publish booking event", "error", err)
		}

		data := map[string]any{
			"username":    booking.Username,
			"movieTitle":  booking.MovieTitle,
			"seatNumber":  booking.SeatNumber,
			"reference":   booking.Reference.String(),
			"bookingDate": booking.BookingDate.UTC().Format("2006-01-02 15:04 MST"),
		}

		err = app.mailer.Send(booking.UserEmail, bookingConfirmationTemplate, data)
		if err != nil {
			logger.Error("failed to send booking confirmation email", "error", err)
		}
	})
}

func (app *Application) bookingErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrSeatUnavailable):
		app.badRequestResponse(w, r, errors.New(ErrSeatAlreadyBooked))
	case errors.Is(err, domain.ErrSeatWrongMovie):
		app.badRequestResponse(w, r, errors.New(ErrSeatNotForMovie))
	case errors.Is(err, domain.ErrUserRequired):
		app.unauthorizedAccessResponse(w, r)
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

// bookingErrorMessage is the form flow counterpart of bookingErrorResponse.
func bookingErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrSeatUnavailable):
		return ErrSeatAlreadyBooked
	case errors.Is(err, domain.ErrSeatWrongMovie):
		return ErrSeatNotForMovie
	default:
		return ErrInternalServer
	}
}

func bookingOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, domain.ErrBookingConflict):
		return metrics.OutcomeConflict
	case errors.Is(err, domain.ErrSeatUnavailable):
		return metrics.OutcomeUnavailable
	case errors.Is(err, domain.ErrSeatWrongMovie):
		return metrics.OutcomeWrongMovie
	case errors.Is(err, domain.ErrRecordNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}

func toApiBookings(bookings []*domain.Booking) []api.Booking {
	resp := make([]api.Booking, len(bookings))

	for i, booking := range bookings {
		resp[i] = toApiBooking(booking)
	}

	return resp
}

func toApiBooking(booking *domain.Booking) api.Booking {
	return api.Booking{
		Id:          booking.ID,
		Movie:       booking.MovieID,
		MovieTitle:  booking.MovieTitle,
		Seat:        booking.SeatID,
		SeatNumber:  booking.SeatNumber,
		User:        booking.UserID,
		Username:    booking.Username,
		BookingDate: booking.BookingDate,
	}
}

func toApiUserBookings(bookings []*domain.Booking) []api.UserBooking {
	resp := make([]api.UserBooking, len(bookings))

	for i, booking := range bookings {
		resp[i] = toApiUserBooking(booking)
	}

	return resp
}

func toApiUserBooking(booking *domain.Booking) api.UserBooking {
	return api.UserBooking{
		Id:          booking.ID,
		Reference:   booking.Reference,
		Movie:       booking.MovieID,
		MovieTitle:  booking.MovieTitle,
		Seat:        booking.SeatID,
		SeatNumber:  booking.SeatNumber,
		User:        booking.UserID,
		Username:    booking.Username,
		BookingDate: booking.BookingDate,
	}
}
