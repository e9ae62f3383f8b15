package app

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/metinatakli/seat-booking/internal/domain"
	"github.com/metinatakli/seat-booking/internal/metrics"
	"github.com/metinatakli/seat-booking/ui"
)

type templateData struct {
	Flash           string
	Error           string
	IsAuthenticated bool
	Username        string
	Movies          []*domain.Movie
	Movie           *domain.Movie
	Seats           []*domain.Seat
	Bookings        []*domain.Booking
}

var functions = template.FuncMap{
	"humanDate": func(t time.Time) string {
		return t.Format("02 Jan 2006")
	},
	"humanDateTime": func(t time.Time) string {
		return t.UTC().Format("02 Jan 2006 at 15:04")
	},
}

func mustTemplateCache() map[string]*template.Template {
	cache, err := newTemplateCache()
	if err != nil {
		panic(err)
	}

	return cache
}

func newTemplateCache() (map[string]*template.Template, error) {
	cache := map[string]*template.Template{}

	pages, err := fs.Glob(ui.Files, "html/pages/*.tmpl")
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		name := filepath.Base(page)

		ts, err := template.New(name).Funcs(functions).ParseFS(ui.Files, "html/base.tmpl", page)
		if err != nil {
			return nil, err
		}

		cache[name] = ts
	}

	return cache, nil
}

func (app *Application) newTemplateData(r *http.Request) templateData {
	return templateData{
		Flash:           app.sessionManager.PopString(r.Context(), SessionKeyFlash.String()),
		IsAuthenticated: app.sessionUserId(r) != 0,
	}
}

// render writes the page to a buffer first so template errors still produce
// a clean 500 response.
func (app *Application) render(w http.ResponseWriter, r *http.Request, status int, page string, data templateData) {
	ts, ok := app.templateCache[page]
	if !ok {
		app.serverErrorPage(w, r, fmt.Errorf("the template %s does not exist", page))
		return
	}

	buf := new(bytes.Buffer)

	err := ts.ExecuteTemplate(buf, "base", data)
	if err != nil {
		app.serverErrorPage(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (app *Application) serverErrorPage(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (app *Application) homePage(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorPage(w, r, err)
		return
	}

	data := app.newTemplateData(r)
	data.Movies = movies

	app.render(w, r, http.StatusOK, "home.tmpl", data)
}

func (app *Application) bookSeatPage(w http.ResponseWriter, r *http.Request) {
	data, ok := app.bookingPageData(w, r)
	if !ok {
		return
	}

	app.render(w, r, http.StatusOK, "book.tmpl", data)
}

func (app *Application) bookSeatPagePost(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	movieId, err := app.readIDParam(r, "movieId")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	seatId, err := strconv.Atoi(r.PostForm.Get("seat_id"))
	if err != nil || seatId < 1 {
		app.rerenderBookingPage(w, r, "Please select a seat")
		return
	}

	booking, err := app.attemptBooking(r, movieId, seatId, app.contextGetUserId(r))
	if err != nil {
		// a missing movie or seat is a 404 like the page itself
		if errors.Is(err, domain.ErrRecordNotFound) {
			http.NotFound(w, r)
			return
		}

		if bookingOutcome(err) == metrics.OutcomeError {
			app.serverErrorPage(w, r, err)
			return
		}

		app.rerenderBookingPage(w, r, bookingErrorMessage(err))
		return
	}

	flash := fmt.Sprintf("Seat %s booked for %s.", booking.SeatNumber, booking.MovieTitle)
	app.sessionManager.Put(r.Context(), SessionKeyFlash.String(), flash)

	http.Redirect(w, r, "/history", http.StatusSeeOther)
}

func (app *Application) rerenderBookingPage(w http.ResponseWriter, r *http.Request, message string) {
	data, ok := app.bookingPageData(w, r)
	if !ok {
		return
	}

	data.Error = message

	app.render(w, r, http.StatusUnprocessableEntity, "book.tmpl", data)
}

// bookingPageData loads the movie and the seats it can be booked on: its own
// seats and the unassigned pool.
func (app *Application) bookingPageData(w http.ResponseWriter, r *http.Request) (templateData, bool) {
	movieId, err := app.readIDParam(r, "movieId")
	if err != nil {
		http.NotFound(w, r)
		return templateData{}, false
	}

	movie, err := app.movieRepo.GetById(r.Context(), movieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			http.NotFound(w, r)
		default:
			app.serverErrorPage(w, r, err)
		}

		return templateData{}, false
	}

	seats, err := app.seatRepo.GetBookableForMovie(r.Context(), movieId)
	if err != nil {
		app.serverErrorPage(w, r, err)
		return templateData{}, false
	}

	data := app.newTemplateData(r)
	data.Movie = movie
	data.Seats = seats

	return data, true
}

func (app *Application) historyPage(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	bookings, err := app.bookingRepo.GetAll(r.Context(), domain.BookingFilters{UserID: &userId})
	if err != nil {
		app.serverErrorPage(w, r, err)
		return
	}

	data := app.newTemplateData(r)
	data.Bookings = bookings

	app.render(w, r, http.StatusOK, "history.tmpl", data)
}

func (app *Application) loginPage(w http.ResponseWriter, r *http.Request) {
	if app.sessionUserId(r) != 0 {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	app.render(w, r, http.StatusOK, "login.tmpl", app.newTemplateData(r))
}

func (app *Application) loginPagePost(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	username := r.PostForm.Get("username")

	user, err := app.authenticate(r, username, r.PostForm.Get("password"))
	if err != nil {
		if !errors.Is(err, errInvalidCredentials) {
			app.serverErrorPage(w, r, err)
			return
		}

		data := app.newTemplateData(r)
		data.Username = username
		data.Error = "Invalid username or password"

		app.render(w, r, http.StatusUnprocessableEntity, "login.tmpl", data)
		return
	}

	err = app.startSession(r, user)
	if err != nil {
		app.serverErrorPage(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *Application) logoutPagePost(w http.ResponseWriter, r *http.Request) {
	err := app.sessionManager.Destroy(r.Context())
	if err != nil {
		app.serverErrorPage(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
