package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/seat-booking/api"
	appmiddleware "github.com/metinatakli/seat-booking/internal/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(appmiddleware.Prometheus(app.metrics))
	r.Use(app.requestLogger)
	r.Use(app.sessionManager.LoadAndSave)

	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(app.validateRequest)

		api.HandlerWithOptions(app, api.ChiServerOptions{
			BaseRouter:       r,
			ErrorHandlerFunc: app.invalidParamResponse,
		})

		// operations on behalf of the caller replace their generated routes
		// with session-checked ones
		siw := &api.ServerInterfaceWrapper{
			Handler:          app,
			ErrorHandlerFunc: app.invalidParamResponse,
		}

		r.With(app.requireAuthentication).Post("/api/seats/{seatId}/book", siw.BookSeat)
		r.With(app.requireAuthentication).Post("/api/bookings", siw.CreateBooking)
		r.With(app.requireAuthentication).Get("/api/bookings/my_bookings", siw.GetMyBookings)
		r.With(app.requireAuthentication).Get("/api/bookings/{bookingId}/ticket", siw.GetBookingTicket)
		r.With(app.requireAuthentication).Get("/api/users/me", siw.GetCurrentUser)
	})

	r.Group(func(r chi.Router) {
		r.Get("/", app.homePage)
		r.Get("/login", app.loginPage)
		r.Post("/login", app.loginPagePost)
		r.Post("/logout", app.logoutPagePost)

		r.With(app.requireLogin).Get("/book/{movieId}", app.bookSeatPage)
		r.With(app.requireLogin).Post("/book/{movieId}", app.bookSeatPagePost)
		r.With(app.requireLogin).Get("/history", app.historyPage)
	})

	return r
}

func (app *Application) GetOpenAPIDocument(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.Write(api.Document())
}
