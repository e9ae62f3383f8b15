package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/seat-booking/api"
	"go.opentelemetry.io/otel/trace"
)

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// requestLogger attaches a logger carrying the request and trace ids to the
// request context.
func (app *Application) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := app.logger.With("request_id", middleware.GetReqID(r.Context()))

		spanCtx := trace.SpanContextFromContext(r.Context())
		if spanCtx.HasTraceID() {
			logger = logger.With("trace_id", spanCtx.TraceID().String())
		}

		next.ServeHTTP(w, app.contextSetLogger(r, logger))
	})
}

func (app *Application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userId := app.sessionUserId(r)
		if userId == 0 {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), SessionKeyUserId, userId)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, app.contextSetLogger(r, app.contextGetLogger(r).With("user_id", userId)))
	})
}

// requireLogin is the form flow counterpart of requireAuthentication.
func (app *Application) requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userId := app.sessionUserId(r)
		if userId == 0 {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), SessionKeyUserId, userId)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// validateRequest checks parameters and bodies against the OpenAPI document.
// Routes the document does not describe are passed through untouched.
func (app *Application) validateRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, pathParams, err := app.openapiRouter.FindRoute(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    r,
			PathParams: pathParams,
			Route:      route,
			Options: &openapi3filter.Options{
				AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
				MultiError:         false,
			},
		}

		err = openapi3filter.ValidateRequest(r.Context(), input)
		if err != nil {
			app.badRequestResponse(w, r, openAPIError(err))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func openAPIError(err error) error {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Parameter != nil {
			return fmt.Errorf("invalid %s parameter", reqErr.Parameter.Name)
		}

		return errors.New("request body does not match the expected schema")
	}

	return err
}

func mustOpenAPIRouter() routers.Router {
	doc, err := api.GetSwagger()
	if err != nil {
		panic(err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		panic(err)
	}

	return router
}
