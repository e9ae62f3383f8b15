package app

import (
	"context"
	"log/slog"
	"net/http"
)

type sessionKey string

const (
	SessionKeyUserId = sessionKey("userID")
	SessionKeyFlash  = sessionKey("flash")
)

func (s sessionKey) String() string {
	return string(s)
}

type contextKey string

const loggerContextKey = contextKey("logger")

func (app *Application) contextGetUserId(r *http.Request) int {
	userId, ok := r.Context().Value(SessionKeyUserId).(int)
	if !ok {
		panic("missing user id from context")
	}

	return userId
}

// sessionUserId returns the logged in user, or 0 for anonymous callers.
func (app *Application) sessionUserId(r *http.Request) int {
	return app.sessionManager.GetInt(r.Context(), SessionKeyUserId.String())
}

func (app *Application) contextSetLogger(r *http.Request, logger *slog.Logger) *http.Request {
	ctx := context.WithValue(r.Context(), loggerContextKey, logger)
	return r.WithContext(ctx)
}

func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger, ok := r.Context().Value(loggerContextKey).(*slog.Logger)
	if !ok {
		return app.logger
	}

	return logger
}
