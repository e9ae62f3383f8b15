package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/seat-booking/api"
	"github.com/metinatakli/seat-booking/internal/domain"
)

func (app *Application) RegisterUser(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.RegisterUserJSONRequestBody

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

	user := domain.User{
		Username: input.Username,
		Email:    input.Email,
	}

	err = user.Password.Set(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.userRepo.Create(r.Context(), &user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			logger.Warn("registration attempt for existing username")
			app.badRequestResponse(w, r, fmt.Errorf("invalid input data"))
		default:
			logger.Error("failed to create user", "error", err)
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toUserResponse(&user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) Login(w http.ResponseWriter, r *http.Request) {
	if app.sessionUserId(r) != 0 {
		resp := api.AlreadyLoggedInResponse{
			Message: "You are already logged in",
		}

		err := app.writeJSON(w, http.StatusOK, resp, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	var input api.LoginJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.contextGetLogger(r).Warn("login validation failed")
		app.invalidCredentialsResponse(w, r)
		return
	}

	user, err := app.authenticate(r, input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, errInvalidCredentials):
			app.invalidCredentialsResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.startSession(r, user)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) Logout(w http.ResponseWriter, r *http.Request) {
	err := app.sessionManager.Destroy(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	user, err := app.userRepo.GetById(r.Context(), userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.contextGetLogger(r).Error("User ID in session but not found in DB", "userId", userId)
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toUserResponse(user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

var errInvalidCredentials = errors.New("invalid credentials")

// authenticate returns errInvalidCredentials for both unknown users and wrong
// passwords.
func (app *Application) authenticate(r *http.Request, username, password string) (*domain.User, error) {
	logger := app.contextGetLogger(r)

	user, err := app.userRepo.GetByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			logger.Warn("login attempt for non-existent user")
			return nil, errInvalidCredentials
		}

		logger.Error("failed to get user during login", "error", err)
		return nil, err
	}

	match, err := user.Password.Matches(password)
	if err != nil {
		return nil, err
	}

	if !match {
		logger.Warn("login failed due to incorrect password", "user_id", user.ID)
		return nil, errInvalidCredentials
	}

	return user, nil
}

func (app *Application) startSession(r *http.Request, user *domain.User) error {
	err := app.sessionManager.RenewToken(r.Context())
	if err != nil {
		return err
	}

	app.sessionManager.Put(r.Context(), SessionKeyUserId.String(), user.ID)
	app.contextGetLogger(r).Info("user logged in", "user_id", user.ID)

	return nil
}

func toUserResponse(user *domain.User) api.UserResponse {
	return api.UserResponse{
		Id:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
