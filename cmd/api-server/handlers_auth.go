package main

import (
	"net/http"

	"github.com/protomem/club-manager/internal/request"
	"github.com/protomem/club-manager/internal/response"
	"github.com/protomem/club-manager/internal/service"
	"github.com/protomem/club-manager/internal/token"
	"github.com/protomem/club-manager/internal/validator"
)

func (app *application) handleStatus(w http.ResponseWriter, r *http.Request) {
	if err := response.JSON(w, http.StatusOK, response.JSONObject{"status": "OK"}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestSignUp struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    *string `json:"email"`
}

func (app *application) handleSignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input requestSignUp
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateRequestSignUp(&v, input)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	id, err := app.auth.SignUp(ctx, service.SignUpDTO{
		Username: input.Username,
		Password: input.Password,
		Email:    input.Email,
	})
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusCreated, response.JSONObject{
		"message": "user created successfully",
		"id":      id,
	})
	if err != nil {
		app.serverError(w, r, err)
	}
}

type responseTokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

func newResponseTokenPair(pair token.Pair) responseTokenPair {
	return responseTokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "bearer",
	}
}

// handleSignIn consumes an OAuth2-style password form and responds with a
// fresh token pair.
func (app *application) handleSignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var (
		username  = r.PostForm.Get("username")
		plaintext = r.PostForm.Get("password")
	)

	pair, err := app.auth.SignIn(ctx, username, plaintext)
	if err != nil {
		app.metrics.LoginAttempts.WithLabelValues("failed").Inc()
		app.apiError(w, r, err)
		return
	}

	app.metrics.LoginAttempts.WithLabelValues("ok").Inc()

	if err := response.JSON(w, http.StatusOK, newResponseTokenPair(pair)); err != nil {
		app.serverError(w, r, err)
	}
}

// handleRefresh exchanges the bearer refresh token for a new pair. The old
// refresh token is superseded and can not be replayed.
func (app *application) handleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	refreshToken, ok := bearerToken(r)
	if !ok {
		app.unauthorized(w, r, "could not validate credentials")
		return
	}

	pair, err := app.auth.Refresh(ctx, refreshToken)
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, newResponseTokenPair(pair)); err != nil {
		app.serverError(w, r, err)
	}
}
