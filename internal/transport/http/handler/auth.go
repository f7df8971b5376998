package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ErlanBelekov/superpoll-api/internal/domain"
	"github.com/ErlanBelekov/superpoll-api/internal/validation"
)

// accountAdder and authenticator are the use-case subsets the auth
// controllers need. Defined here so tests can inject fakes.
type accountAdder interface {
	Execute(ctx context.Context, params domain.AddAccountParams) (*domain.Account, error)
}

type authenticator interface {
	Execute(ctx context.Context, creds domain.AuthCredentials) (string, error)
}

type accessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// SignUpHandler handles POST /api/sign-up. A successful sign-up also signs
// the new account in and returns its access token.
type SignUpHandler struct {
	validation   validation.Validation
	addAccount   accountAdder
	authenticate authenticator
	logger       *slog.Logger
}

func NewSignUpHandler(v validation.Validation, addAccount accountAdder, authenticate authenticator, logger *slog.Logger) *SignUpHandler {
	return &SignUpHandler{
		validation:   v,
		addAccount:   addAccount,
		authenticate: authenticate,
		logger:       logger.With("component", "sign_up_handler"),
	}
}

func (h *SignUpHandler) Handle(ctx context.Context, req Request) Response {
	if err := h.validation.Validate(req.Body); err != nil {
		return validationFailure(err)
	}

	fields, err := textFields(req.Body, "name", "email", "password")
	if err != nil {
		return BadRequest(err)
	}
	name, email, password := fields[0], fields[1], fields[2]

	_, err = h.addAccount.Execute(ctx, domain.AddAccountParams{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailInUse) {
			return Forbidden(errors.New(errEmailInUse))
		}
		h.logger.ErrorContext(ctx, "add account", "error", err)
		return ServerError(err)
	}

	token, err := h.authenticate.Execute(ctx, domain.AuthCredentials{Email: email, Password: password})
	if err != nil {
		h.logger.ErrorContext(ctx, "authenticate new account", "error", err)
		return ServerError(err)
	}
	if token == "" {
		return Unauthorized()
	}

	return OK(accessTokenResponse{AccessToken: token})
}

// SignInHandler handles POST /api/sign-in.
type SignInHandler struct {
	validation   validation.Validation
	authenticate authenticator
	logger       *slog.Logger
}

func NewSignInHandler(v validation.Validation, authenticate authenticator, logger *slog.Logger) *SignInHandler {
	return &SignInHandler{
		validation:   v,
		authenticate: authenticate,
		logger:       logger.With("component", "sign_in_handler"),
	}
}

func (h *SignInHandler) Handle(ctx context.Context, req Request) Response {
	if err := h.validation.Validate(req.Body); err != nil {
		return validationFailure(err)
	}

	fields, err := textFields(req.Body, "email", "password")
	if err != nil {
		return BadRequest(err)
	}

	token, err := h.authenticate.Execute(ctx, domain.AuthCredentials{
		Email:    fields[0],
		Password: fields[1],
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "authenticate", "error", err)
		return ServerError(err)
	}
	if token == "" {
		return Unauthorized()
	}

	return OK(accessTokenResponse{AccessToken: token})
}
