package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/ErlanBelekov/superpoll-api/internal/validation"
)

// Request is the transport-neutral view of an inbound call.
type Request struct {
	Body      map[string]any
	Headers   http.Header
	AccountID string
}

// Response is what a Controller hands back. Err and Stack are only set
// for server errors and never reach the client.
type Response struct {
	StatusCode int
	Body       any
	Err        error
	Stack      string
}

// Controller turns one Request into one Response. Implementations never
// return Go errors: every failure is already mapped to a status code.
type Controller interface {
	Handle(ctx context.Context, req Request) Response
}

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func OK(body any) Response {
	return Response{StatusCode: http.StatusOK, Body: body}
}

func NoContent() Response {
	return Response{StatusCode: http.StatusNoContent}
}

func BadRequest(err error) Response {
	body := errorBody{Error: err.Error()}
	var (
		missing *validation.MissingFieldError
		invalid *validation.InvalidFieldError
	)
	switch {
	case errors.As(err, &missing):
		body.Field = missing.Field
	case errors.As(err, &invalid):
		body.Field = invalid.Field
	}
	return Response{StatusCode: http.StatusBadRequest, Body: body}
}

func Unauthorized() Response {
	return Response{StatusCode: http.StatusUnauthorized, Body: errorBody{Error: errUnauthorized}}
}

func Forbidden(err error) Response {
	return Response{StatusCode: http.StatusForbidden, Body: errorBody{Error: err.Error()}}
}

// ServerError hides err from the client and keeps its text plus the
// current goroutine stack for the error log.
func ServerError(err error) Response {
	return Response{
		StatusCode: http.StatusInternalServerError,
		Body:       errorBody{Error: errInternalServer},
		Err:        err,
		Stack:      fmt.Sprintf("%v\n%s", err, debug.Stack()),
	}
}

// validationFailure maps a validation result onto a response. Errors that
// are not field errors came from a collaborator (e.g. the e-mail checker)
// and become 500s.
func validationFailure(err error) Response {
	var (
		missing *validation.MissingFieldError
		invalid *validation.InvalidFieldError
	)
	if errors.As(err, &missing) || errors.As(err, &invalid) {
		return BadRequest(err)
	}
	return ServerError(err)
}

// textFields returns the named body values in order. A value that is not a
// JSON string is reported as an invalid field.
func textFields(body map[string]any, keys ...string) ([]string, error) {
	values := make([]string, len(keys))
	for i, key := range keys {
		v, ok := body[key].(string)
		if !ok {
			return nil, &validation.InvalidFieldError{Field: key}
		}
		values[i] = v
	}
	return values, nil
}
