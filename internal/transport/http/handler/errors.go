package handler

import "errors"

const (
	errInternalServer = "Internal server error"
	errUnauthorized   = "Unauthorized"
	errEmailInUse     = "Received email is already in use"
	errMalformedBody  = "Malformed JSON body"
)

// ErrAccessDenied is the body of every 403 produced by the auth gate.
var ErrAccessDenied = errors.New("access denied")
