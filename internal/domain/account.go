package domain

import (
	"errors"
	"time"
)

// RoleAdmin satisfies every role requirement.
const RoleAdmin = "admin"

var ErrEmailInUse = errors.New("email already in use")

type Account struct {
	ID          string
	Name        string
	Email       string
	Password    string // bcrypt hash once persisted
	AccessToken *string
	Role        *string
	CreatedAt   time.Time
}

// AddAccountParams is the plaintext sign-up payload handed to the AddAccount use-case.
type AddAccountParams struct {
	Name     string
	Email    string
	Password string
}

// AuthCredentials only lives for the duration of an Authenticate call.
type AuthCredentials struct {
	Email    string
	Password string
}
