package repository

import (
	"context"

	"github.com/ErlanBelekov/superpoll-api/internal/domain"
)

// Each capability gets its own interface so a use-case only depends on
// the calls it actually makes. postgres.AccountRepository satisfies all four.

type AddAccountRepository interface {
	Add(ctx context.Context, params domain.AddAccountParams) (*domain.Account, error)
}

// LoadAccountByEmailRepository returns nil, nil when no account has the email.
type LoadAccountByEmailRepository interface {
	LoadByEmail(ctx context.Context, email string) (*domain.Account, error)
}

// LoadAccountByTokenRepository matches on the access token and on role:
// an account satisfies role when its own role equals it or is admin.
// An empty role matches accounts without a role (and admins).
type LoadAccountByTokenRepository interface {
	LoadByToken(ctx context.Context, accessToken, role string) (*domain.Account, error)
}

type UpdateAccessTokenRepository interface {
	UpdateAccessToken(ctx context.Context, accountID, accessToken string) error
}
