package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ErlanBelekov/superpoll-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const accountColumns = `id, name, email, password, access_token, role, created_at`

type AccountRepository struct {
	db DB
}

func NewAccountRepository(db DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Add(ctx context.Context, params domain.AddAccountParams) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING ` + accountColumns

	row := r.db.QueryRow(ctx, query, params.Name, params.Email, params.Password)
	account, err := scanAccount(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrEmailInUse
		}
		return nil, fmt.Errorf("add account: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) LoadByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`

	account, err := scanAccount(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load account by email: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) LoadByToken(ctx context.Context, accessToken, role string) (*domain.Account, error) {
	// A NULL $2 matches accounts without a role; admins match any role.
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE access_token = $1
		  AND (role IS NOT DISTINCT FROM $2 OR role = 'admin')`

	var roleArg any
	if role != "" {
		roleArg = role
	}

	account, err := scanAccount(r.db.QueryRow(ctx, query, accessToken, roleArg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load account by token: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) UpdateAccessToken(ctx context.Context, accountID, accessToken string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE accounts SET access_token = $2 WHERE id = $1`,
		accountID, accessToken,
	)
	if err != nil {
		return fmt.Errorf("update access token: %w", err)
	}
	return nil
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Password, &a.AccessToken, &a.Role, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
