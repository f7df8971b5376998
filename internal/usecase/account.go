package usecase

import (
	"context"

	"github.com/ErlanBelekov/superpoll-api/internal/domain"
	"github.com/ErlanBelekov/superpoll-api/internal/repository"
)

type AddAccountUsecase struct {
	hasher      Hasher
	loadByEmail repository.LoadAccountByEmailRepository
	addAccount  repository.AddAccountRepository
}

func NewAddAccountUsecase(hasher Hasher, loadByEmail repository.LoadAccountByEmailRepository, addAccount repository.AddAccountRepository) *AddAccountUsecase {
	return &AddAccountUsecase{
		hasher:      hasher,
		loadByEmail: loadByEmail,
		addAccount:  addAccount,
	}
}

// Execute hashes the password, looks the email up and persists the account.
// The lookup result is not acted on: duplicates are rejected by the
// unique index on accounts.email, which surfaces as domain.ErrEmailInUse.
func (u *AddAccountUsecase) Execute(ctx context.Context, params domain.AddAccountParams) (*domain.Account, error) {
	hash, err := u.hasher.Hash(ctx, params.Password)
	if err != nil {
		return nil, err
	}

	if _, err := u.loadByEmail.LoadByEmail(ctx, params.Email); err != nil {
		return nil, err
	}

	return u.addAccount.Add(ctx, domain.AddAccountParams{
		Name:     params.Name,
		Email:    params.Email,
		Password: hash,
	})
}
