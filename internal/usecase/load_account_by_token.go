package usecase

import (
	"context"

	"github.com/ErlanBelekov/superpoll-api/internal/domain"
	"github.com/ErlanBelekov/superpoll-api/internal/repository"
)

type LoadAccountByTokenUsecase struct {
	decrypter   Decrypter
	loadByToken repository.LoadAccountByTokenRepository
}

func NewLoadAccountByTokenUsecase(decrypter Decrypter, loadByToken repository.LoadAccountByTokenRepository) *LoadAccountByTokenUsecase {
	return &LoadAccountByTokenUsecase{decrypter: decrypter, loadByToken: loadByToken}
}

// Execute resolves a token to its account. Storage is not queried when the
// token does not verify.
func (u *LoadAccountByTokenUsecase) Execute(ctx context.Context, accessToken, role string) (*domain.Account, error) {
	subject, err := u.decrypter.Decrypt(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if subject == "" {
		return nil, nil
	}

	return u.loadByToken.LoadByToken(ctx, accessToken, role)
}
