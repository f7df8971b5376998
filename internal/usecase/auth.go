package usecase

import (
	"context"

	"github.com/ErlanBelekov/superpoll-api/internal/domain"
	"github.com/ErlanBelekov/superpoll-api/internal/metrics"
	"github.com/ErlanBelekov/superpoll-api/internal/repository"
)

type AuthenticationUsecase struct {
	loadByEmail       repository.LoadAccountByEmailRepository
	updateAccessToken repository.UpdateAccessTokenRepository
	hashComparer      HashComparer
	encrypter         Encrypter
}

func NewAuthenticationUsecase(
	loadByEmail repository.LoadAccountByEmailRepository,
	updateAccessToken repository.UpdateAccessTokenRepository,
	hashComparer HashComparer,
	encrypter Encrypter,
) *AuthenticationUsecase {
	return &AuthenticationUsecase{
		loadByEmail:       loadByEmail,
		updateAccessToken: updateAccessToken,
		hashComparer:      hashComparer,
		encrypter:         encrypter,
	}
}

// Execute returns a fresh access token for valid credentials and stores it
// on the account. Unknown email or wrong password yields "" and a nil error.
func (u *AuthenticationUsecase) Execute(ctx context.Context, creds domain.AuthCredentials) (string, error) {
	account, err := u.loadByEmail.LoadByEmail(ctx, creds.Email)
	if err != nil {
		return "", err
	}
	if account == nil {
		metrics.AuthAttemptsTotal.WithLabelValues("unknown_email").Inc()
		return "", nil
	}

	ok, err := u.hashComparer.Compare(ctx, creds.Password, account.Password)
	if err != nil {
		return "", err
	}
	if !ok {
		metrics.AuthAttemptsTotal.WithLabelValues("wrong_password").Inc()
		return "", nil
	}

	token, err := u.encrypter.Encrypt(ctx, account.ID)
	if err != nil {
		return "", err
	}

	if err := u.updateAccessToken.UpdateAccessToken(ctx, account.ID, token); err != nil {
		return "", err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("success").Inc()
	return token, nil
}
