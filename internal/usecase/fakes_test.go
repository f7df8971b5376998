package usecase_test

import (
	"context"

	"github.com/ErlanBelekov/superpoll-api/internal/domain"
)

// ---- fakes ----

type fakeHasher struct {
	hash func(ctx context.Context, plaintext string) (string, error)
}

func (f *fakeHasher) Hash(ctx context.Context, plaintext string) (string, error) {
	return f.hash(ctx, plaintext)
}

type fakeHashComparer struct {
	calls   int
	compare func(ctx context.Context, plaintext, hash string) (bool, error)
}

func (f *fakeHashComparer) Compare(ctx context.Context, plaintext, hash string) (bool, error) {
	f.calls++
	return f.compare(ctx, plaintext, hash)
}

type fakeEncrypter struct {
	calls   int
	encrypt func(ctx context.Context, accountID string) (string, error)
}

func (f *fakeEncrypter) Encrypt(ctx context.Context, accountID string) (string, error) {
	f.calls++
	return f.encrypt(ctx, accountID)
}

type fakeDecrypter struct {
	decrypt func(ctx context.Context, token string) (string, error)
}

func (f *fakeDecrypter) Decrypt(ctx context.Context, token string) (string, error) {
	return f.decrypt(ctx, token)
}

type fakeAccountRepo struct {
	add               func(ctx context.Context, params domain.AddAccountParams) (*domain.Account, error)
	loadByEmail       func(ctx context.Context, email string) (*domain.Account, error)
	loadByToken       func(ctx context.Context, accessToken, role string) (*domain.Account, error)
	updateAccessToken func(ctx context.Context, accountID, accessToken string) error

	loadByEmailCalls int
	loadByTokenCalls int
	updateCalls      []updateCall
}

type updateCall struct {
	accountID string
	token     string
}

func (r *fakeAccountRepo) Add(ctx context.Context, params domain.AddAccountParams) (*domain.Account, error) {
	return r.add(ctx, params)
}

func (r *fakeAccountRepo) LoadByEmail(ctx context.Context, email string) (*domain.Account, error) {
	r.loadByEmailCalls++
	return r.loadByEmail(ctx, email)
}

func (r *fakeAccountRepo) LoadByToken(ctx context.Context, accessToken, role string) (*domain.Account, error) {
	r.loadByTokenCalls++
	return r.loadByToken(ctx, accessToken, role)
}

func (r *fakeAccountRepo) UpdateAccessToken(ctx context.Context, accountID, accessToken string) error {
	r.updateCalls = append(r.updateCalls, updateCall{accountID: accountID, token: accessToken})
	if r.updateAccessToken == nil {
		return nil
	}
	return r.updateAccessToken(ctx, accountID, accessToken)
}

type fakeSurveyRepo struct {
	add     func(ctx context.Context, params domain.AddSurveyParams) error
	loadAll func(ctx context.Context) ([]*domain.Survey, error)
}

func (r *fakeSurveyRepo) Add(ctx context.Context, params domain.AddSurveyParams) error {
	return r.add(ctx, params)
}

func (r *fakeSurveyRepo) LoadAll(ctx context.Context) ([]*domain.Survey, error) {
	return r.loadAll(ctx)
}
