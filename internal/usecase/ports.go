package usecase

import "context"

// Crypto collaborators. Implementations live in infrastructure/cryptography.

type Hasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
}

// HashComparer reports a mismatch as false with a nil error.
type HashComparer interface {
	Compare(ctx context.Context, plaintext, hash string) (bool, error)
}

type Encrypter interface {
	Encrypt(ctx context.Context, accountID string) (string, error)
}

// Decrypter returns "" with a nil error when the token fails verification.
type Decrypter interface {
	Decrypt(ctx context.Context, token string) (string, error)
}
