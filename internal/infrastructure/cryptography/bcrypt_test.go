package cryptography_test

import (
	"context"
	"strings"
	"testing"

	"github.com/ErlanBelekov/superpoll-api/internal/infrastructure/cryptography"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashIsNotPlaintext(t *testing.T) {
	h := cryptography.NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash(context.Background(), "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "123" || !strings.HasPrefix(hash, "$2") {
		t.Errorf("hash = %q, want a bcrypt hash", hash)
	}
}

func TestBcryptHasher_Compare(t *testing.T) {
	ctx := context.Background()
	h := cryptography.NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash(ctx, "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := h.Compare(ctx, "123", hash)
	if err != nil || !ok {
		t.Errorf("Compare(match) = %v, %v; want true, nil", ok, err)
	}

	ok, err = h.Compare(ctx, "wrong", hash)
	if err != nil || ok {
		t.Errorf("Compare(mismatch) = %v, %v; want false, nil", ok, err)
	}
}

func TestBcryptHasher_CompareMalformedHash_ReturnsError(t *testing.T) {
	h := cryptography.NewBcryptHasher(bcrypt.MinCost)

	if _, err := h.Compare(context.Background(), "123", "not-a-hash"); err == nil {
		t.Fatal("expected error for malformed hash")
	}
}
