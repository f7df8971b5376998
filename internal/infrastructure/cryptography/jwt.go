package cryptography

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTCodec signs account ids into HS256 tokens and verifies them back.
type JWTCodec struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewJWTCodec(key []byte, ttl time.Duration) *JWTCodec {
	return &JWTCodec{key: key, ttl: ttl, now: time.Now}
}

func (c *JWTCodec) Encrypt(_ context.Context, accountID string) (string, error) {
	now := c.now()
	claims := jwt.RegisteredClaims{
		Subject:   accountID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("sign jwt: %w", err)
	}
	return signed, nil
}

// Decrypt returns the token's subject. Malformed, expired or wrongly signed
// tokens yield "" and a nil error.
func (c *JWTCodec) Decrypt(_ context.Context, token string) (string, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !parsed.Valid {
		return "", nil
	}
	return claims.Subject, nil
}
