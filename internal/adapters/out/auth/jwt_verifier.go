// Package auth verifies bearer tokens issued by the external identity
// provider. Token issuing lives outside this system.
package auth

import (
	"context"
	"fmt"

	"zapshift/internal/core/ports"
	"zapshift/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HMAC-signed JWTs and extracts the caller's email.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a verifier for tokens signed with the given secret.
func NewJWTVerifier(secret string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	return &JWTVerifier{secret: []byte(secret)}, nil
}

// Verify parses and validates the token. Only HS256 is accepted.
func (v *JWTVerifier) Verify(_ context.Context, token string) (ports.Identity, error) {
	parsed := &claims{}
	_, err := jwt.ParseWithClaims(token, parsed, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return ports.Identity{}, fmt.Errorf("verify token: %w", err)
	}
	if parsed.Email == "" {
		return ports.Identity{}, fmt.Errorf("verify token: %w", errs.NewValueIsRequiredError("email claim"))
	}

	return ports.Identity{Email: parsed.Email}, nil
}
