package ports

import (
	"context"
)

// Identity is the authenticated caller extracted from a bearer credential.
type Identity struct {
	Email string
}

// TokenVerifier validates bearer credentials issued by the external identity
// provider. Token issuing and account management live outside this system;
// the core only needs to resolve a token to an identity.
type TokenVerifier interface {
	// Verify checks the token and returns the caller's identity.
	// An invalid, expired, or malformed token yields an error.
	Verify(ctx context.Context, token string) (Identity, error)
}
