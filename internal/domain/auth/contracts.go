package auth

import (
	"context"
	"time"

	"forgekit/internal/domain/users"
)

// AuthService defines methods for registering and authenticating users.
type AuthService interface {
	// Register creates a new user account with a hashed password.
	// It returns the created User and any error encountered during registration.
	Register(ctx context.Context, username, email, password string) (*users.User, error)

	// Login verifies the credentials and issues a signed access token.
	// It returns a Session and any error encountered during authentication.
	Login(ctx context.Context, username, password string) (*Session, error)

	// Verify parses and validates an access token, returning its claims.
	Verify(token string) (*TokenClaims, error)
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether the plaintext password matches the stored hash.
	Verify(hash string, password string) bool
}

// TokenProvider issues and parses signed access tokens.
type TokenProvider interface {
	// Issue signs a token for the claims and returns it with its expiry.
	Issue(claims *TokenClaims) (string, time.Time, error)

	// Parse validates a signed token and extracts its claims.
	Parse(token string) (*TokenClaims, error)
}
