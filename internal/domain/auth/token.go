package auth

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"forgekit/internal/domain/users"
)

// TokenClaims carries the identity encoded in an access token.
type TokenClaims struct {
	UserID   string `validate:"required,uuid4"`
	Username string `validate:"required,min=3,max=80"`
}

// Validate for validating TokenClaims struct
func (c *TokenClaims) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for TokenClaims: %w", err)
	}

	return nil
}

// Session is the result of a successful login: a signed access token, its
// expiry and the authenticated user.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *users.User
}
