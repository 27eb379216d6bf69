package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthSettings holds the secrets and token lifetime for the authentication
// layer. JWTSecret falls back to Secret when left empty, mirroring the
// JWT_SECRET_KEY -> SECRET_KEY fallback of the environment file.
type AuthSettings struct {
	Secret         string        `mapstructure:"secret" validate:"required,min=8"`
	JWTSecret      string        `mapstructure:"jwt_secret"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl" validate:"required"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	if s.AccessTokenTTL < time.Minute || s.AccessTokenTTL > 24*time.Hour {
		return fmt.Errorf("access token TTL must be between 1 minute and 24 hours")
	}

	return nil
}
