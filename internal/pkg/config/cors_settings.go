package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// CorsSettings configures cross-origin resource sharing for the REST API.
type CorsSettings struct {
	AllowOrigins     []string      `mapstructure:"allow_origins" validate:"required,min=1"`
	AllowMethods     []string      `mapstructure:"allow_methods" validate:"required,min=1"`
	AllowHeaders     []string      `mapstructure:"allow_headers"`
	AllowCredentials bool          `mapstructure:"allow_credentials"`
	MaxAge           time.Duration `mapstructure:"max_age"`
}

// Validate checks that all fields in CorsSettings are valid
func (s *CorsSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CorsSettings: %w", err)
	}

	if s.MaxAge < 0 {
		return fmt.Errorf("max age must not be negative")
	}

	return nil
}
