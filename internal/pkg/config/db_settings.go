package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"forgekit/internal/pkg/validators"
)

// DatabaseSettings holds the connection settings for the relational database.
// For SQLite an empty DSN falls back to an in-memory database; for Postgres
// the DSN is mandatory and Name identifies the database to create on first run.
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=sqlite postgres"`
	DSN  string `mapstructure:"dsn" validate:"dsnValidation"`
	Name string `mapstructure:"name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("dsnValidation", validators.DSNValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.Type == PostgresDbType && s.Name == "" {
		return fmt.Errorf("database name is required for postgres")
	}

	return nil
}
