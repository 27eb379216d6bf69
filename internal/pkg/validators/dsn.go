// Package validators provides custom validation functions for use with
// the go-playground validator.
package validators

import (
	"github.com/go-playground/validator/v10"
)

// DSNValidation validates a database DSN against the database type declared
// on the same struct. Postgres always needs an explicit DSN; SQLite may leave
// it empty, which selects an in-memory database.
func DSNValidation(fl validator.FieldLevel) bool {
	dbType := fl.Parent().FieldByName("Type").String()
	dsn := fl.Field().String()

	switch dbType {
	case "postgres":
		return dsn != ""
	case "sqlite":
		return true
	default:
		return false
	}
}
