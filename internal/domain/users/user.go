package users

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// User entity
type User struct {
	ID           string    `validate:"required,uuid4"`
	Username     string    `validate:"required,min=3,max=80"`
	Email        string    `validate:"required,email,max=120"`
	PasswordHash string    `validate:"required,max=255"`
	CreatedAt    time.Time `validate:"required"`
}

// Validate for validating User struct
func (u *User) Validate() error {
	validate := validator.New()

	err := validate.Struct(u)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// ProfileUpdate carries the mutable profile fields of a user. Nil fields
// are left unchanged.
type ProfileUpdate struct {
	Username *string `validate:"omitempty,min=3,max=80"`
	Email    *string `validate:"omitempty,email,max=120"`
}

// Validate for validating ProfileUpdate struct
func (p *ProfileUpdate) Validate() error {
	validate := validator.New()

	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("validation failed for ProfileUpdate: %w", err)
	}

	return nil
}
