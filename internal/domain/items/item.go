package items

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Item entity
type Item struct {
	ID          string    `validate:"required,uuid4"`
	Title       string    `validate:"required,min=1,max=120"`
	Description string    `validate:"omitempty,max=2000"`
	Done        bool
	OwnerID     string    `validate:"required,uuid4"`
	CreatedAt   time.Time `validate:"required"`
	UpdatedAt   time.Time `validate:"required"`
}

// Validate for validating Item struct
func (i *Item) Validate() error {
	validate := validator.New()

	err := validate.Struct(i)
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

// ItemUpdate carries the mutable fields of an item. Nil fields are left
// unchanged.
type ItemUpdate struct {
	Title       *string `validate:"omitempty,min=1,max=120"`
	Description *string `validate:"omitempty,max=2000"`
	Done        *bool
}

// Validate for validating ItemUpdate struct
func (u *ItemUpdate) Validate() error {
	validate := validator.New()

	if err := validate.Struct(u); err != nil {
		return fmt.Errorf("validation failed for ItemUpdate: %w", err)
	}

	return nil
}
