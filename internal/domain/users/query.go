package users

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultListLimit caps list responses when no explicit limit is requested.
const DefaultListLimit = 50

// UserQuery filters, sorts and paginates user listings.
type UserQuery struct {
	Username  string `validate:"omitempty,max=80"`
	Email     string `validate:"omitempty,max=120"`
	SortBy    string `validate:"omitempty,oneof=username email created_at"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"min=1,max=100"`
	Offset    int    `validate:"min=0"`
}

// NewUserQuery returns a query with default sorting and paging applied.
func NewUserQuery() *UserQuery {
	return &UserQuery{
		SortBy:    "created_at",
		SortOrder: "desc",
		Limit:     DefaultListLimit,
	}
}

// Validate for validating UserQuery struct
func (q *UserQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for UserQuery: %w", err)
	}

	return nil
}
