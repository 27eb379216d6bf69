package items

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultListLimit caps list responses when no explicit limit is requested.
const DefaultListLimit = 50

// ItemQuery filters, sorts and paginates item listings. Title matches as a
// substring; the remaining filters match exactly.
type ItemQuery struct {
	Title     string `validate:"omitempty,max=120"`
	OwnerID   string `validate:"omitempty,uuid4"`
	Done      *bool
	SortBy    string `validate:"omitempty,oneof=title created_at updated_at"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"min=1,max=100"`
	Offset    int    `validate:"min=0"`
}

// NewItemQuery returns a query with default sorting and paging applied.
func NewItemQuery() *ItemQuery {
	return &ItemQuery{
		SortBy:    "created_at",
		SortOrder: "desc",
		Limit:     DefaultListLimit,
	}
}

// Validate for validating ItemQuery struct
func (q *ItemQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for ItemQuery: %w", err)
	}

	return nil
}
