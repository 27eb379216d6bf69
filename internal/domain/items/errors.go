package items

import "errors"

// Sentinel errors for item operations
var (
	ErrNotFound = errors.New("item not found")
	ErrNotOwner = errors.New("item belongs to another user")
)
