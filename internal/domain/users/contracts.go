package users

import (
	"context"
)

// UserAccountService defines methods for managing user accounts.
type UserAccountService interface {
	// List retrieves users considering a query filter when set.
	// It returns a slice of User and any error encountered during the retrieval.
	List(ctx context.Context, query *UserQuery) ([]*User, error)

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, userID string) (*User, error)

	// GetByUsername retrieves a user by username.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// UpdateByID applies a profile update to a user by ID and returns the
	// updated user.
	UpdateByID(ctx context.Context, userID string, update *ProfileUpdate) (*User, error)

	// DeleteByID deletes a user account by ID.
	// It returns any error encountered during the deletion process.
	DeleteByID(ctx context.Context, userID string) error
}

// UserRepository defines the interface for User-related operations
type UserRepository interface {
	// Create adds a new User to the database
	Create(ctx context.Context, user *User) error
	// List lists Users in the database with optional filter
	List(ctx context.Context, query *UserQuery) ([]*User, error)
	// GetByID retrieves a User from the database by ID
	GetByID(ctx context.Context, userID string) (*User, error)
	// GetByUsername retrieves a User from the database by username
	GetByUsername(ctx context.Context, username string) (*User, error)
	// GetByEmail retrieves a User from the database by email
	GetByEmail(ctx context.Context, email string) (*User, error)
	// UpdateByID updates a User in the database by ID
	UpdateByID(ctx context.Context, user *User) error
	// DeleteByID deletes a User in the database by ID
	DeleteByID(ctx context.Context, userID string) error
}
