package items

import (
	"context"
)

// ItemService defines methods for managing items.
type ItemService interface {
	// Create stores a new item owned by ownerID and returns it.
	Create(ctx context.Context, ownerID, title, description string) (*Item, error)

	// List retrieves items considering a query filter when set.
	// It returns a slice of Item and any error encountered during the retrieval.
	List(ctx context.Context, query *ItemQuery) ([]*Item, error)

	// GetByID retrieves an item by ID.
	GetByID(ctx context.Context, itemID string) (*Item, error)

	// UpdateByID applies an update to an item by ID on behalf of actorID.
	// Only the owner of the item may modify it.
	UpdateByID(ctx context.Context, itemID, actorID string, update *ItemUpdate) (*Item, error)

	// DeleteByID deletes an item by ID on behalf of actorID.
	// Only the owner of the item may delete it.
	DeleteByID(ctx context.Context, itemID, actorID string) error
}

// ItemRepository defines the interface for Item-related operations
type ItemRepository interface {
	// Create adds a new Item to the database
	Create(ctx context.Context, item *Item) error
	// List lists Items in the database with optional filter
	List(ctx context.Context, query *ItemQuery) ([]*Item, error)
	// GetByID retrieves an Item from the database by ID
	GetByID(ctx context.Context, itemID string) (*Item, error)
	// UpdateByID updates an Item in the database by ID
	UpdateByID(ctx context.Context, item *Item) error
	// DeleteByID deletes an Item in the database by ID
	DeleteByID(ctx context.Context, itemID string) error
}
