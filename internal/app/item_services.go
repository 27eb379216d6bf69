package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"forgekit/internal/domain/items"
	"forgekit/internal/pkg/logger"
)

// itemService implements the ItemService interface for managing items
type itemService struct {
	itemRepo items.ItemRepository
	logger   logger.Logger
}

// NewItemService creates a new itemService instance
func NewItemService(itemRepo items.ItemRepository, logger logger.Logger) (items.ItemService, error) {
	return &itemService{
		itemRepo: itemRepo,
		logger:   logger,
	}, nil
}

// Create stores a new item owned by ownerID and returns it.
func (s *itemService) Create(ctx context.Context, ownerID, title, description string) (*items.Item, error) {
	now := time.Now().UTC()
	item := &items.Item{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Done:        false,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Created item ", item.ID, " for user ", ownerID)
	return item, nil
}

// List retrieves items considering a query filter when set.
func (s *itemService) List(ctx context.Context, query *items.ItemQuery) ([]*items.Item, error) {
	list, err := s.itemRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return list, nil
}

// GetByID retrieves an item by ID.
func (s *itemService) GetByID(ctx context.Context, itemID string) (*items.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return item, nil
}

// UpdateByID applies an update to an item by ID on behalf of actorID.
// Only the owner of the item may modify it.
func (s *itemService) UpdateByID(ctx context.Context, itemID, actorID string, update *items.ItemUpdate) (*items.Item, error) {
	if update == nil {
		return nil, fmt.Errorf("no item update provided")
	}

	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if item.OwnerID != actorID {
		return nil, fmt.Errorf("item %s: %w", itemID, items.ErrNotOwner)
	}

	if update.Title != nil {
		item.Title = *update.Title
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	if update.Done != nil {
		item.Done = *update.Done
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.itemRepo.UpdateByID(ctx, item); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Updated item ", item.ID)
	return item, nil
}

// DeleteByID deletes an item by ID on behalf of actorID.
// Only the owner of the item may delete it.
func (s *itemService) DeleteByID(ctx context.Context, itemID, actorID string) error {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if item.OwnerID != actorID {
		return fmt.Errorf("item %s: %w", itemID, items.ErrNotOwner)
	}

	if err := s.itemRepo.DeleteByID(ctx, itemID); err != nil {
		return fmt.Errorf("%w", err)
	}

	s.logger.Info("Deleted item ", itemID)
	return nil
}
