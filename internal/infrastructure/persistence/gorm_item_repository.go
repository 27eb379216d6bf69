package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"forgekit/internal/domain/items"
	"forgekit/internal/infrastructure/persistence/models"
	"forgekit/internal/pkg/logger"
)

type gormItemRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormItemRepository creates a new GORM-based ItemRepository implementation
func NewGormItemRepository(db *gorm.DB, logger logger.Logger) (items.ItemRepository, error) {
	return &gormItemRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormItemRepository) Create(ctx context.Context, item *items.Item) error {
	// Validate domain entity (business rules)
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	// Convert to GORM model
	model := &models.ItemModel{}
	model.FromDomain(item)

	// Persist to database
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	r.logger.Info("Created item with id ", item.ID)
	return nil
}

func (r *gormItemRepository) List(ctx context.Context, query *items.ItemQuery) ([]*items.Item, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ItemModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ItemModel{})

	// Apply filters
	if query.Title != "" {
		dbQuery = dbQuery.Where("title LIKE ?", "%"+query.Title+"%")
	}
	if query.OwnerID != "" {
		dbQuery = dbQuery.Where("owner_id = ?", query.OwnerID)
	}
	if query.Done != nil {
		dbQuery = dbQuery.Where("done = ?", *query.Done)
	}

	// Sorting
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	// Pagination
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch items: %w", err)
	}

	// Convert to domain models
	domainList := make([]*items.Item, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormItemRepository) GetByID(ctx context.Context, itemID string) (*items.Item, error) {
	var model models.ItemModel
	if err := r.db.WithContext(ctx).Where("id = ?", itemID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item with ID %s: %w", itemID, items.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch item: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormItemRepository) UpdateByID(ctx context.Context, item *items.Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ItemModel{}
	model.FromDomain(item)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	r.logger.Info("Updated item with id ", item.ID)
	return nil
}

func (r *gormItemRepository) DeleteByID(ctx context.Context, itemID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", itemID).Delete(&models.ItemModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	r.logger.Info("Deleted item with id ", itemID)
	return nil
}
