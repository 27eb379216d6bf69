package models

import (
	"time"

	"forgekit/internal/domain/items"
)

// ItemModel is the GORM database model for items (infrastructure concern)
type ItemModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	Title       string    `gorm:"not null;type:varchar(120)"`
	Description string    `gorm:"type:text"`
	Done        bool      `gorm:"not null;default:false"`
	OwnerID     string    `gorm:"not null;index;type:uuid"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ItemModel) TableName() string {
	return "items"
}

// ToDomain converts GORM model to domain entity
func (m *ItemModel) ToDomain() *items.Item {
	return &items.Item{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Done:        m.Done,
		OwnerID:     m.OwnerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ItemModel) FromDomain(i *items.Item) {
	m.ID = i.ID
	m.Title = i.Title
	m.Description = i.Description
	m.Done = i.Done
	m.OwnerID = i.OwnerID
	m.CreatedAt = i.CreatedAt
	m.UpdatedAt = i.UpdatedAt
}
