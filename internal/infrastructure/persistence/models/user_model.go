package models

import (
	"time"

	"forgekit/internal/domain/users"
)

// UserModel is the GORM database model for user accounts (infrastructure concern)
type UserModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	Username     string    `gorm:"not null;uniqueIndex;type:varchar(80)"`
	Email        string    `gorm:"not null;uniqueIndex;type:varchar(120)"`
	PasswordHash string    `gorm:"not null;type:varchar(255)"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Username = u.Username
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.CreatedAt = u.CreatedAt
}
