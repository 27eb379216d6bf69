//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"forgekit/internal/domain/items"
	"forgekit/internal/domain/users"
	"forgekit/internal/pkg/config"
	"forgekit/internal/pkg/testutil"
)

// TestContext holds the test database and repositories
type TestContext struct {
	DB       *gorm.DB
	UserRepo users.UserRepository
	ItemRepo items.ItemRepository
}

// SetupTestDB initializes a test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  config.SqliteMemoryDSN,
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = Migrate(db)
	require.NoError(t, err, "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	userRepo, err := NewGormUserRepository(db, logger)
	require.NoError(t, err, "Failed to create user repository")

	itemRepo, err := NewGormItemRepository(db, logger)
	require.NoError(t, err, "Failed to create item repository")

	return &TestContext{
		DB:       db,
		UserRepo: userRepo,
		ItemRepo: itemRepo,
	}
}

// CreateTestUser builds a valid user entity with a real bcrypt hash
func CreateTestUser(t *testing.T, username string) *users.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse battery staple"), bcrypt.MinCost)
	require.NoError(t, err)

	return &users.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
}

// CreateTestItem builds a valid item entity owned by ownerID
func CreateTestItem(t *testing.T, ownerID string, title string) *items.Item {
	t.Helper()

	if title == "" {
		title = "test-item"
	}

	now := time.Now().UTC()
	return &items.Item{
		ID:          uuid.NewString(),
		Title:       title,
		Description: "created by the integration suite",
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
