//go:build integration
// +build integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"forgekit/internal/domain/auth"
	"forgekit/internal/domain/items"
	"forgekit/internal/domain/users"
	"forgekit/internal/infrastructure/identity"
	"forgekit/internal/infrastructure/persistence"
	"forgekit/internal/pkg/testutil"
)

// Test constants for token signing
const (
	TestTokenSecret = "integration-test-secret"
	TestTokenTTL    = time.Hour
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AuthService        auth.AuthService
	UserAccountService users.UserAccountService
	ItemService        items.ItemService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	// Setup database
	dbContext := persistence.SetupTestDB(t, dbType)

	// Setup identity providers
	hasher := identity.NewBcryptHasher(bcrypt.MinCost)
	tokenProvider := identity.NewJWTProvider(TestTokenSecret, TestTokenTTL)

	// Initialize services
	authService, err := NewAuthService(dbContext.UserRepo, hasher, tokenProvider, logger)
	require.NoError(t, err, "Failed to create AuthService")

	userAccountService, err := NewUserAccountService(dbContext.UserRepo, logger)
	require.NoError(t, err, "Failed to create UserAccountService")

	itemService, err := NewItemService(dbContext.ItemRepo, logger)
	require.NoError(t, err, "Failed to create ItemService")

	return &TestServices{
		AuthService:        authService,
		UserAccountService: userAccountService,
		ItemService:        itemService,
		DBContext:          dbContext,
	}
}
