//go:build integration
// +build integration

package persistence

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forgekit/internal/domain/users"
	"forgekit/internal/infrastructure/persistence/models"
	"forgekit/internal/pkg/config"
)

func TestUserSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, "alice")

	err := ctx.UserRepo.Create(context.Background(), user)
	require.NoError(t, err)

	// Verify using the GORM model (infrastructure concern)
	var createdModel models.UserModel
	err = ctx.DB.First(&createdModel, "id = ?", user.ID).Error
	require.NoError(t, err)
	assert.Equal(t, user.ID, createdModel.ID)
	assert.Equal(t, user.Username, createdModel.Username)
	assert.Equal(t, user.Email, createdModel.Email)
}

func TestUserSqliteRepository_Create_InvalidUser(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := &users.User{} // missing required fields

	err := ctx.UserRepo.Create(context.Background(), user)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestUserSqliteRepository_Create_DuplicateUsername(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	first := CreateTestUser(t, "alice")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), first))

	second := CreateTestUser(t, "alice")
	second.Email = "other@example.com"

	err := ctx.UserRepo.Create(context.Background(), second)
	assert.Error(t, err, "unique index on username must reject the duplicate")
}

func TestUserSqliteRepository_Create_DuplicateEmail(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	first := CreateTestUser(t, "alice")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), first))

	second := CreateTestUser(t, "bob")
	second.Email = first.Email

	err := ctx.UserRepo.Create(context.Background(), second)
	assert.Error(t, err, "unique index on email must reject the duplicate")
}

func TestUserSqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, "alice")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	fetched, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.ID)
	assert.Equal(t, user.PasswordHash, fetched.PasswordHash)
}

func TestUserSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.UserRepo.GetByID(context.Background(), "non-existent-id")
	assert.Error(t, err)
	assert.ErrorIs(t, err, users.ErrNotFound)
}

func TestUserSqliteRepository_GetByUsername(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, "alice")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	fetched, err := ctx.UserRepo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.ID)

	_, err = ctx.UserRepo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, users.ErrNotFound)
}

func TestUserSqliteRepository_GetByEmail(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, "alice")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	fetched, err := ctx.UserRepo.GetByEmail(context.Background(), user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.ID)
}

func TestUserSqliteRepository_List_WithFilters(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	for _, name := range []string{"alice", "alicia", "bob"} {
		require.NoError(t, ctx.UserRepo.Create(context.Background(), CreateTestUser(t, name)))
	}

	query := users.NewUserQuery()
	query.Username = "alic"

	list, err := ctx.UserRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestUserSqliteRepository_List_SortAndPagination(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	for i := 1; i <= 3; i++ {
		require.NoError(t, ctx.UserRepo.Create(context.Background(), CreateTestUser(t, fmt.Sprintf("user%d", i))))
	}

	query := users.NewUserQuery()
	query.SortBy = "username"
	query.SortOrder = "asc"
	query.Limit = 2
	query.Offset = 1

	list, err := ctx.UserRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "user2", list[0].Username)
	assert.Equal(t, "user3", list[1].Username)
}

func TestUserSqliteRepository_List_InvalidQuery(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	query := &users.UserQuery{
		Limit: -1,
	}

	_, err := ctx.UserRepo.List(context.Background(), query)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid query")
}

func TestUserSqliteRepository_UpdateByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, "alice")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	user.Email = "new-alice@example.com"
	require.NoError(t, ctx.UserRepo.UpdateByID(context.Background(), user))

	fetched, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-alice@example.com", fetched.Email)
}

func TestUserSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, "alice")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	require.NoError(t, ctx.UserRepo.DeleteByID(context.Background(), user.ID))

	_, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	assert.ErrorIs(t, err, users.ErrNotFound)
}
