//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forgekit/internal/domain/users"
	"forgekit/internal/pkg/config"
)

func TestUserPostgresRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	user := CreateTestUser(t, "alice")

	err := ctx.UserRepo.Create(context.Background(), user)
	require.NoError(t, err)

	fetched, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.ID)
	assert.Equal(t, user.Username, fetched.Username)
}

func TestUserPostgresRepository_DuplicateUsername(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	first := CreateTestUser(t, "alice")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), first))

	second := CreateTestUser(t, "alice")
	second.Email = "other@example.com"

	err := ctx.UserRepo.Create(context.Background(), second)
	assert.Error(t, err)
}

func TestUserPostgresRepository_ListAndDelete(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	user := CreateTestUser(t, "alice")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	query := users.NewUserQuery()
	list, err := ctx.UserRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, ctx.UserRepo.DeleteByID(context.Background(), user.ID))

	_, err = ctx.UserRepo.GetByID(context.Background(), user.ID)
	assert.ErrorIs(t, err, users.ErrNotFound)
}
