//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forgekit/internal/domain/auth"
	"forgekit/internal/domain/users"
	"forgekit/internal/pkg/config"
)

const testPassword = "correct horse battery staple"

// registerTestUser creates an account through the real registration flow.
func registerTestUser(t *testing.T, services *TestServices, username string) *users.User {
	t.Helper()

	user, err := services.AuthService.Register(context.Background(), username, username+"@example.com", testPassword)
	require.NoError(t, err, "Failed to register test user")
	return user
}

func TestAuthService_Register(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user, err := services.AuthService.Register(ctx, "alice", "alice@example.com", testPassword)
	require.NoError(t, err)

	require.NoError(t, user.Validate())
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, testPassword, user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())

	stored, err := services.DBContext.UserRepo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	registerTestUser(t, services, "alice")

	_, err := services.AuthService.Register(ctx, "alice", "other@example.com", testPassword)
	require.Error(t, err)
	assert.ErrorIs(t, err, users.ErrUsernameTaken)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	registerTestUser(t, services, "alice")

	_, err := services.AuthService.Register(ctx, "bob", "alice@example.com", testPassword)
	require.Error(t, err)
	assert.ErrorIs(t, err, users.ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user := registerTestUser(t, services, "alice")

	session, err := services.AuthService.Login(ctx, "alice", testPassword)
	require.NoError(t, err)

	assert.NotEmpty(t, session.Token)
	assert.WithinDuration(t, time.Now().Add(TestTokenTTL), session.ExpiresAt, 5*time.Second)
	require.NotNil(t, session.User)
	assert.Equal(t, user.ID, session.User.ID)

	claims, err := services.AuthService.Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.AuthService.Login(context.Background(), "nobody", testPassword)
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	registerTestUser(t, services, "alice")

	_, err := services.AuthService.Login(context.Background(), "alice", "not the password")
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Verify_InvalidToken(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.AuthService.Verify("not-a-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
