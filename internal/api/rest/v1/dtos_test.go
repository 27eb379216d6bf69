//go:build unit
// +build unit

package v1

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"forgekit/internal/domain/auth"
	"forgekit/internal/domain/users"
)

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   RegisterRequest
		shouldErr bool
	}{
		{"Valid", RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "s3cret-pass"}, false},
		{"Missing username", RegisterRequest{Email: "alice@example.com", Password: "s3cret-pass"}, true},
		{"Username too short", RegisterRequest{Username: "al", Email: "alice@example.com", Password: "s3cret-pass"}, true},
		{"Invalid email", RegisterRequest{Username: "alice", Email: "not-an-email", Password: "s3cret-pass"}, true},
		{"Password too short", RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "short"}, true},
		{"Password over bcrypt limit", RegisterRequest{Username: "alice", Email: "alice@example.com", Password: strings.Repeat("a", 73)}, true},
		{"Empty request", RegisterRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   LoginRequest
		shouldErr bool
	}{
		{"Valid", LoginRequest{Username: "alice", Password: "s3cret-pass"}, false},
		{"Missing username", LoginRequest{Password: "s3cret-pass"}, true},
		{"Missing password", LoginRequest{Username: "alice"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestUserUpdateRequest_Validate(t *testing.T) {
	username := "alice"
	badEmail := "not-an-email"

	tests := []struct {
		name      string
		request   UserUpdateRequest
		shouldErr bool
	}{
		{"Empty fields (valid)", UserUpdateRequest{}, false},
		{"Valid username", UserUpdateRequest{Username: &username}, false},
		{"Invalid email", UserUpdateRequest{Email: &badEmail}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestItemCreateRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   ItemCreateRequest
		shouldErr bool
	}{
		{"Valid", ItemCreateRequest{Title: "Water the plants"}, false},
		{"Valid with description", ItemCreateRequest{Title: "Water the plants", Description: "Front garden only"}, false},
		{"Missing title", ItemCreateRequest{Description: "Front garden only"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestNewUserResponse_OmitsPasswordHash(t *testing.T) {
	user := &users.User{
		ID:           "2c3b5b1b-9eaa-4f1b-8b48-6d5036f2b222",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		CreatedAt:    time.Now(),
	}

	response := NewUserResponse(user)

	require.Equal(t, user.ID, response.ID)
	require.Equal(t, "alice", response.Username)
	require.Equal(t, "alice@example.com", response.Email)
}

func TestNewTokenResponse(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour)
	session := &auth.Session{
		Token:     "signed-token",
		ExpiresAt: expiresAt,
		User: &users.User{
			ID:       "2c3b5b1b-9eaa-4f1b-8b48-6d5036f2b222",
			Username: "alice",
			Email:    "alice@example.com",
		},
	}

	response := NewTokenResponse(session)

	require.Equal(t, "signed-token", response.AccessToken)
	require.Equal(t, "Bearer", response.TokenType)
	require.Equal(t, expiresAt, response.ExpiresAt)
	require.Equal(t, "alice", response.User.Username)
}

func TestErrorResponse_Creation(t *testing.T) {
	errResp := ErrorResponse{
		Message: "Test error",
	}

	require.Equal(t, "Test error", errResp.Message)
}

func TestInfoResponse_Creation(t *testing.T) {
	infoResp := InfoResponse{
		Message: "Operation successful",
	}

	require.Equal(t, "Operation successful", infoResp.Message)
}
