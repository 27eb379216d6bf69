//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"forgekit/internal/domain/auth"
	"forgekit/internal/domain/items"
	"forgekit/internal/domain/users"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, email, password string) (*users.User, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*auth.Session, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *MockAuthService) Verify(token string) (*auth.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.TokenClaims), args.Error(1)
}

// MockUserAccountService is a mock implementation of UserAccountService
type MockUserAccountService struct {
	mock.Mock
}

func (m *MockUserAccountService) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.User), args.Error(1)
}

func (m *MockUserAccountService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserAccountService) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserAccountService) UpdateByID(ctx context.Context, userID string, update *users.ProfileUpdate) (*users.User, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserAccountService) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockItemService is a mock implementation of ItemService
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) Create(ctx context.Context, ownerID, title, description string) (*items.Item, error) {
	args := m.Called(ctx, ownerID, title, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*items.Item), args.Error(1)
}

func (m *MockItemService) List(ctx context.Context, query *items.ItemQuery) ([]*items.Item, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*items.Item), args.Error(1)
}

func (m *MockItemService) GetByID(ctx context.Context, itemID string) (*items.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*items.Item), args.Error(1)
}

func (m *MockItemService) UpdateByID(ctx context.Context, itemID, actorID string, update *items.ItemUpdate) (*items.Item, error) {
	args := m.Called(ctx, itemID, actorID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*items.Item), args.Error(1)
}

func (m *MockItemService) DeleteByID(ctx context.Context, itemID, actorID string) error {
	args := m.Called(ctx, itemID, actorID)
	return args.Error(0)
}
