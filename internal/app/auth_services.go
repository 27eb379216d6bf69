package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"forgekit/internal/domain/auth"
	"forgekit/internal/domain/users"
	"forgekit/internal/pkg/logger"
)

// authService implements the AuthService interface for registration, login
// and token verification
type authService struct {
	userRepo      users.UserRepository
	passwordHash  auth.PasswordHasher
	tokenProvider auth.TokenProvider
	logger        logger.Logger
}

// NewAuthService creates a new authService instance
func NewAuthService(
	userRepo users.UserRepository,
	passwordHash auth.PasswordHasher,
	tokenProvider auth.TokenProvider,
	logger logger.Logger,
) (auth.AuthService, error) {
	return &authService{
		userRepo:      userRepo,
		passwordHash:  passwordHash,
		tokenProvider: tokenProvider,
		logger:        logger,
	}, nil
}

// Register creates a new user account with a hashed password.
// Username and email are checked for uniqueness before the insert; the
// unique indexes on the user table remain the backstop for races.
func (s *authService) Register(ctx context.Context, username, email, password string) (*users.User, error) {
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("username %s: %w", username, users.ErrUsernameTaken)
	} else if !errors.Is(err, users.ErrNotFound) {
		return nil, fmt.Errorf("%w", err)
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("email %s: %w", email, users.ErrEmailTaken)
	} else if !errors.Is(err, users.ErrNotFound) {
		return nil, fmt.Errorf("%w", err)
	}

	hash, err := s.passwordHash.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &users.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Registered user ", user.Username)
	return user, nil
}

// Login verifies the credentials and issues a signed access token. Unknown
// usernames and wrong passwords both map to ErrInvalidCredentials so the
// response never reveals which part was wrong.
func (s *authService) Login(ctx context.Context, username, password string) (*auth.Session, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w", err)
	}

	if !s.passwordHash.Verify(user.PasswordHash, password) {
		return nil, auth.ErrInvalidCredentials
	}

	claims := &auth.TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
	}
	token, expiresAt, err := s.tokenProvider.Issue(claims)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	s.logger.Info("Issued access token for user ", user.Username)
	return &auth.Session{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// Verify parses and validates an access token, returning its claims.
func (s *authService) Verify(token string) (*auth.TokenClaims, error) {
	claims, err := s.tokenProvider.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return claims, nil
}
