package app

import (
	"context"
	"errors"
	"fmt"

	"forgekit/internal/domain/users"
	"forgekit/internal/pkg/logger"
)

// userAccountService implements the UserAccountService interface for
// managing user accounts
type userAccountService struct {
	userRepo users.UserRepository
	logger   logger.Logger
}

// NewUserAccountService creates a new userAccountService instance
func NewUserAccountService(userRepo users.UserRepository, logger logger.Logger) (users.UserAccountService, error) {
	return &userAccountService{
		userRepo: userRepo,
		logger:   logger,
	}, nil
}

// List retrieves users considering a query filter when set.
func (s *userAccountService) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	accounts, err := s.userRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return accounts, nil
}

// GetByID retrieves a user by ID.
func (s *userAccountService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return user, nil
}

// GetByUsername retrieves a user by username.
func (s *userAccountService) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return user, nil
}

// UpdateByID applies a profile update to a user by ID and returns the
// updated user. Changed usernames and emails are re-checked for uniqueness
// against other accounts before the write.
func (s *userAccountService) UpdateByID(ctx context.Context, userID string, update *users.ProfileUpdate) (*users.User, error) {
	if update == nil {
		return nil, fmt.Errorf("no profile update provided")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if update.Username != nil && *update.Username != user.Username {
		if err := s.checkUsernameAvailable(ctx, *update.Username, user.ID); err != nil {
			return nil, err
		}
		user.Username = *update.Username
	}

	if update.Email != nil && *update.Email != user.Email {
		if err := s.checkEmailAvailable(ctx, *update.Email, user.ID); err != nil {
			return nil, err
		}
		user.Email = *update.Email
	}

	if err := s.userRepo.UpdateByID(ctx, user); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Updated profile of user ", user.ID)
	return user, nil
}

// DeleteByID deletes a user account by ID.
func (s *userAccountService) DeleteByID(ctx context.Context, userID string) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := s.userRepo.DeleteByID(ctx, userID); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (s *userAccountService) checkUsernameAvailable(ctx context.Context, username, selfID string) error {
	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("%w", err)
	}
	if existing.ID != selfID {
		return fmt.Errorf("username %s: %w", username, users.ErrUsernameTaken)
	}
	return nil
}

func (s *userAccountService) checkEmailAvailable(ctx context.Context, email, selfID string) error {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("%w", err)
	}
	if existing.ID != selfID {
		return fmt.Errorf("email %s: %w", email, users.ErrEmailTaken)
	}
	return nil
}
