package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"forgekit/internal/domain/auth"
	"forgekit/internal/domain/items"
	"forgekit/internal/domain/users"
)

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// RegisterRequest carries the payload for creating a new account. The
// password cap matches the 72 byte input limit of bcrypt.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// Validate for validating RegisterRequest struct
func (r *RegisterRequest) Validate() error {
	return validateStruct(r)
}

// LoginRequest carries the credentials for a login attempt.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate for validating LoginRequest struct
func (r *LoginRequest) Validate() error {
	return validateStruct(r)
}

// UserUpdateRequest carries a partial profile update. Absent fields are
// left unchanged.
type UserUpdateRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=80"`
	Email    *string `json:"email" validate:"omitempty,email,max=120"`
}

// Validate for validating UserUpdateRequest struct
func (r *UserUpdateRequest) Validate() error {
	return validateStruct(r)
}

// ToProfileUpdate maps the request onto the domain update type.
func (r *UserUpdateRequest) ToProfileUpdate() *users.ProfileUpdate {
	return &users.ProfileUpdate{
		Username: r.Username,
		Email:    r.Email,
	}
}

// ItemCreateRequest carries the payload for creating an item.
type ItemCreateRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=120"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

// Validate for validating ItemCreateRequest struct
func (r *ItemCreateRequest) Validate() error {
	return validateStruct(r)
}

// ItemUpdateRequest carries a partial item update. Absent fields are left
// unchanged.
type ItemUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=120"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Done        *bool   `json:"done"`
}

// Validate for validating ItemUpdateRequest struct
func (r *ItemUpdateRequest) Validate() error {
	return validateStruct(r)
}

// ToItemUpdate maps the request onto the domain update type.
func (r *ItemUpdateRequest) ToItemUpdate() *items.ItemUpdate {
	return &items.ItemUpdate{
		Title:       r.Title,
		Description: r.Description,
		Done:        r.Done,
	}
}

// UserResponse is the public representation of a user account. The
// password hash never leaves the service.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse maps a user entity onto its response representation.
func NewUserResponse(user *users.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// ItemResponse is the public representation of an item.
type ItemResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Done        bool      `json:"done"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewItemResponse maps an item entity onto its response representation.
func NewItemResponse(item *items.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Done:        item.Done,
		OwnerID:     item.OwnerID,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// TokenResponse carries an issued access token together with the account
// it belongs to.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// NewTokenResponse maps a session onto its response representation.
func NewTokenResponse(session *auth.Session) TokenResponse {
	return TokenResponse{
		AccessToken: session.Token,
		TokenType:   "Bearer",
		ExpiresAt:   session.ExpiresAt,
		User:        NewUserResponse(session.User),
	}
}

// ErrorResponse carries an error message back to the client.
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse carries an informational message back to the client.
type InfoResponse struct {
	Message string `json:"message"`
}
