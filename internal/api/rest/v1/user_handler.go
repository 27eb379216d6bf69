package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"forgekit/internal/domain/users"
	"forgekit/internal/pkg/strutil"
)

// UserHandler defines the interface for handling user account operations
type UserHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// userHandler struct holds the services
type userHandler struct {
	userAccountService users.UserAccountService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userAccountService users.UserAccountService) UserHandler {
	return &userHandler{
		userAccountService: userAccountService,
	}
}

// List fetches user accounts optionally with query parameters
func (handler *userHandler) List(ctx *gin.Context) {
	query := users.NewUserQuery()

	if username := ctx.Query("username"); len(username) > 0 {
		query.Username = username
	}

	if email := ctx.Query("email"); len(email) > 0 {
		query.Email = email
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	accounts, err := handler.userAccountService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err.Error())})
		return
	}

	var listResponse = []UserResponse{}
	for _, user := range accounts {
		listResponse = append(listResponse, NewUserResponse(user))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID fetches a user account by ID
func (handler *userHandler) GetByID(ctx *gin.Context) {
	userID := ctx.Param("id")

	user, err := handler.userAccountService.GetByID(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("user with id %s not found", userID)})
		return
	}

	ctx.JSON(http.StatusOK, NewUserResponse(user))
}

// UpdateByID applies a profile update to the authenticated user's account
func (handler *userHandler) UpdateByID(ctx *gin.Context) {
	userID := ctx.Param("id")
	if userID != authenticatedUserID(ctx) {
		ctx.JSON(http.StatusForbidden, ErrorResponse{Message: "you may only modify your own account"})
		return
	}

	var request UserUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	user, err := handler.userAccountService.UpdateByID(ctx, userID, request.ToProfileUpdate())
	if err != nil {
		if errors.Is(err, users.ErrUsernameTaken) || errors.Is(err, users.ErrEmailTaken) {
			ctx.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
			return
		}
		if errors.Is(err, users.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("user with id %s not found", userID)})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error updating user: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, NewUserResponse(user))
}

// DeleteByID deletes the authenticated user's account
func (handler *userHandler) DeleteByID(ctx *gin.Context) {
	userID := ctx.Param("id")
	if userID != authenticatedUserID(ctx) {
		ctx.JSON(http.StatusForbidden, ErrorResponse{Message: "you may only delete your own account"})
		return
	}

	if err := handler.userAccountService.DeleteByID(ctx, userID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("user with id %s not found", userID)})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted user with id %s", userID)})
}
