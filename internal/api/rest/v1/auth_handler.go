package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"forgekit/internal/domain/auth"
	"forgekit/internal/domain/users"
)

// AuthHandler defines the interface for handling registration and login
type AuthHandler interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Me(ctx *gin.Context)
}

// authHandler struct holds the services
type authHandler struct {
	authService        auth.AuthService
	userAccountService users.UserAccountService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService auth.AuthService, userAccountService users.UserAccountService) AuthHandler {
	return &authHandler{
		authService:        authService,
		userAccountService: userAccountService,
	}
}

// Register creates a new user account
func (handler *authHandler) Register(ctx *gin.Context) {
	var request RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	user, err := handler.authService.Register(ctx, request.Username, request.Email, request.Password)
	if err != nil {
		if errors.Is(err, users.ErrUsernameTaken) || errors.Is(err, users.ErrEmailTaken) {
			ctx.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error registering user: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, NewUserResponse(user))
}

// Login verifies the credentials and issues an access token
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	session, err := handler.authService.Login(ctx, request.Username, request.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Bad username or password"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "could not authenticate"})
		return
	}

	ctx.JSON(http.StatusOK, NewTokenResponse(session))
}

// Me returns the account of the authenticated user
func (handler *authHandler) Me(ctx *gin.Context) {
	userID := authenticatedUserID(ctx)

	user, err := handler.userAccountService.GetByID(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("user with id %s not found", userID)})
		return
	}

	ctx.JSON(http.StatusOK, NewUserResponse(user))
}
