//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"forgekit/internal/domain/auth"
)

func authTestRouter(authService auth.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(authService), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"user_id": authenticatedUserID(ctx)})
	})
	return r
}

func TestRequireAuth_MissingHeader_Unauthorized(t *testing.T) {
	mockAuthService := new(MockAuthService)
	r := authTestRouter(mockAuthService)

	req, _ := http.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing bearer token")
	mockAuthService.AssertNotCalled(t, "Verify", mock.Anything)
}

func TestRequireAuth_WrongScheme_Unauthorized(t *testing.T) {
	mockAuthService := new(MockAuthService)
	r := authTestRouter(mockAuthService)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockAuthService.AssertNotCalled(t, "Verify", mock.Anything)
}

func TestRequireAuth_InvalidToken_Unauthorized(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockAuthService.On("Verify", "bad-token").Return(nil, auth.ErrInvalidToken)

	r := authTestRouter(mockAuthService)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
	mockAuthService.AssertExpectations(t)
}

func TestRequireAuth_ValidToken_StoresClaims(t *testing.T) {
	mockAuthService := new(MockAuthService)
	claims := &auth.TokenClaims{
		UserID:   "2c3b5b1b-9eaa-4f1b-8b48-6d5036f2b222",
		Username: "alice",
	}
	mockAuthService.On("Verify", "good-token").Return(claims, nil)

	r := authTestRouter(mockAuthService)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), claims.UserID)
	mockAuthService.AssertExpectations(t)
}
