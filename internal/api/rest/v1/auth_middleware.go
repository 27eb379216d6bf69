package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"forgekit/internal/domain/auth"
)

// Context keys under which RequireAuth stores the authenticated identity.
const (
	ContextUserIDKey   = "userID"
	ContextUsernameKey = "username"
)

// RequireAuth returns a middleware that rejects requests without a valid
// bearer token and stores the token claims on the request context.
func RequireAuth(authService auth.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "missing bearer token"})
			return
		}

		claims, err := authService.Verify(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid or expired token"})
			return
		}

		ctx.Set(ContextUserIDKey, claims.UserID)
		ctx.Set(ContextUsernameKey, claims.Username)
		ctx.Next()
	}
}

// authenticatedUserID returns the user ID stored by RequireAuth, or the
// empty string on routes that skipped the middleware.
func authenticatedUserID(ctx *gin.Context) string {
	return ctx.GetString(ContextUserIDKey)
}
