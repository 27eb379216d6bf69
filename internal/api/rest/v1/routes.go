package v1

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"forgekit/internal/domain/auth"
	"forgekit/internal/domain/items"
	"forgekit/internal/domain/users"
	"forgekit/internal/pkg/config"
)

// Sustained one login attempt per second per client IP, with headroom for
// a short burst of retries.
const (
	loginAttemptInterval = time.Second
	loginAttemptBurst    = 5
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	db *gorm.DB,
	corsSettings *config.CorsSettings,
	authService auth.AuthService,
	userAccountService users.UserAccountService,
	itemService items.ItemService) {

	r.Use(cors.New(corsConfig(corsSettings)))

	// Unknown routes and recovered panics answer in JSON like every other route.
	r.Use(gin.CustomRecovery(func(ctx *gin.Context, _ any) {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: "internal server error"})
	}))
	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: "resource not found"})
	})

	healthHandler := NewHealthHandler(db)
	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)

	// Auth Routes
	loginLimiter := NewLoginRateLimiter(rate.Every(loginAttemptInterval), loginAttemptBurst)
	authHandler := NewAuthHandler(authService, userAccountService)
	authGroup := r.Group(AuthBasePath)
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", loginLimiter.Middleware(), authHandler.Login)
	authGroup.GET("/me", RequireAuth(authService), authHandler.Me)

	v1 := r.Group(BasePath) // lookup in version file

	// Users Routes
	userHandler := NewUserHandler(userAccountService)
	v1.GET("/users", RequireAuth(authService), userHandler.List)
	v1.GET("/users/:id", RequireAuth(authService), userHandler.GetByID)
	v1.PATCH("/users/:id", RequireAuth(authService), userHandler.UpdateByID)
	v1.DELETE("/users/:id", RequireAuth(authService), userHandler.DeleteByID)

	// Items Routes
	itemHandler := NewItemHandler(itemService)
	v1.GET("/items", itemHandler.List)
	v1.GET("/items/:id", itemHandler.GetByID)
	v1.POST("/items", RequireAuth(authService), itemHandler.Create)
	v1.PATCH("/items/:id", RequireAuth(authService), itemHandler.UpdateByID)
	v1.DELETE("/items/:id", RequireAuth(authService), itemHandler.DeleteByID)
}

func corsConfig(settings *config.CorsSettings) cors.Config {
	cfg := cors.DefaultConfig()

	if len(settings.AllowOrigins) == 1 && settings.AllowOrigins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = settings.AllowOrigins
	}
	cfg.AllowMethods = settings.AllowMethods
	if len(settings.AllowHeaders) > 0 {
		cfg.AllowHeaders = settings.AllowHeaders
	}
	cfg.AllowCredentials = settings.AllowCredentials
	if settings.MaxAge > 0 {
		cfg.MaxAge = settings.MaxAge
	}

	return cfg
}
