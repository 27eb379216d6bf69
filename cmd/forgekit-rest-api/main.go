// cmd/forgekit-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	v1 "forgekit/internal/api/rest/v1"
	"forgekit/internal/app"
	"forgekit/internal/domain/auth"
	"forgekit/internal/domain/items"
	"forgekit/internal/domain/users"
	"forgekit/internal/infrastructure/identity"
	"forgekit/internal/infrastructure/persistence"
	"forgekit/internal/pkg/config"
	"forgekit/internal/pkg/logger"
)

// openAPISpecPath points at the served API document, relative to the
// repository root the server is started from.
const openAPISpecPath = "./api/openapi/v1/forgekit.yaml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	services *appServices
}

type appServices struct {
	auth        auth.AuthService
	userAccount users.UserAccountService
	item        items.ItemService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	itemRepo, err := persistence.NewGormItemRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create item repository: %w", err)
	}

	// Initialize identity providers
	hasher := identity.NewBcryptHasher(bcrypt.DefaultCost)
	tokenProvider := identity.NewJWTProvider(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL)

	// Initialize services
	services, err := initializeApplicationServices(userRepo, itemRepo, hasher, tokenProvider, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:       db,
		services: services,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	if cfg.Environment == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup router
	r := gin.Default()

	// Setup API routes; CORS is applied inside from settings
	v1.SetupRoutes(r,
		deps.db,
		&cfg.CORS,
		deps.services.auth,
		deps.services.userAccount,
		deps.services.item,
	)

	// Serve OpenAPI spec (replaces Swagger)
	r.GET("/api/v1/openapi.yaml", func(c *gin.Context) {
		c.File(openAPISpecPath)
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if err := persistence.CloseDB(deps.db); err != nil {
		log.Warn("Failed to close database connection: ", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	userRepo users.UserRepository,
	itemRepo items.ItemRepository,
	hasher auth.PasswordHasher,
	tokenProvider auth.TokenProvider,
	log logger.Logger,
) (*appServices, error) {
	authService, err := app.NewAuthService(userRepo, hasher, tokenProvider, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	userAccountService, err := app.NewUserAccountService(userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user account service: %w", err)
	}

	itemService, err := app.NewItemService(itemRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create item service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		auth:        authService,
		userAccount: userAccountService,
		item:        itemService,
	}, nil
}
