package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"forgekit/internal/buildinfo"
)

const serviceName = "forgekit"

// HealthHandler defines the interface for handling service health probes
type HealthHandler interface {
	Root(ctx *gin.Context)
	Health(ctx *gin.Context)
	Ready(ctx *gin.Context)
}

// healthHandler struct holds the database handle probed for readiness
type healthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *gorm.DB) HealthHandler {
	return &healthHandler{db: db}
}

// Root reports the service banner
func (handler *healthHandler) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"service": serviceName,
		"status":  "running",
		"version": buildinfo.Version,
	})
}

// Health reports liveness
func (handler *healthHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Ready reports readiness by pinging the database
func (handler *healthHandler) Ready(ctx *gin.Context) {
	sqlDB, err := handler.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}
