package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rmc/backend/internal/interfaces/http/dto"
)

// Pinger reports whether the database connection is alive
type Pinger interface {
	Ping() error
}

// SystemHandler serves health and liveness endpoints
type SystemHandler struct {
	BaseHandler
	db      Pinger
	appName string
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger, appName string, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{BaseHandler: NewBaseHandler(logger), db: db, appName: appName}
}

// RegisterRoutes mounts the system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/ping", h.Ping)
}

// Health reports service and database status
func (h *SystemHandler) Health(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("database unreachable"))
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"service": h.appName,
		"status":  "ok",
	}))
}

// Ping answers pong without touching dependencies
func (h *SystemHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "pong"}))
}
