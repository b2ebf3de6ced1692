package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rmc/backend/internal/application/report"
	"github.com/rmc/backend/internal/interfaces/http/dto"
)

// DashboardHandler serves the dashboard rollups
type DashboardHandler struct {
	BaseHandler
	service *report.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service *report.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// RegisterRoutes mounts the dashboard routes
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard/stats", h.Stats)
	rg.GET("/dashboard/quantity", h.Quantity)
	rg.GET("/dashboard/summary", h.Summary)
}

// Stats serves the headline counters
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}

// Quantity serves delivered volume over the trailing day, week, and month
func (h *DashboardHandler) Quantity(c *gin.Context) {
	stats, err := h.service.Quantity(c.Request.Context())
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}

// Summary serves the recent-activity panels
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(summary))
}
