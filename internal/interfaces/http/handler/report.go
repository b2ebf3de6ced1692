package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rmc/backend/internal/application/report"
	"github.com/rmc/backend/internal/domain/shared"
	"github.com/rmc/backend/internal/interfaces/http/dto"
)

// ReportHandler serves the report catalog. Preview and download answer with
// stubs until generation is built.
type ReportHandler struct {
	BaseHandler
	service *report.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service *report.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// RegisterRoutes mounts the report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports", h.Catalog)
	rg.GET("/reports/preview", h.Preview)
	rg.GET("/reports/download", h.Download)
}

// Catalog lists the available reports
func (h *ReportHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(h.service.Catalog()))
}

// Preview serves the stub for ?report=<key>
func (h *ReportHandler) Preview(c *gin.Context) {
	h.respondStub(c, h.service.Preview)
}

// Download serves the stub for ?report=<key>
func (h *ReportHandler) Download(c *gin.Context) {
	h.respondStub(c, h.service.Download)
}

func (h *ReportHandler) respondStub(c *gin.Context, fetch func(string) (*report.ReportStub, error)) {
	key := c.Query("report")
	if key == "" {
		h.RespondError(c, shared.ValidationError("report query parameter is required"))
		return
	}

	stub, err := fetch(key)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(stub))
}
