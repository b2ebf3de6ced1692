package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rmc/backend/internal/application/finance"
	"github.com/rmc/backend/internal/infrastructure/persistence"
	"github.com/rmc/backend/internal/infrastructure/persistence/models"
	"github.com/rmc/backend/internal/interfaces/http/dto"
)

// AggregateHandler serves raw-material purchases: the generic CRUD surface
// plus the by-vendor and payment-pending rollups.
type AggregateHandler struct {
	*CRUDHandler[models.Aggregate, *models.Aggregate]
	service *finance.AggregateService
}

// NewAggregateHandler creates a new AggregateHandler
func NewAggregateHandler(aggregates *persistence.GormAggregateRepository, service *finance.AggregateService, logger *zap.Logger) *AggregateHandler {
	return &AggregateHandler{
		CRUDHandler: NewCRUDHandler[models.Aggregate, *models.Aggregate](
			"Aggregate", "/aggregates", aggregates, logger),
		service: service,
	}
}

// RegisterRoutes mounts the aggregate routes. The rollup routes go first so
// gin does not read "by-vendor" as an :id.
func (h *AggregateHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/aggregates/by-vendor", h.ByVendor)
	rg.GET("/aggregates/payment-pending", h.PaymentPending)
	h.CRUDHandler.RegisterRoutes(rg)
}

// ByVendor serves purchased quantity and amount summed per vendor
func (h *AggregateHandler) ByVendor(c *gin.Context) {
	totals, err := h.service.TotalsByVendor(c.Request.Context())
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(totals))
}

// PaymentPending serves purchases whose payment is outstanding
func (h *AggregateHandler) PaymentPending(c *gin.Context) {
	entries, err := h.service.PaymentPending(c.Request.Context())
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(entries))
}
