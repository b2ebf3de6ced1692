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

// CashBookHandler serves cash book entries: the generic CRUD surface plus the
// credit/debit/balance summary.
type CashBookHandler struct {
	*CRUDHandler[models.CashBookEntry, *models.CashBookEntry]
	service *finance.CashBookService
}

// NewCashBookHandler creates a new CashBookHandler
func NewCashBookHandler(entries *persistence.GormCashBookRepository, service *finance.CashBookService, logger *zap.Logger) *CashBookHandler {
	return &CashBookHandler{
		CRUDHandler: NewCRUDHandler[models.CashBookEntry, *models.CashBookEntry](
			"Cash book entry", "/cash-book", entries, logger),
		service: service,
	}
}

// RegisterRoutes mounts the cash book routes, summary before the :id route
func (h *CashBookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/cash-book/summary", h.Summary)
	h.CRUDHandler.RegisterRoutes(rg)
}

// Summary serves total credits, debits, and balance over an optional
// ?start_date=&end_date= window (YYYY-MM-DD)
func (h *CashBookHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(),
		c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(summary))
}
