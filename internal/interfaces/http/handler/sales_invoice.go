package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rmc/backend/internal/application/sales"
	"github.com/rmc/backend/internal/domain/shared"
	"github.com/rmc/backend/internal/infrastructure/persistence/models"
	"github.com/rmc/backend/internal/interfaces/http/dto"
)

// SalesInvoiceHandler serves the invoice aggregate. The service keeps header
// and line items consistent; the handler only shapes the HTTP surface.
type SalesInvoiceHandler struct {
	BaseHandler
	service *sales.InvoiceService
}

// NewSalesInvoiceHandler creates a new SalesInvoiceHandler
func NewSalesInvoiceHandler(service *sales.InvoiceService, logger *zap.Logger) *SalesInvoiceHandler {
	return &SalesInvoiceHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// RegisterRoutes mounts the invoice routes
func (h *SalesInvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/sales-invoices", h.List)
	rg.GET("/sales-invoices/:id", h.GetByID)
	rg.POST("/sales-invoices", h.Create)
	rg.PUT("/sales-invoices/:id", h.Update)
	rg.DELETE("/sales-invoices/:id", h.Delete)
}

// List serves one page of invoice headers with customer names
func (h *SalesInvoiceHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)

	invoices, total, err := h.service.List(c.Request.Context(), page, limit)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(invoices, total, page, limit))
}

// GetByID serves one invoice with its items
func (h *SalesInvoiceHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.RespondError(c, shared.ValidationError("id must be a valid UUID"))
		return
	}

	invoice, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.respondInvoiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(invoice))
}

// Create persists a new invoice with its items
func (h *SalesInvoiceHandler) Create(c *gin.Context) {
	var invoice models.SalesInvoice
	if err := c.ShouldBindJSON(&invoice); err != nil {
		h.RespondBindingError(c, err)
		return
	}

	userID, ok := h.CurrentUserID(c)
	if !ok {
		h.RespondError(c, shared.ErrUnauthorized)
		return
	}

	if err := h.service.Create(c.Request.Context(), &invoice, userID); err != nil {
		h.respondInvoiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.CreatedResponse{
		ID:      invoice.ID.String(),
		Message: "Sales invoice created successfully",
	}))
}

// Update overwrites an invoice. A payload with items replaces the stored item
// set; one without leaves it alone.
func (h *SalesInvoiceHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.RespondError(c, shared.ValidationError("id must be a valid UUID"))
		return
	}

	var invoice models.SalesInvoice
	if err := c.ShouldBindJSON(&invoice); err != nil {
		h.RespondBindingError(c, err)
		return
	}

	userID, ok := h.CurrentUserID(c)
	if !ok {
		h.RespondError(c, shared.ErrUnauthorized)
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &invoice, userID); err != nil {
		h.respondInvoiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"id":      id.String(),
		"message": "Sales invoice updated successfully",
	}))
}

// Delete removes an invoice and its items
func (h *SalesInvoiceHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.RespondError(c, shared.ValidationError("id must be a valid UUID"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.respondInvoiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"message": "Sales invoice deleted successfully",
	}))
}

func (h *SalesInvoiceHandler) respondInvoiceError(c *gin.Context, err error) {
	if errors.Is(err, shared.ErrNotFound) {
		h.RespondError(c, shared.NotFoundError("Sales invoice"))
		return
	}
	h.RespondError(c, err)
}
