package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rmc/backend/internal/domain/shared"
	"github.com/rmc/backend/internal/infrastructure/persistence"
	"github.com/rmc/backend/internal/infrastructure/persistence/models"
	"github.com/rmc/backend/internal/interfaces/http/dto"
)

// CustomerHandler serves the customer resource. It reuses the generic CRUD
// surface but overrides listing (search filter) and delete (soft delete).
type CustomerHandler struct {
	*CRUDHandler[models.Customer, *models.Customer]
	customers *persistence.GormCustomerRepository
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customers *persistence.GormCustomerRepository, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		CRUDHandler: NewCRUDHandler[models.Customer, *models.Customer](
			"Customer", "/customers", customers, logger),
		customers: customers,
	}
}

// RegisterRoutes mounts the customer routes
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/customers", h.List)
	rg.GET("/customers/:id", h.GetByID)
	rg.POST("/customers", h.Create)
	rg.PUT("/customers/:id", h.Update)
	rg.DELETE("/customers/:id", h.Delete)
}

// List serves one page of customers, filtered by ?search= when present
func (h *CustomerHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)
	search := c.Query("search")

	customers, total, err := h.customers.Search(c.Request.Context(), search, page, limit)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(customers, total, page, limit))
}

// Delete marks the customer inactive; invoices and challans keep their
// references
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.RespondError(c, shared.ValidationError("id must be a valid UUID"))
		return
	}

	userID, ok := h.CurrentUserID(c)
	if !ok {
		h.RespondError(c, shared.ErrUnauthorized)
		return
	}

	if err := h.customers.SoftDelete(c.Request.Context(), id, userID); err != nil {
		h.respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"message": "Customer deleted successfully",
	}))
}
