package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rmc/backend/internal/domain/shared"
	"github.com/rmc/backend/internal/infrastructure/persistence/models"
	"github.com/rmc/backend/internal/interfaces/http/dto"
)

// crudModel constrains the handler to pointer types exposing audit fields
type crudModel[T any] interface {
	*T
	models.Auditable
}

// CRUDStore is the repository surface the generic handler drives
type CRUDStore[T any] interface {
	List(ctx context.Context, page, limit int) ([]T, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, row *T) error
	Update(ctx context.Context, row *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CRUDHandler serves the five standard operations for one resource. Resources
// whose behavior is purely storage (mix designs, recipes, cube tests, batch
// lists, sales orders, purchase orders, quotations, delivery challans, weight
// bridge reports) get their whole HTTP surface from this one type; resources
// with bespoke semantics embed or replace it.
type CRUDHandler[T any, PT crudModel[T]] struct {
	BaseHandler
	resource string
	path     string
	store    CRUDStore[T]
}

// NewCRUDHandler creates a handler for one resource. resource names the
// entity in messages ("Mix design"), path is the route segment
// ("/mix-designs").
func NewCRUDHandler[T any, PT crudModel[T]](resource, path string, store CRUDStore[T], logger *zap.Logger) *CRUDHandler[T, PT] {
	return &CRUDHandler[T, PT]{
		BaseHandler: NewBaseHandler(logger),
		resource:    resource,
		path:        path,
		store:       store,
	}
}

// RegisterRoutes mounts the five standard routes on the group
func (h *CRUDHandler[T, PT]) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET(h.path, h.List)
	rg.GET(h.path+"/:id", h.GetByID)
	rg.POST(h.path, h.Create)
	rg.PUT(h.path+"/:id", h.Update)
	rg.DELETE(h.path+"/:id", h.Delete)
}

// List serves one page of rows, newest first
func (h *CRUDHandler[T, PT]) List(c *gin.Context) {
	page, limit := parsePagination(c)

	rows, total, err := h.store.List(c.Request.Context(), page, limit)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(rows, total, page, limit))
}

// GetByID serves one row
func (h *CRUDHandler[T, PT]) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.RespondError(c, shared.ValidationError("id must be a valid UUID"))
		return
	}

	row, err := h.store.FindByID(c.Request.Context(), id)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(row))
}

// Create inserts a row from the request body, stamped with the caller
func (h *CRUDHandler[T, PT]) Create(c *gin.Context) {
	var row T
	if err := c.ShouldBindJSON(&row); err != nil {
		h.RespondBindingError(c, err)
		return
	}

	userID, ok := h.CurrentUserID(c)
	if !ok {
		h.RespondError(c, shared.ErrUnauthorized)
		return
	}

	audit := PT(&row).AuditFields()
	audit.StampCreated(userID)

	if err := h.store.Create(c.Request.Context(), &row); err != nil {
		h.respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.CreatedResponse{
		ID:      audit.ID.String(),
		Message: h.resource + " created successfully",
	}))
}

// Update overwrites a row from the request body. Creation audit fields carry
// over from the stored row; everything else is replaced.
func (h *CRUDHandler[T, PT]) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.RespondError(c, shared.ValidationError("id must be a valid UUID"))
		return
	}

	existing, err := h.store.FindByID(c.Request.Context(), id)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}

	var row T
	if err := c.ShouldBindJSON(&row); err != nil {
		h.RespondBindingError(c, err)
		return
	}

	userID, ok := h.CurrentUserID(c)
	if !ok {
		h.RespondError(c, shared.ErrUnauthorized)
		return
	}

	audit := PT(&row).AuditFields()
	stored := PT(existing).AuditFields()
	audit.ID = stored.ID
	audit.CreatedAt = stored.CreatedAt
	audit.CreatedBy = stored.CreatedBy
	audit.StampUpdated(userID)

	if err := h.store.Update(c.Request.Context(), &row); err != nil {
		h.respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"id":      audit.ID.String(),
		"message": h.resource + " updated successfully",
	}))
}

// Delete removes a row
func (h *CRUDHandler[T, PT]) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.RespondError(c, shared.ValidationError("id must be a valid UUID"))
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		h.respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"message": h.resource + " deleted successfully",
	}))
}

// respondStoreError names the resource in NOT_FOUND messages before the
// generic classification
func (h *CRUDHandler[T, PT]) respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, shared.ErrNotFound) {
		h.RespondError(c, shared.NotFoundError(h.resource))
		return
	}
	h.RespondError(c, err)
}
