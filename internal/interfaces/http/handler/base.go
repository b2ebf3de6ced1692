package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rmc/backend/internal/infrastructure/logger"
	"github.com/rmc/backend/internal/interfaces/http/dto"
	"github.com/rmc/backend/internal/interfaces/http/middleware"
)

// Pagination bounds for list endpoints
const (
	defaultPage  = 1
	defaultLimit = 50
	maxLimit     = 200
)

// BaseHandler carries the helpers every resource handler shares
type BaseHandler struct {
	logger *zap.Logger
}

// NewBaseHandler creates a BaseHandler
func NewBaseHandler(logger *zap.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// RespondError writes the classified error envelope. Unclassified errors are
// logged with the request context before the generic 500 goes out.
func (h *BaseHandler) RespondError(c *gin.Context, err error) {
	status, resp := dto.ClassifyError(err)
	if status == http.StatusInternalServerError {
		logger.FromContext(c, h.logger).Error("request failed", zap.Error(err))
	}
	c.JSON(status, resp)
}

// RespondBindingError writes a validation failure envelope with field details
func (h *BaseHandler) RespondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails(
		"Validation failed", middleware.FormatValidationErrors(err)))
}

// CurrentUserID returns the authenticated caller's ID from the verified
// claims. Routes behind the auth middleware always have one.
func (h *BaseHandler) CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return uuid.Nil, false
	}
	id, err := claims.GetUserUUID()
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination reads page/limit query params with defaults and caps
func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if page < 1 {
		page = defaultPage
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// parseIDParam reads the :id path param as a UUID
func parseIDParam(c *gin.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}
