package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rmc/backend/internal/application/identity"
	"github.com/rmc/backend/internal/domain/shared"
	"github.com/rmc/backend/internal/interfaces/http/dto"
	"github.com/rmc/backend/internal/interfaces/http/middleware"
)

// LoginRequest is the login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthHandler serves the authentication endpoints
type AuthHandler struct {
	BaseHandler
	service *identity.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service *identity.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// RegisterRoutes mounts the auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.Login)
	rg.GET("/auth/validate", h.Validate)
	rg.POST("/auth/refresh", h.Refresh)
	rg.POST("/auth/logout", h.Logout)
}

// Login authenticates and returns a token
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondBindingError(c, err)
		return
	}

	result, err := h.service.Login(c.Request.Context(), identity.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// Validate confirms the presented token is still good and its user active
func (h *AuthHandler) Validate(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		h.RespondError(c, shared.ErrUnauthorized)
		return
	}

	info, err := h.service.Validate(c.Request.Context(), claims)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(info))
}

// Refresh mints a fresh token for the presented, still-valid one
func (h *AuthHandler) Refresh(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		h.RespondError(c, shared.ErrUnauthorized)
		return
	}

	result, err := h.service.Refresh(c.Request.Context(), claims)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// Logout acknowledges the request. Tokens are stateless; the client discards
// its copy and the token lapses at its expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		h.RespondError(c, shared.ErrUnauthorized)
		return
	}

	if err := h.service.Logout(c.Request.Context(), claims); err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"message": "Logged out successfully",
	}))
}
