package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmc/backend/internal/infrastructure/auth"
	"github.com/rmc/backend/internal/interfaces/http/dto"
)

// Context keys set by the auth middleware
const (
	ContextKeyClaims   = "claims"
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
)

// TokenValidator verifies a raw token string
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Claims, error)
}

// JWTAuth returns a middleware that requires a valid bearer token. Paths in
// skipPaths pass through unauthenticated (login, health).
func JWTAuth(tokens TokenValidator, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.FullPath()]; ok {
			c.Next()
			return
		}

		token, err := auth.ExtractToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(err.Error()))
			return
		}

		claims, err := tokens.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(err.Error()))
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUsername, claims.Username)
		c.Set(ContextKeyRole, claims.Role)
		c.Next()
	}
}

// ClaimsFromContext returns the verified claims stored by JWTAuth
func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	value, ok := c.Get(ContextKeyClaims)
	if !ok {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}
