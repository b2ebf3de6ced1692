package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rmc/backend/internal/infrastructure/config"
	"github.com/rmc/backend/internal/infrastructure/logger"
	"github.com/rmc/backend/internal/interfaces/http/middleware"
)

// Registrar is implemented by every handler; each mounts its own routes
type Registrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Public endpoints that bypass the auth middleware
var skipAuthPaths = []string{
	"/api/v1/auth/login",
	"/api/v1/health",
	"/api/v1/ping",
}

// New assembles the gin engine: request ID, logging, recovery, CORS, then the
// authenticated /api/v1 group where every handler registers itself.
func New(cfg *config.Config, log *zap.Logger, tokens middleware.TokenValidator, registrars ...Registrar) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORS(cfg.HTTP),
	)

	api := engine.Group("/api/v1")
	api.Use(middleware.JWTAuth(tokens, skipAuthPaths...))

	for _, r := range registrars {
		r.RegisterRoutes(api)
	}

	return engine
}
