// Package http_server assembles the gin engine: middleware chain,
// CORS and route registration.
package http_server

import (
	"contact_admin_server/internal/handler"
	"contact_admin_server/internal/infrastructure/logger"
	"contact_admin_server/internal/infrastructure/middleware"
	"contact_admin_server/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Init builds the engine. gin.New instead of gin.Default keeps full
// control over the middleware chain: zap-backed logging and recovery
// replace gin's defaults.
func Init(handlers *handler.Handlers) *gin.Engine {
	engine := gin.New()

	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))
	engine.Use(middleware.RequestID())

	// The admin SPA and the public form are served from a different
	// origin in development.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Request-Id"}
	engine.Use(cors.New(corsConfig))

	rt := router.NewRouter(handlers)
	rt.RegisterRoutes(engine)

	return engine
}
