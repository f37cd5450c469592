// Package router registers the HTTP routes. Per-module registration
// lives in the *_routes.go files.
package router

import (
	"contact_admin_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// Router holds the handler aggregate and registers all routes.
type Router struct {
	handlers *handler.Handlers
}

// NewRouter creates the route registrar.
func NewRouter(h *handler.Handlers) *Router {
	return &Router{handlers: h}
}

// RegisterRoutes registers every module's routes on the engine.
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	rt.registerCategoryRoutes(r)
	rt.registerContactRoutes(r)
	rt.registerTagRoutes(r)
}
