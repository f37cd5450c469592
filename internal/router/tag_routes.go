package router

import "github.com/gin-gonic/gin"

// registerTagRoutes registers the tag CRUD endpoints.
func (rt *Router) registerTagRoutes(r *gin.Engine) {
	r.GET("/api/tags", rt.handlers.Tag.Index)
	r.POST("/api/tags", rt.handlers.Tag.Store)
	r.PUT("/api/tags/:id", rt.handlers.Tag.Update)
	r.DELETE("/api/tags/:id", rt.handlers.Tag.Destroy)
}
