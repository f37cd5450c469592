package router

import "github.com/gin-gonic/gin"

// registerCategoryRoutes registers the category endpoints.
func (rt *Router) registerCategoryRoutes(r *gin.Engine) {
	r.GET("/api/categories", rt.handlers.Category.Index)
}
