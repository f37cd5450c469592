package router

import "github.com/gin-gonic/gin"

// registerContactRoutes registers the contact endpoints. The export
// lives outside /api because it is a browser download, not an XHR
// resource; access control for it sits in front of this server.
func (rt *Router) registerContactRoutes(r *gin.Engine) {
	r.GET("/api/contacts", rt.handlers.Contact.Index)
	r.POST("/api/contacts", rt.handlers.Contact.Store)
	r.GET("/api/contacts/:id", rt.handlers.Contact.Show)
	r.DELETE("/api/contacts/:id", rt.handlers.Contact.Destroy)

	r.GET("/contacts/export", rt.handlers.Contact.Export)
}
