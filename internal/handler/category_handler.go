package handler

import (
	"contact_admin_server/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler serves the category endpoints.
type CategoryHandler struct {
	svc service.CategoryService
}

func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// Index lists all categories.
// GET /api/categories
func (h *CategoryHandler) Index(c *gin.Context) {
	data, err := h.svc.ListCategories()
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondData(c, data)
}
