package handler

import (
	"contact_admin_server/internal/dto/request"
	"contact_admin_server/internal/service"

	"github.com/gin-gonic/gin"
)

// TagHandler serves the tag CRUD endpoints.
type TagHandler struct {
	svc service.TagService
}

func NewTagHandler(svc service.TagService) *TagHandler {
	return &TagHandler{svc: svc}
}

// Index lists all tags.
// GET /api/tags
func (h *TagHandler) Index(c *gin.Context) {
	data, err := h.svc.ListTags()
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondData(c, data)
}

// Store creates a tag.
// POST /api/tags
func (h *TagHandler) Store(c *gin.Context) {
	var req request.StoreTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.svc.CreateTag(req); err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c)
}

// Update renames a tag.
// PUT /api/tags/:id
func (h *TagHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		RespondNotFound(c)
		return
	}
	var req request.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.svc.UpdateTag(id, req); err != nil {
		HandleError(c, err)
		return
	}
	RespondNoContent(c)
}

// Destroy deletes a tag and its contact associations.
// DELETE /api/tags/:id
func (h *TagHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		RespondNotFound(c)
		return
	}
	if err := h.svc.DeleteTag(id); err != nil {
		HandleError(c, err)
		return
	}
	RespondNoContent(c)
}
