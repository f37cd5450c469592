package handler

import (
	"net/http"
	"strconv"

	"contact_admin_server/internal/dto/request"
	"contact_admin_server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler serves the contact endpoints and the CSV export.
type ContactHandler struct {
	svc service.ContactService
}

func NewContactHandler(svc service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// parseID reads the :id route parameter. An unparsable id behaves like
// a missing record, mirroring route-model binding.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// Index lists contacts, filtered and paginated.
// GET /api/contacts?keyword=&gender=&category_id=&date=&page=
func (h *ContactHandler) Index(c *gin.Context) {
	var req request.IndexContactRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, meta, err := h.svc.ListContacts(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, data, meta)
}

// Store creates a contact from a form submission.
// POST /api/contacts
func (h *ContactHandler) Store(c *gin.Context) {
	var req request.StoreContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.svc.CreateContact(req); err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c)
}

// Show returns one contact with category and tags.
// GET /api/contacts/:id
func (h *ContactHandler) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		RespondNotFound(c)
		return
	}
	data, err := h.svc.GetContact(id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondData(c, data)
}

// Destroy deletes one contact.
// DELETE /api/contacts/:id
func (h *ContactHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		RespondNotFound(c)
		return
	}
	if err := h.svc.DeleteContact(id); err != nil {
		HandleError(c, err)
		return
	}
	RespondNoContent(c)
}

// Export streams the filtered contacts as a CSV download.
// GET /contacts/export?keyword=&gender=&category_id=&date=
func (h *ContactHandler) Export(c *gin.Context) {
	var req request.ExportContactRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	// Filters are validated and the query exercised before any header
	// is committed, so failures still produce a clean error response.
	export, err := h.svc.PrepareExport(req)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=UTF-8")
	c.Header("Content-Disposition", `attachment; filename="`+export.Filename()+`"`)

	if err := export.WriteTo(c.Writer); err != nil {
		// Bytes are already on the wire. Panicking with ErrAbortHandler
		// makes net/http drop the connection without the terminating
		// chunk, so the client reads an unexpected EOF instead of a
		// valid-looking partial file.
		zap.L().Error("csv export aborted",
			zap.String("requestId", c.GetString("request_id")),
			zap.Error(err),
		)
		panic(http.ErrAbortHandler)
	}
}
