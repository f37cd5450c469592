package handler

import (
	"contact_admin_server/internal/service"
)

// Handlers aggregates all handler instances for the router.
type Handlers struct {
	Category *CategoryHandler
	Contact  *ContactHandler
	Tag      *TagHandler
}

// NewHandlers wires every handler to its service.
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Category: NewCategoryHandler(svc.Category),
		Contact:  NewContactHandler(svc.Contact),
		Tag:      NewTagHandler(svc.Tag),
	}
}
