package service

import (
	"contact_admin_server/internal/dao/mysql/repository"
	"contact_admin_server/internal/service/category"
	"contact_admin_server/internal/service/contact"
	"contact_admin_server/internal/service/tag"
)

// Services aggregates all service instances. The handler layer
// receives this through constructor injection.
type Services struct {
	Category CategoryService
	Contact  ContactService
	Tag      TagService
}

// NewServices builds every service on top of the repository aggregate.
func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Category: category.NewCategoryService(repos),
		Contact:  contact.NewContactService(repos),
		Tag:      tag.NewTagService(repos),
	}
}
