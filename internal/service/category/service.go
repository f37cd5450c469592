// Package category implements the category listing logic.
package category

import (
	"contact_admin_server/internal/dao/mysql/repository"
	"contact_admin_server/internal/dto/respond"
)

type categoryService struct {
	repos *repository.Repositories
}

// NewCategoryService builds the category service.
func NewCategoryService(repos *repository.Repositories) *categoryService {
	return &categoryService{repos: repos}
}

// ListCategories returns all categories for the form select box.
func (s *categoryService) ListCategories() ([]respond.CategoryRespond, error) {
	categories, err := s.repos.Category.FindAll()
	if err != nil {
		return nil, err
	}
	return respond.NewCategoryRespondList(categories), nil
}
