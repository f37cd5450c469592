// Package tag implements the tag vocabulary CRUD.
package tag

import (
	"contact_admin_server/internal/dao/mysql/repository"
	"contact_admin_server/internal/dto/request"
	"contact_admin_server/internal/dto/respond"
	"contact_admin_server/internal/model"
	"contact_admin_server/pkg/errorx"
)

type tagService struct {
	repos *repository.Repositories
}

// NewTagService builds the tag service.
func NewTagService(repos *repository.Repositories) *tagService {
	return &tagService{repos: repos}
}

func duplicateNameError() error {
	return errorx.NewFieldError(errorx.CodeDuplicate, "name", "このタグ名は既に使用されています")
}

// ListTags returns all tags.
func (s *tagService) ListTags() ([]respond.TagRespond, error) {
	tags, err := s.repos.Tag.FindAll()
	if err != nil {
		return nil, err
	}
	return respond.NewTagRespondList(tags), nil
}

// CreateTag stores a new tag. The name check here gives a field-level
// message; the unique index catches the race where two admins create
// the same name at once, which surfaces as the same field error.
func (s *tagService) CreateTag(req request.StoreTagRequest) error {
	taken, err := s.repos.Tag.ExistsByName(req.Name, 0)
	if err != nil {
		return err
	}
	if taken {
		return duplicateNameError()
	}

	if err := s.repos.Tag.Create(&model.Tag{Name: req.Name}); err != nil {
		if errorx.IsDuplicate(err) {
			return duplicateNameError()
		}
		return err
	}
	return nil
}

// UpdateTag renames a tag. The uniqueness check excludes the tag
// itself, so renaming a tag to its current name succeeds.
func (s *tagService) UpdateTag(id uint, req request.UpdateTagRequest) error {
	if _, err := s.repos.Tag.FindByID(id); err != nil {
		return err
	}

	taken, err := s.repos.Tag.ExistsByName(req.Name, id)
	if err != nil {
		return err
	}
	if taken {
		return duplicateNameError()
	}

	if err := s.repos.Tag.UpdateName(id, req.Name); err != nil {
		if errorx.IsDuplicate(err) {
			return duplicateNameError()
		}
		return err
	}
	return nil
}

// DeleteTag removes a tag together with its contact associations.
func (s *tagService) DeleteTag(id uint) error {
	return s.repos.Tag.Delete(id)
}
