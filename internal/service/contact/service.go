// Package contact implements the contact listing, creation, deletion
// and CSV export logic.
package contact

import (
	"time"

	"contact_admin_server/internal/dao/mysql/repository"
	"contact_admin_server/internal/dto/request"
	"contact_admin_server/internal/dto/respond"
	"contact_admin_server/internal/model"
	"contact_admin_server/pkg/enum/contact/gender_enum"
	"contact_admin_server/pkg/errorx"
)

// PageSize is the fixed page size of the admin contact list.
const PageSize = 7

type contactService struct {
	repos *repository.Repositories
}

// NewContactService builds the contact service.
func NewContactService(repos *repository.Repositories) *contactService {
	return &contactService{repos: repos}
}

// buildFilter turns validated boundary values into the filter bag.
// gender 0 means "no filter" on the admin screen and is normalized to
// an absent field here, never compared against stored rows. A
// category_id that references no category is rejected as a field
// error before any query runs.
func (s *contactService) buildFilter(keyword string, gender *int8, categoryID *uint, date string) (repository.ContactFilter, error) {
	filter := repository.ContactFilter{Keyword: keyword}

	if gender != nil && *gender != gender_enum.UNFILTERED {
		filter.Gender = gender
	}

	if categoryID != nil {
		exists, err := s.repos.Category.Exists(*categoryID)
		if err != nil {
			return repository.ContactFilter{}, err
		}
		if !exists {
			return repository.ContactFilter{}, errorx.NewFieldError(
				errorx.CodeInvalidParam, "category_id", "選択されたカテゴリーが存在しません")
		}
		filter.CategoryID = categoryID
	}

	if date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return repository.ContactFilter{}, errorx.NewFieldError(
				errorx.CodeInvalidParam, "date", "日付の形式が正しくありません")
		}
		filter.Date = &day
	}

	return filter, nil
}

// ListContacts returns one filtered page with category and tags
// attached, newest first, plus the pagination block.
func (s *contactService) ListContacts(req request.IndexContactRequest) ([]respond.ContactRespond, respond.PageMeta, error) {
	filter, err := s.buildFilter(req.Keyword, req.Gender, req.CategoryID, req.Date)
	if err != nil {
		return nil, respond.PageMeta{}, err
	}

	page := req.Page
	if page < 1 {
		page = 1
	}

	contacts, total, err := s.repos.Contact.FindPage(filter, page, PageSize)
	if err != nil {
		return nil, respond.PageMeta{}, err
	}

	lastPage := int((total + PageSize - 1) / PageSize)
	if lastPage < 1 {
		lastPage = 1
	}
	meta := respond.PageMeta{
		CurrentPage: page,
		PerPage:     PageSize,
		Total:       total,
		LastPage:    lastPage,
	}
	return respond.NewContactRespondList(contacts), meta, nil
}

// CreateContact stores a form submission. The gender code must be
// storable, the referenced category and every requested tag must
// exist; contact insert and tag attachment happen in one transaction
// inside the repository.
func (s *contactService) CreateContact(req request.StoreContactRequest) error {
	if !gender_enum.Valid(req.Gender) {
		return errorx.NewFieldError(
			errorx.CodeInvalidParam, "gender", "性別の値が不正です")
	}

	exists, err := s.repos.Category.Exists(req.CategoryID)
	if err != nil {
		return err
	}
	if !exists {
		return errorx.NewFieldError(
			errorx.CodeInvalidParam, "category_id", "選択されたカテゴリーが存在しません")
	}

	tags, err := s.repos.Tag.FindByIDs(req.TagIDs)
	if err != nil {
		return err
	}
	if len(tags) != len(req.TagIDs) {
		return errorx.NewFieldError(
			errorx.CodeInvalidParam, "tag_ids", "選択されたタグが存在しません")
	}

	contact := &model.Contact{
		CategoryID: req.CategoryID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Gender:     req.Gender,
		Email:      req.Email,
		Tel:        req.Tel,
		Address:    req.Address,
		Building:   req.Building,
		Detail:     req.Detail,
	}
	return s.repos.Contact.CreateWithTags(contact, tags)
}

// GetContact returns one contact with category and tags.
func (s *contactService) GetContact(id uint) (*respond.ContactRespond, error) {
	contact, err := s.repos.Contact.FindByID(id)
	if err != nil {
		return nil, err
	}
	r := respond.NewContactRespond(contact)
	return &r, nil
}

// DeleteContact removes a contact and its tag associations.
func (s *contactService) DeleteContact(id uint) error {
	return s.repos.Contact.Delete(id)
}
