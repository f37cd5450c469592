// Package service defines the business logic interfaces and their
// aggregate. Implementations live in the per-domain subpackages.
package service

import (
	"contact_admin_server/internal/dto/request"
	"contact_admin_server/internal/dto/respond"
	"contact_admin_server/internal/service/contact"
)

// CategoryService lists the inquiry categories.
type CategoryService interface {
	// ListCategories returns all categories.
	ListCategories() ([]respond.CategoryRespond, error)
}

// ContactService covers contact listing, creation, detail, deletion
// and the CSV export.
type ContactService interface {
	// ListContacts returns one filtered page, newest first.
	ListContacts(req request.IndexContactRequest) ([]respond.ContactRespond, respond.PageMeta, error)
	// CreateContact stores a form submission with its tags.
	CreateContact(req request.StoreContactRequest) error
	// GetContact returns one contact with category and tags.
	GetContact(id uint) (*respond.ContactRespond, error)
	// DeleteContact removes a contact and its tag associations.
	DeleteContact(id uint) error
	// PrepareExport validates the filters and runs the pre-flight
	// query so any failure surfaces before a response byte is sent.
	PrepareExport(req request.ExportContactRequest) (*contact.Export, error)
}

// TagService covers CRUD on the tag vocabulary.
type TagService interface {
	// ListTags returns all tags.
	ListTags() ([]respond.TagRespond, error)
	// CreateTag stores a new tag; duplicate names fail.
	CreateTag(req request.StoreTagRequest) error
	// UpdateTag renames a tag; the name must be unique excluding the
	// tag itself.
	UpdateTag(id uint, req request.UpdateTagRequest) error
	// DeleteTag removes a tag and its contact associations.
	DeleteTag(id uint) error
}
