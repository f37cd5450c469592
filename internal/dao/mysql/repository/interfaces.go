// Package repository defines the data access interfaces and their gorm
// implementations. All interfaces live in this file; implementations
// live in the per-entity files.
package repository

import (
	"time"

	"contact_admin_server/internal/model"

	"gorm.io/gorm"
)

// ContactFilter is the filter bag for contact listing and export. All
// fields are optional; an absent field contributes no predicate. The
// HTTP boundary is responsible for normalizing the admin client's
// gender=0 "no filter" value to a nil Gender before building the bag.
type ContactFilter struct {
	Keyword    string     // substring match on first_name, last_name or email
	Gender     *int8      // exact match, 1-3
	CategoryID *uint      // exact match
	Date       *time.Time // created_at falls on this calendar day
}

// Scope translates the filter into a gorm scope. Supplied filters are
// ANDed; only the keyword group ORs across its three columns. The date
// predicate is a half-open range over created_at so it stays portable
// and can use the created_at index.
func (f ContactFilter) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Keyword != "" {
			kw := "%" + f.Keyword + "%"
			db = db.Where("(first_name LIKE ? OR last_name LIKE ? OR email LIKE ?)", kw, kw, kw)
		}
		if f.Gender != nil {
			db = db.Where("gender = ?", *f.Gender)
		}
		if f.CategoryID != nil {
			db = db.Where("category_id = ?", *f.CategoryID)
		}
		if f.Date != nil {
			day := time.Date(f.Date.Year(), f.Date.Month(), f.Date.Day(), 0, 0, 0, 0, f.Date.Location())
			db = db.Where("created_at >= ? AND created_at < ?", day, day.AddDate(0, 0, 1))
		}
		return db
	}
}

// CategoryRepository provides read access to inquiry categories.
// Categories are seeded, not mutated through the API.
type CategoryRepository interface {
	// FindAll returns all categories in insertion order.
	FindAll() ([]model.Category, error)
	// Exists reports whether a category id references a row.
	Exists(id uint) (bool, error)
}

// ContactRepository provides access to submitted inquiries.
type ContactRepository interface {
	// FindPage returns one page of filtered contacts, newest first
	// (created_at desc, id desc), with Category and Tags loaded,
	// plus the filtered total.
	FindPage(filter ContactFilter, page, pageSize int) ([]model.Contact, int64, error)
	// FindByID returns one contact with Category and Tags loaded.
	FindByID(id uint) (*model.Contact, error)
	// Count returns the filtered total.
	Count(filter ContactFilter) (int64, error)
	// FindFilteredInBatches walks the full filtered result set in
	// order (created_at desc, id desc) with Category loaded,
	// invoking fn per batch. Walking stops at the first fn error.
	FindFilteredInBatches(filter ContactFilter, batchSize int, fn func(batch []model.Contact) error) error
	// CreateWithTags inserts the contact and its tag associations in
	// one transaction; either everything is stored or nothing is.
	CreateWithTags(contact *model.Contact, tags []model.Tag) error
	// Delete removes a contact and its join rows in one transaction.
	Delete(id uint) error
}

// TagRepository provides CRUD access to the tag vocabulary.
type TagRepository interface {
	// FindAll returns all tags in insertion order.
	FindAll() ([]model.Tag, error)
	// FindByID returns one tag.
	FindByID(id uint) (*model.Tag, error)
	// FindByIDs returns the tags matching the given ids; missing ids
	// are simply absent from the result.
	FindByIDs(ids []uint) ([]model.Tag, error)
	// ExistsByName reports whether another tag (excluding excludeID,
	// 0 to exclude nothing) already uses the name.
	ExistsByName(name string, excludeID uint) (bool, error)
	// Create inserts a new tag.
	Create(tag *model.Tag) error
	// UpdateName renames a tag.
	UpdateName(id uint, name string) error
	// Delete removes a tag and its join rows in one transaction.
	Delete(id uint) error
}

// Repositories aggregates all repository instances. The service layer
// receives this through constructor injection.
type Repositories struct {
	db       *gorm.DB
	Category CategoryRepository
	Contact  ContactRepository
	Tag      TagRepository
}

// NewRepositories wires every repository to the shared gorm instance.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:       db,
		Category: NewCategoryRepository(db),
		Contact:  NewContactRepository(db),
		Tag:      NewTagRepository(db),
	}
}
