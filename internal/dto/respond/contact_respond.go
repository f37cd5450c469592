// Package respond defines the stable external JSON shapes. These are
// pure structural projections of the models; no derived fields.
package respond

import "contact_admin_server/internal/model"

// ContactRespond is the external shape of a contact. Category and Tags
// are pointers so that "not eagerly loaded" serializes as an omitted
// key, while "loaded but empty" serializes as null-free content
// (category object / empty tags array). A nullable field could not
// make that distinction.
type ContactRespond struct {
	ID        uint             `json:"id"`
	Category  *CategoryRespond `json:"category,omitempty"`
	Tags      *[]TagRespond    `json:"tags,omitempty"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Gender    int8             `json:"gender"`
	Email     string           `json:"email"`
	Tel       string           `json:"tel"`
	Address   string           `json:"address"`
	Building  *string          `json:"building"`
	Detail    string           `json:"detail"`
}

// NewContactRespond projects a contact. Associations are included only
// when the caller eagerly loaded them: a zero Category.ID means the
// category was not loaded, a nil Tags slice means tags were not loaded
// (the repository keeps loaded-but-empty slices non-nil).
func NewContactRespond(contact *model.Contact) ContactRespond {
	r := ContactRespond{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Gender:    contact.Gender,
		Email:     contact.Email,
		Tel:       contact.Tel,
		Address:   contact.Address,
		Building:  contact.Building,
		Detail:    contact.Detail,
	}
	if contact.Category.ID != 0 {
		category := NewCategoryRespond(&contact.Category)
		r.Category = &category
	}
	if contact.Tags != nil {
		tags := make([]TagRespond, 0, len(contact.Tags))
		for i := range contact.Tags {
			tags = append(tags, NewTagRespond(&contact.Tags[i]))
		}
		r.Tags = &tags
	}
	return r
}

// NewContactRespondList projects a slice of contacts.
func NewContactRespondList(contacts []model.Contact) []ContactRespond {
	list := make([]ContactRespond, 0, len(contacts))
	for i := range contacts {
		list = append(list, NewContactRespond(&contacts[i]))
	}
	return list
}

// PageMeta is the pagination block of the listing endpoint.
type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}
