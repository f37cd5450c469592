package model

import "time"

// ContactTag is the contact/tag join record. It has no lifecycle of its
// own: rows appear when a contact is created with tags and disappear
// when the contact or the tag is deleted. Registered as the custom join
// table for Contact.Tags so the timestamps are maintained.
type ContactTag struct {
	ContactID uint      `gorm:"column:contact_id;primaryKey"`
	TagID     uint      `gorm:"column:tag_id;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (ContactTag) TableName() string {
	return "contact_tag"
}
