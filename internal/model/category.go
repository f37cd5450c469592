// Package model defines the gorm entities backing the contact store.
package model

import "time"

// Category is an inquiry category shown in the contact form select box.
// Deleting a category cascades to its contacts via the FK constraint
// declared on Contact.CategoryID.
type Category struct {
	ID        uint      `gorm:"primaryKey"`
	Content   string    `gorm:"column:content;type:varchar(255);not null;comment:カテゴリー内容"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName pins the table name; gorm would otherwise pluralize the
// struct name the same way, but the migrations rely on it being stable.
func (Category) TableName() string {
	return "categories"
}
