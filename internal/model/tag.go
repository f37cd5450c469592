package model

import "time"

// Tag is an admin-managed label attached to contacts. Names are
// globally unique; the index backs the uniqueness check in the tag
// service and catches races it cannot see.
type Tag struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"column:name;type:varchar(50);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Tag) TableName() string {
	return "tags"
}
