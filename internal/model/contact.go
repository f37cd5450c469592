package model

import "time"

// Contact is a submitted inquiry. Every contact belongs to exactly one
// category and may carry any number of tags through the contact_tag
// join table (see ContactTag).
type Contact struct {
	ID uint `gorm:"primaryKey"`

	// CategoryID is required; the cascade mirrors the schema where
	// removing a category removes its inquiries.
	CategoryID uint     `gorm:"column:category_id;not null;index"`
	Category   Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`

	Tags []Tag `gorm:"many2many:contact_tag"`

	FirstName string `gorm:"column:first_name;type:varchar(255);not null"`
	LastName  string `gorm:"column:last_name;type:varchar(255);not null"`

	// Gender stores 1,2,3; see gender_enum. 0 is reserved as the
	// admin client's "no filter" value and never persisted.
	Gender int8 `gorm:"column:gender;not null;comment:1:男性, 2:女性, 3:その他"`

	Email string `gorm:"column:email;type:varchar(255);not null"`

	// Tel holds 10-11 digits without separators.
	Tel string `gorm:"column:tel;type:varchar(11);not null;comment:10〜11桁、ハイフンなし"`

	Address string `gorm:"column:address;type:varchar(255);not null"`

	// Building is the only optional form field.
	Building *string `gorm:"column:building;type:varchar(255)"`

	Detail string `gorm:"column:detail;type:varchar(120);not null"`

	CreatedAt time.Time `gorm:"column:created_at;index"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Contact) TableName() string {
	return "contacts"
}
