package repository

import (
	"contact_admin_server/internal/model"

	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates the category repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// FindAll returns all categories in insertion order.
func (r *categoryRepository) FindAll() ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Order("id").Find(&categories).Error; err != nil {
		return nil, wrapDBError(err, "カテゴリー一覧の取得に失敗しました")
	}
	return categories, nil
}

// Exists reports whether the category id references a row.
func (r *categoryRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, wrapDBErrorf(err, "カテゴリーの存在確認に失敗しました id=%d", id)
	}
	return count > 0, nil
}
