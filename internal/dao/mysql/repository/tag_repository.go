package repository

import (
	"contact_admin_server/internal/model"

	"gorm.io/gorm"
)

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates the tag repository.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// FindAll returns all tags in insertion order.
func (r *tagRepository) FindAll() ([]model.Tag, error) {
	var tags []model.Tag
	if err := r.db.Order("id").Find(&tags).Error; err != nil {
		return nil, wrapDBError(err, "タグ一覧の取得に失敗しました")
	}
	return tags, nil
}

// FindByID returns one tag.
func (r *tagRepository) FindByID(id uint) (*model.Tag, error) {
	var tag model.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "タグが見つかりません id=%d", id)
	}
	return &tag, nil
}

// FindByIDs returns the tags matching the given ids.
func (r *tagRepository) FindByIDs(ids []uint) ([]model.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []model.Tag
	if err := r.db.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, wrapDBError(err, "タグの取得に失敗しました")
	}
	return tags, nil
}

// ExistsByName reports whether another tag already uses the name.
// Comparison is whatever the column collation says; the unique index
// enforces the same rule.
func (r *tagRepository) ExistsByName(name string, excludeID uint) (bool, error) {
	query := r.db.Model(&model.Tag{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, wrapDBErrorf(err, "タグ名の重複確認に失敗しました name=%s", name)
	}
	return count > 0, nil
}

// Create inserts a new tag.
func (r *tagRepository) Create(tag *model.Tag) error {
	if err := r.db.Create(tag).Error; err != nil {
		return wrapDBErrorf(err, "タグの登録に失敗しました name=%s", tag.Name)
	}
	return nil
}

// UpdateName renames a tag.
func (r *tagRepository) UpdateName(id uint, name string) error {
	if err := r.db.Model(&model.Tag{}).Where("id = ?", id).Update("name", name).Error; err != nil {
		return wrapDBErrorf(err, "タグの更新に失敗しました id=%d", id)
	}
	return nil
}

// Delete removes a tag and its join rows in one transaction. The
// schema defines no cascade for this direction, so the join rows are
// cleared explicitly to avoid orphaned associations.
func (r *tagRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var tag model.Tag
		if err := tx.First(&tag, id).Error; err != nil {
			return err
		}
		if err := tx.Where("tag_id = ?", id).Delete(&model.ContactTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
	return wrapDBErrorf(err, "タグの削除に失敗しました id=%d", id)
}
