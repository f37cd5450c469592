package repository

import (
	"contact_admin_server/internal/model"

	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates the contact repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// latest orders newest submission first. Ties on created_at (bulk
// seeds, same-second submissions) fall back to id so the order matches
// reverse insertion order.
func latest(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

// FindPage returns one page of filtered contacts with Category and
// Tags eagerly loaded, plus the filtered total.
func (r *contactRepository) FindPage(filter ContactFilter, page, pageSize int) ([]model.Contact, int64, error) {
	var total int64
	if err := r.db.Model(&model.Contact{}).Scopes(filter.Scope()).Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "お問い合わせ件数の取得に失敗しました")
	}

	var contacts []model.Contact
	err := r.db.Preload("Category").Preload("Tags").
		Scopes(filter.Scope(), latest).
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&contacts).Error
	if err != nil {
		return nil, 0, wrapDBErrorf(err, "お問い合わせ一覧の取得に失敗しました page=%d", page)
	}

	// A preloaded contact without tags keeps a non-nil empty slice so
	// the serialization layer can tell "loaded, none" from "not loaded".
	for i := range contacts {
		if contacts[i].Tags == nil {
			contacts[i].Tags = []model.Tag{}
		}
	}
	return contacts, total, nil
}

// FindByID returns one contact with Category and Tags loaded.
func (r *contactRepository) FindByID(id uint) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.Preload("Category").Preload("Tags").First(&contact, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "お問い合わせが見つかりません id=%d", id)
	}
	if contact.Tags == nil {
		contact.Tags = []model.Tag{}
	}
	return &contact, nil
}

// Count returns the filtered total.
func (r *contactRepository) Count(filter ContactFilter) (int64, error) {
	var total int64
	if err := r.db.Model(&model.Contact{}).Scopes(filter.Scope()).Count(&total).Error; err != nil {
		return 0, wrapDBError(err, "お問い合わせ件数の取得に失敗しました")
	}
	return total, nil
}

// FindFilteredInBatches walks the filtered set newest-first in
// limit/offset batches with Category loaded. gorm's own FindInBatches
// is not usable here: it paginates on ascending primary key and would
// destroy the export order.
func (r *contactRepository) FindFilteredInBatches(filter ContactFilter, batchSize int, fn func(batch []model.Contact) error) error {
	offset := 0
	for {
		var batch []model.Contact
		err := r.db.Preload("Category").
			Scopes(filter.Scope(), latest).
			Limit(batchSize).Offset(offset).
			Find(&batch).Error
		if err != nil {
			return wrapDBError(err, "お問い合わせのエクスポート取得に失敗しました")
		}
		if len(batch) == 0 {
			return nil
		}
		if err := fn(batch); err != nil {
			return err
		}
		if len(batch) < batchSize {
			return nil
		}
		offset += batchSize
	}
}

// CreateWithTags inserts the contact and attaches its tags inside one
// transaction, so a contact is never observable with only part of the
// requested tags.
func (r *contactRepository) CreateWithTags(contact *model.Contact, tags []model.Tag) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(contact).Error; err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := tx.Model(contact).Association("Tags").Append(tags); err != nil {
				return err
			}
		}
		return nil
	})
	return wrapDBError(err, "お問い合わせの登録に失敗しました")
}

// Delete removes a contact and its join rows in one transaction.
func (r *contactRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var contact model.Contact
		if err := tx.First(&contact, id).Error; err != nil {
			return err
		}
		if err := tx.Where("contact_id = ?", id).Delete(&model.ContactTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&contact).Error
	})
	return wrapDBErrorf(err, "お問い合わせの削除に失敗しました id=%d", id)
}
