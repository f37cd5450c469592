package repository

import (
	"errors"

	"contact_admin_server/pkg/errorx"

	"gorm.io/gorm"
)

// wrapDBError wraps a database error with a business code:
// ErrRecordNotFound -> CodeNotFound, ErrDuplicatedKey -> CodeDuplicate,
// anything else -> CodeDBError.
func wrapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrap(err, errorx.CodeNotFound, msg)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errorx.Wrap(err, errorx.CodeDuplicate, msg)
	}
	return errorx.Wrap(err, errorx.CodeDBError, msg)
}

// wrapDBErrorf is wrapDBError with a fmt.Sprintf style message.
func wrapDBErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrapf(err, errorx.CodeNotFound, format, args...)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errorx.Wrapf(err, errorx.CodeDuplicate, format, args...)
	}
	return errorx.Wrapf(err, errorx.CodeDBError, format, args...)
}
