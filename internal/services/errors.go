// internal/services/errors.go

// Package services holds one repository service per entity family. Each
// service owns the data access for its entities: list, get, create, update,
// delete, plus the foreign-key and uniqueness checks a write needs. A failed
// lookup is reported as ErrNotFound; invalid input comes back as
// utils.FieldErrors so handlers can emit the field-keyed wire shape.
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bahiapp/bahi-backend/internal/i18n"
)

var ErrNotFound = errors.New("record not found")

// Field-error messages are produced in the catalog's default language; only
// handler-level strings follow the caller's Accept-Language.
func invalidPKMessage(id uint) string {
	return i18n.T("en", i18n.KeyValidationInvalidPK, id)
}

func uniqueMessage() string {
	return i18n.T("en", i18n.KeyValidationUnique)
}

func pkExists(db *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check pk: %w", err)
	}
	return count > 0, nil
}
