package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation relies on TranslateError; the message check
// covers drivers that do not translate.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

func isNotNullConstraintViolation(err error) bool {
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "not null") || strings.Contains(msg, "23502")
}
