package postgres

import (
	"strings"

	"estate/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation checks whether err is a unique constraint violation.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

// isNotNullConstraintViolation checks whether err is a NOT NULL constraint violation.
func isNotNullConstraintViolation(err error) bool {
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "null value") && strings.Contains(msg, "constraint")
}
