package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports whether err is a store-level uniqueness
// violation. GORM translates these to ErrDuplicatedKey when the driver
// supports it; the message check covers drivers that don't.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

// violatesColumn reports whether a uniqueness violation names the given
// column, so the duplicate can be mapped to the right domain error.
func violatesColumn(err error, column string) bool {
	return strings.Contains(strings.ToLower(err.Error()), column)
}
