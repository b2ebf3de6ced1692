package persistence

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rmc/backend/internal/domain/shared"
)

// TranslateError rewrites driver-level faults into domain errors. GORM's
// TranslateError option normalizes dialect-specific constraint violations, so
// the same mapping covers postgres in production and sqlite in tests.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.ErrDuplicateEntry
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return shared.ErrReferenceViolation
	default:
		return err
	}
}
