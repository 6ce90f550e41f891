// file: internals/helpers/dberr.go
package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TranslateDBError menerjemahkan error constraint dari storage ke taxonomy API,
// supaya kode error engine tidak bocor ke client.
//   - unique violation  -> 409 conflictMsg
//   - fk violation      -> 409 referencedMsg (row masih direferensikan / referensi tak valid)
//   - record not found  -> 404
//   - lainnya           -> 500 fallbackMsg
func TranslateDBError(err error, conflictMsg, referencedMsg, fallbackMsg string) error {
	if err == nil {
		return nil
	}
	if fe, ok := err.(*fiber.Error); ok {
		return fe
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}

	low := strings.ToLower(err.Error())
	switch {
	case strings.Contains(low, "duplicate key") || strings.Contains(low, "unique constraint") || strings.Contains(low, "23505"):
		return fiber.NewError(fiber.StatusConflict, conflictMsg)
	case strings.Contains(low, "foreign key") || strings.Contains(low, "violates foreign key constraint") || strings.Contains(low, "23503"):
		return fiber.NewError(fiber.StatusConflict, referencedMsg)
	default:
		return fiber.NewError(fiber.StatusInternalServerError, fallbackMsg)
	}
}

func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") ||
		strings.Contains(low, "unique constraint") ||
		strings.Contains(low, "23505")
}

func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "foreign key") || strings.Contains(low, "23503")
}
