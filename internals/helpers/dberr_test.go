package helper

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func asFiberError(t *testing.T, err error) *fiber.Error {
	t.Helper()
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "harus *fiber.Error, dapat %T", err)
	return fe
}

func TestTranslateDBError_Nil(t *testing.T) {
	assert.NoError(t, TranslateDBError(nil, "a", "b", "c"))
}

func TestTranslateDBError_FiberErrorTembus(t *testing.T) {
	orig := fiber.NewError(fiber.StatusBadRequest, "quantity harus > 0")
	got := TranslateDBError(orig, "a", "b", "c")
	assert.Same(t, orig, got)
}

func TestTranslateDBError_RecordNotFound(t *testing.T) {
	fe := asFiberError(t, TranslateDBError(gorm.ErrRecordNotFound, "a", "b", "c"))
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestTranslateDBError_UniqueViolation(t *testing.T) {
	err := errors.New(`ERROR: duplicate key value violates unique constraint "uq_wishlist_user_book" (SQLSTATE 23505)`)
	fe := asFiberError(t, TranslateDBError(err, "Buku sudah ada di wishlist", "ref", "fallback"))
	assert.Equal(t, fiber.StatusConflict, fe.Code)
	assert.Equal(t, "Buku sudah ada di wishlist", fe.Message)
}

func TestTranslateDBError_ForeignKey(t *testing.T) {
	err := errors.New(`ERROR: update or delete on table "books" violates foreign key constraint "order_items_book_fk" (SQLSTATE 23503)`)
	fe := asFiberError(t, TranslateDBError(err, "conflict", "Buku masih direferensikan", "fallback"))
	assert.Equal(t, fiber.StatusConflict, fe.Code)
	assert.Equal(t, "Buku masih direferensikan", fe.Message)
}

func TestTranslateDBError_Fallback(t *testing.T) {
	fe := asFiberError(t, TranslateDBError(errors.New("connection refused"), "a", "b", "Gagal menyimpan"))
	assert.Equal(t, fiber.StatusInternalServerError, fe.Code)
	assert.Equal(t, "Gagal menyimpan", fe.Message)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(errors.New("duplicate key value (SQLSTATE 23505)")))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(errors.New("violates foreign key constraint")))
	assert.False(t, IsForeignKeyViolation(nil))
}
