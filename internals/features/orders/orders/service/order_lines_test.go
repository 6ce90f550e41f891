package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokobuku_backend/internals/features/orders/orders/dto"
)

func snapshotFixture() (map[uuid.UUID]BookSnapshot, uuid.UUID, uuid.UUID) {
	bookA := uuid.New()
	bookB := uuid.New()
	books := map[uuid.UUID]BookSnapshot{
		bookA: {BookID: bookA, Title: "Laskar Pelangi", PriceIDR: 100_000, Stock: 10},
		bookB: {BookID: bookB, Title: "Bumi Manusia", PriceIDR: 85_000, Stock: 3},
	}
	return books, bookA, bookB
}

func TestMergeOrderItems(t *testing.T) {
	bookA := uuid.New()
	bookB := uuid.New()

	merged := MergeOrderItems([]dto.OrderItemInput{
		{BookID: bookA, Quantity: 1},
		{BookID: bookB, Quantity: 2},
		{BookID: bookA, Quantity: 3},
	})

	require.Len(t, merged, 2)
	assert.Equal(t, bookA, merged[0].BookID)
	assert.Equal(t, 4, merged[0].Quantity)
	assert.Equal(t, bookB, merged[1].BookID)
	assert.Equal(t, 2, merged[1].Quantity)
}

func TestMergeOrderItems_Empty(t *testing.T) {
	assert.Empty(t, MergeOrderItems(nil))
}

func TestBuildOrderLines_TotalDanSnapshot(t *testing.T) {
	books, bookA, bookB := snapshotFixture()

	lines, total, err := BuildOrderLines([]dto.OrderItemInput{
		{BookID: bookA, Quantity: 2},
		{BookID: bookB, Quantity: 1},
	}, books)

	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, int64(285_000), total)

	assert.Equal(t, "Laskar Pelangi", lines[0].OrderItemBookTitleSnapshot)
	assert.Equal(t, int64(100_000), lines[0].OrderItemPriceAtTimeIDR)
	assert.Equal(t, int64(200_000), lines[0].OrderItemSubTotalIDR)
	assert.Equal(t, int64(85_000), lines[1].OrderItemSubTotalIDR)
}

func TestBuildOrderLines_BukuTidakAda(t *testing.T) {
	books, _, _ := snapshotFixture()
	missing := uuid.New()

	_, _, err := BuildOrderLines([]dto.OrderItemInput{
		{BookID: missing, Quantity: 1},
	}, books)

	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
	assert.Contains(t, fe.Message, missing.String())
}

func TestBuildOrderLines_QuantityNol(t *testing.T) {
	books, bookA, _ := snapshotFixture()

	_, _, err := BuildOrderLines([]dto.OrderItemInput{
		{BookID: bookA, Quantity: 0},
	}, books)

	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestBuildOrderLines_StokKurang(t *testing.T) {
	books, _, bookB := snapshotFixture()

	_, _, err := BuildOrderLines([]dto.OrderItemInput{
		{BookID: bookB, Quantity: 4}, // stok cuma 3
	}, books)

	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Contains(t, fe.Message, "tersedia 3")
	assert.Contains(t, fe.Message, "diminta 4")
}

func TestBuildOrderLines_GagalTotalSemua(t *testing.T) {
	// satu item gagal -> tidak ada baris yang dikembalikan sama sekali
	books, bookA, bookB := snapshotFixture()

	lines, total, err := BuildOrderLines([]dto.OrderItemInput{
		{BookID: bookA, Quantity: 1},
		{BookID: bookB, Quantity: 99},
	}, books)

	require.Error(t, err)
	assert.Nil(t, lines)
	assert.Zero(t, total)
}

func TestErrInvalidTransition_Kode400(t *testing.T) {
	err := errInvalidTransition("completed", "pending")

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Contains(t, fe.Message, "completed -> pending")
}
