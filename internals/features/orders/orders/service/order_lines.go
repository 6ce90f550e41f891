package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tokobuku_backend/internals/features/orders/orders/dto"
	orderModel "tokobuku_backend/internals/features/orders/orders/model"
)

// BookSnapshot: potret buku pada saat order dibuat.
type BookSnapshot struct {
	BookID   uuid.UUID
	Title    string
	PriceIDR int64
	Stock    int
}

// MergeOrderItems gabungkan book_id duplikat jadi satu baris, quantity
// dijumlahkan. Urutan kemunculan pertama dipertahankan.
func MergeOrderItems(items []dto.OrderItemInput) []dto.OrderItemInput {
	index := make(map[uuid.UUID]int, len(items))
	merged := make([]dto.OrderItemInput, 0, len(items))
	for _, it := range items {
		if pos, ok := index[it.BookID]; ok {
			merged[pos].Quantity += it.Quantity
			continue
		}
		index[it.BookID] = len(merged)
		merged = append(merged, it)
	}
	return merged
}

// BuildOrderLines bentuk order item + total dari input yang SUDAH di-merge.
// Murni: tidak menyentuh DB, semua data buku lewat snapshot map.
//   - buku tidak ada di map  -> 404 dengan ID offender
//   - quantity <= 0          -> 400
//   - quantity > stok        -> 400 dengan sisa stok
func BuildOrderLines(items []dto.OrderItemInput, books map[uuid.UUID]BookSnapshot) ([]orderModel.OrderItemModel, int64, error) {
	lines := make([]orderModel.OrderItemModel, 0, len(items))
	var total int64
	for _, it := range items {
		book, ok := books[it.BookID]
		if !ok {
			return nil, 0, fiber.NewError(fiber.StatusNotFound,
				fmt.Sprintf("Buku tidak ditemukan: %s", it.BookID.String()))
		}
		if it.Quantity <= 0 {
			return nil, 0, fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Quantity harus > 0 untuk buku %q", book.Title))
		}
		if it.Quantity > book.Stock {
			return nil, 0, fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Stok %q tidak cukup: tersedia %d, diminta %d", book.Title, book.Stock, it.Quantity))
		}
		subTotal := book.PriceIDR * int64(it.Quantity)
		lines = append(lines, orderModel.OrderItemModel{
			OrderItemBookID:            it.BookID,
			OrderItemBookTitleSnapshot: book.Title,
			OrderItemQuantity:          it.Quantity,
			OrderItemPriceAtTimeIDR:    book.PriceIDR,
			OrderItemSubTotalIDR:       subTotal,
		})
		total += subTotal
	}
	return lines, total, nil
}
