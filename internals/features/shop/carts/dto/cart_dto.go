package dto

import (
	"github.com/google/uuid"

	cartModel "tokobuku_backend/internals/features/shop/carts/model"
)

/* ===== Requests ===== */

type AddCartItemRequest struct {
	BookID     uuid.UUID `json:"book_id" validate:"required"`
	Quantity   int       `json:"quantity" validate:"required,min=1"`
	IsSelected *bool     `json:"is_selected"`
}

// Selected: is_selected tidak dikirim dianggap true.
func (r *AddCartItemRequest) Selected() bool {
	return r.IsSelected == nil || *r.IsSelected
}

// UpdateCartItemRequest: quantity 0 atau negatif berarti hapus item.
type UpdateCartItemRequest struct {
	Quantity   *int  `json:"quantity"`
	IsSelected *bool `json:"is_selected"`
}

/* ===== Responses ===== */

type CartItemResponse struct {
	CartItemID uuid.UUID `json:"cart_item_id"`
	BookID     uuid.UUID `json:"book_id"`
	BookTitle  string    `json:"book_title"`
	PriceIDR   int64     `json:"price_idr"`
	Stock      int       `json:"stock"`
	Quantity   int       `json:"quantity"`
	IsSelected bool      `json:"is_selected"`
	SubTotal   int64     `json:"sub_total_idr"`
}

type CartResponse struct {
	CartID             uuid.UUID          `json:"cart_id"`
	Items              []CartItemResponse `json:"items"`
	TotalItems         int                `json:"total_items"`
	TotalPriceIDR      int64              `json:"total_price_idr"`
	SelectedTotalIDR   int64              `json:"selected_total_price_idr"`
}

// BuildCartResponse hitung subtotal per item + dua total:
// total semua item dan total item terpilih saja.
func BuildCartResponse(cart *cartModel.CartModel) CartResponse {
	resp := CartResponse{
		CartID: cart.CartID,
		Items:  make([]CartItemResponse, 0, len(cart.CartItems)),
	}
	for i := range cart.CartItems {
		it := &cart.CartItems[i]
		item := CartItemResponse{
			CartItemID: it.CartItemID,
			BookID:     it.CartItemBookID,
			Quantity:   it.CartItemQuantity,
			IsSelected: it.CartItemIsSelected,
		}
		if it.CartItemBook != nil {
			item.BookTitle = it.CartItemBook.BookTitle
			item.PriceIDR = it.CartItemBook.BookPriceIDR
			item.Stock = it.CartItemBook.BookStock
			item.SubTotal = it.CartItemBook.BookPriceIDR * int64(it.CartItemQuantity)
		}
		resp.Items = append(resp.Items, item)
		resp.TotalItems += it.CartItemQuantity
		resp.TotalPriceIDR += item.SubTotal
		if it.CartItemIsSelected {
			resp.SelectedTotalIDR += item.SubTotal
		}
	}
	return resp
}
