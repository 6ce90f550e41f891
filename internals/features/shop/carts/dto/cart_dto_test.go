package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookModel "tokobuku_backend/internals/features/catalog/books/model"
	cartModel "tokobuku_backend/internals/features/shop/carts/model"
)

func cartFixture() *cartModel.CartModel {
	bookA := &bookModel.BookModel{BookID: uuid.New(), BookTitle: "Laskar Pelangi", BookPriceIDR: 100_000, BookStock: 10}
	bookB := &bookModel.BookModel{BookID: uuid.New(), BookTitle: "Bumi Manusia", BookPriceIDR: 85_000, BookStock: 5}

	return &cartModel.CartModel{
		CartID: uuid.New(),
		CartItems: []cartModel.CartItemModel{
			{
				CartItemID:         uuid.New(),
				CartItemBookID:     bookA.BookID,
				CartItemQuantity:   2,
				CartItemIsSelected: true,
				CartItemBook:       bookA,
			},
			{
				CartItemID:         uuid.New(),
				CartItemBookID:     bookB.BookID,
				CartItemQuantity:   1,
				CartItemIsSelected: false,
				CartItemBook:       bookB,
			},
		},
	}
}

func TestBuildCartResponse_Totals(t *testing.T) {
	resp := BuildCartResponse(cartFixture())

	require.Len(t, resp.Items, 2)
	assert.Equal(t, 3, resp.TotalItems)
	// total menghitung SEMUA item, selected hanya yang dicentang
	assert.Equal(t, int64(285_000), resp.TotalPriceIDR)
	assert.Equal(t, int64(200_000), resp.SelectedTotalIDR)

	assert.Equal(t, int64(200_000), resp.Items[0].SubTotal)
	assert.Equal(t, int64(85_000), resp.Items[1].SubTotal)
	assert.Equal(t, "Laskar Pelangi", resp.Items[0].BookTitle)
}

func TestBuildCartResponse_Kosong(t *testing.T) {
	resp := BuildCartResponse(&cartModel.CartModel{CartID: uuid.New()})

	assert.Empty(t, resp.Items)
	assert.Zero(t, resp.TotalItems)
	assert.Zero(t, resp.TotalPriceIDR)
	assert.Zero(t, resp.SelectedTotalIDR)
}

func TestBuildCartResponse_SemuaDeselect(t *testing.T) {
	cart := cartFixture()
	for i := range cart.CartItems {
		cart.CartItems[i].CartItemIsSelected = false
	}
	resp := BuildCartResponse(cart)

	assert.Equal(t, int64(285_000), resp.TotalPriceIDR)
	assert.Zero(t, resp.SelectedTotalIDR)
}

func TestAddCartItemRequest_SelectedDefaultTrue(t *testing.T) {
	req := AddCartItemRequest{BookID: uuid.New(), Quantity: 1}
	assert.True(t, req.Selected())

	no := false
	req.IsSelected = &no
	assert.False(t, req.Selected())

	ya := true
	req.IsSelected = &ya
	assert.True(t, req.Selected())
}

func TestUpdateCartItemRequest_QuantityNegatifLolosValidasi(t *testing.T) {
	// quantity <= 0 artinya hapus item, bukan input salah
	v := validator.New()
	minus := -3
	req := UpdateCartItemRequest{Quantity: &minus}

	require.NoError(t, v.Struct(&req))
}
