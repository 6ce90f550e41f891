package model

import (
	"time"

	"github.com/google/uuid"

	bookModel "tokobuku_backend/internals/features/catalog/books/model"
)

// CartItemModel: maksimal satu baris per pasangan (cart, book).
type CartItemModel struct {
	CartItemID     uuid.UUID `gorm:"column:cart_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"cart_item_id"`
	CartItemCartID uuid.UUID `gorm:"column:cart_item_cart_id;type:uuid;not null;uniqueIndex:uq_cart_item" json:"cart_item_cart_id"`
	CartItemBookID uuid.UUID `gorm:"column:cart_item_book_id;type:uuid;not null;uniqueIndex:uq_cart_item" json:"cart_item_book_id"`

	CartItemQuantity   int  `gorm:"column:cart_item_quantity;not null;check:cart_item_quantity > 0" json:"cart_item_quantity"`
	CartItemIsSelected bool `gorm:"column:cart_item_is_selected;not null;default:true" json:"cart_item_is_selected"`

	CartItemBook *bookModel.BookModel `gorm:"foreignKey:CartItemBookID;references:BookID" json:"cart_item_book,omitempty"`

	CreatedAt time.Time `gorm:"column:cart_item_created_at;autoCreateTime" json:"cart_item_created_at"`
	UpdatedAt time.Time `gorm:"column:cart_item_updated_at;autoUpdateTime" json:"cart_item_updated_at"`
}

func (CartItemModel) TableName() string {
	return "cart_items"
}
