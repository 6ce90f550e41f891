package model

import (
	"time"

	"github.com/google/uuid"

	bookModel "tokobuku_backend/internals/features/catalog/books/model"
)

// WishlistModel: maksimal satu entri per pasangan (user, book).
type WishlistModel struct {
	WishlistID     uuid.UUID `gorm:"column:wishlist_id;type:uuid;default:gen_random_uuid();primaryKey" json:"wishlist_id"`
	WishlistUserID uuid.UUID `gorm:"column:wishlist_user_id;type:uuid;not null;uniqueIndex:uq_wishlist_user_book" json:"wishlist_user_id"`
	WishlistBookID uuid.UUID `gorm:"column:wishlist_book_id;type:uuid;not null;uniqueIndex:uq_wishlist_user_book" json:"wishlist_book_id"`

	WishlistBook *bookModel.BookModel `gorm:"foreignKey:WishlistBookID;references:BookID" json:"wishlist_book,omitempty"`

	CreatedAt time.Time `gorm:"column:wishlist_created_at;autoCreateTime" json:"wishlist_created_at"`
}

func (WishlistModel) TableName() string {
	return "wishlists"
}
