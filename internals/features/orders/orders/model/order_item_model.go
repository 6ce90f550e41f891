package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderItemModel: price_at_time = harga buku saat order dibuat, tidak ikut
// berubah kalau harga katalog diedit.
type OrderItemModel struct {
	OrderItemID      uuid.UUID `gorm:"column:order_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"order_item_id"`
	OrderItemOrderID uuid.UUID `gorm:"column:order_item_order_id;type:uuid;not null;index" json:"order_item_order_id"`
	OrderItemBookID  uuid.UUID `gorm:"column:order_item_book_id;type:uuid;not null" json:"order_item_book_id"`

	OrderItemBookTitleSnapshot string `gorm:"column:order_item_book_title_snapshot;size:255;not null" json:"order_item_book_title_snapshot"`
	OrderItemQuantity          int    `gorm:"column:order_item_quantity;not null;check:order_item_quantity > 0" json:"order_item_quantity"`
	OrderItemPriceAtTimeIDR    int64  `gorm:"column:order_item_price_at_time_idr;not null" json:"order_item_price_at_time_idr"`
	OrderItemSubTotalIDR       int64  `gorm:"column:order_item_sub_total_idr;not null" json:"order_item_sub_total_idr"`

	CreatedAt time.Time `gorm:"column:order_item_created_at;autoCreateTime" json:"order_item_created_at"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}
