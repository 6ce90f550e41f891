package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel: satu cart per user (unique index di cart_user_id).
type CartModel struct {
	CartID     uuid.UUID `gorm:"column:cart_id;type:uuid;default:gen_random_uuid();primaryKey" json:"cart_id"`
	CartUserID uuid.UUID `gorm:"column:cart_user_id;type:uuid;uniqueIndex;not null" json:"cart_user_id"`

	CartItems []CartItemModel `gorm:"foreignKey:CartItemCartID;references:CartID" json:"cart_items,omitempty"`

	CreatedAt time.Time `gorm:"column:cart_created_at;autoCreateTime" json:"cart_created_at"`
	UpdatedAt time.Time `gorm:"column:cart_updated_at;autoUpdateTime" json:"cart_updated_at"`
}

func (CartModel) TableName() string {
	return "carts"
}
