package model

import (
	"time"

	"github.com/google/uuid"
)

/* ===================== Status (string enum) ===================== */

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCanceled   = "canceled"
)

var orderTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCompleted, OrderStatusCanceled},
	OrderStatusProcessing: {OrderStatusCompleted, OrderStatusCanceled},
	// completed & canceled terminal
}

func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCanceled:
		return true
	}
	return false
}

// CanTransition: state machine order. Terminal state menolak semua transisi.
func CanTransition(from, to string) bool {
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

/* ===================== Model ===================== */

// OrderModel: snapshot alamat & telepon dibekukan saat create supaya edit
// alamat belakangan tidak mengubah order historis.
type OrderModel struct {
	OrderID     uuid.UUID `gorm:"column:order_id;type:uuid;default:gen_random_uuid();primaryKey" json:"order_id"`
	OrderUserID uuid.UUID `gorm:"column:order_user_id;type:uuid;not null;index" json:"order_user_id"`

	OrderStatus         string `gorm:"column:order_status;type:varchar(20);not null;default:'pending'" json:"order_status"`
	OrderTotalAmountIDR int64  `gorm:"column:order_total_amount_idr;not null;check:order_total_amount_idr >= 0" json:"order_total_amount_idr"`

	OrderAddressSnapshot string `gorm:"column:order_address_snapshot;type:text;not null" json:"order_address_snapshot"`
	OrderPhoneSnapshot   string `gorm:"column:order_phone_snapshot;size:20;not null" json:"order_phone_snapshot"`

	OrderItems []OrderItemModel `gorm:"foreignKey:OrderItemOrderID;references:OrderID" json:"order_items,omitempty"`

	CreatedAt time.Time `gorm:"column:order_created_at;autoCreateTime" json:"order_created_at"`
	UpdatedAt time.Time `gorm:"column:order_updated_at;autoUpdateTime" json:"order_updated_at"`
}

func (OrderModel) TableName() string {
	return "orders"
}

func (o *OrderModel) IsPending() bool  { return o.OrderStatus == OrderStatusPending }
func (o *OrderModel) IsTerminal() bool {
	return o.OrderStatus == OrderStatusCompleted || o.OrderStatus == OrderStatusCanceled
}
