package dto

import (
	"github.com/google/uuid"

	orderModel "tokobuku_backend/internals/features/orders/orders/model"
)

/* ===== Requests ===== */

type OrderItemInput struct {
	BookID   uuid.UUID `json:"book_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	AddressID uuid.UUID        `json:"address_id" validate:"required"`
	Items     []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing completed canceled"`
}

/* ===== Responses ===== */

type OrderItemResponse struct {
	OrderItemID   uuid.UUID `json:"order_item_id"`
	BookID        uuid.UUID `json:"book_id"`
	BookTitle     string    `json:"book_title"`
	Quantity      int       `json:"quantity"`
	PriceAtTime   int64     `json:"price_at_time_idr"`
	SubTotalIDR   int64     `json:"sub_total_idr"`
}

type OrderResponse struct {
	OrderID         uuid.UUID           `json:"order_id"`
	Status          string              `json:"status"`
	TotalAmountIDR  int64               `json:"total_amount_idr"`
	AddressSnapshot string              `json:"address_snapshot"`
	PhoneSnapshot   string              `json:"phone_snapshot"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       string              `json:"created_at"`
}

func FromOrderModel(m *orderModel.OrderModel) OrderResponse {
	resp := OrderResponse{
		OrderID:         m.OrderID,
		Status:          m.OrderStatus,
		TotalAmountIDR:  m.OrderTotalAmountIDR,
		AddressSnapshot: m.OrderAddressSnapshot,
		PhoneSnapshot:   m.OrderPhoneSnapshot,
		Items:           make([]OrderItemResponse, 0, len(m.OrderItems)),
		CreatedAt:       m.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	for _, it := range m.OrderItems {
		resp.Items = append(resp.Items, OrderItemResponse{
			OrderItemID: it.OrderItemID,
			BookID:      it.OrderItemBookID,
			BookTitle:   it.OrderItemBookTitleSnapshot,
			Quantity:    it.OrderItemQuantity,
			PriceAtTime: it.OrderItemPriceAtTimeIDR,
			SubTotalIDR: it.OrderItemSubTotalIDR,
		})
	}
	return resp
}

func FromOrderModels(ms []orderModel.OrderModel) []OrderResponse {
	out := make([]OrderResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromOrderModel(&ms[i]))
	}
	return out
}

/* ===== Statistik admin ===== */

type OrderStatistics struct {
	TotalOrders     int64            `json:"total_orders"`
	TotalRevenueIDR int64            `json:"total_revenue_idr"`
	CountByStatus   map[string]int64 `json:"count_by_status"`
}
