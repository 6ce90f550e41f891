package dto

import (
	"github.com/google/uuid"
)

type CreatePaymentRequest struct {
	OrderID   uuid.UUID `json:"order_id" validate:"required"`
	AmountIDR int64     `json:"amount_idr" validate:"required,min=1"`
	Method    string    `json:"method" validate:"required,oneof=gateway bank_transfer cash qris"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=processing paid failed"`
}

// MidtransNotification: payload webhook yang kita pakai saja.
type MidtransNotification struct {
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	PaymentType       string `json:"payment_type"`
	TransactionID     string `json:"transaction_id"`
}
