package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	PaymentStatusProcessing = "processing"
	PaymentStatusPaid       = "paid"
	PaymentStatusFailed     = "failed"
)

const (
	PaymentMethodGateway      = "gateway"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCash         = "cash"
	PaymentMethodQRIS         = "qris"
)

func IsValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusProcessing, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}
	return false
}

func IsValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodGateway, PaymentMethodBankTransfer, PaymentMethodCash, PaymentMethodQRIS:
		return true
	}
	return false
}

/* ===================== Model ===================== */

// PaymentModel: 1:1 dengan orders (uniqueIndex payment_order_id).
// payment_paid_at hanya diisi saat transisi ke paid.
type PaymentModel struct {
	PaymentID      uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentOrderID uuid.UUID `gorm:"column:payment_order_id;type:uuid;uniqueIndex;not null" json:"payment_order_id"`

	PaymentAmountIDR int64  `gorm:"column:payment_amount_idr;not null;check:payment_amount_idr >= 0" json:"payment_amount_idr"`
	PaymentStatus    string `gorm:"column:payment_status;type:varchar(20);not null;default:'processing'" json:"payment_status"`
	PaymentMethod    string `gorm:"column:payment_method;type:varchar(20);not null" json:"payment_method"`

	// Info gateway (opsional untuk metode manual)
	PaymentExternalID  *string `gorm:"column:payment_external_id" json:"payment_external_id,omitempty"`
	PaymentCheckoutURL *string `gorm:"column:payment_checkout_url" json:"payment_checkout_url,omitempty"`
	PaymentSnapToken   *string `gorm:"column:payment_snap_token" json:"payment_snap_token,omitempty"`

	PaymentPaidAt *time.Time        `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`
	PaymentMeta   datatypes.JSONMap `gorm:"column:payment_meta;type:jsonb" json:"payment_meta,omitempty"`

	CreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	UpdatedAt time.Time      `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"-"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

func (p *PaymentModel) IsProcessing() bool { return p.PaymentStatus == PaymentStatusProcessing }
func (p *PaymentModel) IsPaid() bool       { return p.PaymentStatus == PaymentStatusPaid }
