package service

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tokobuku_backend/internals/features/finance/payments/dto"
	paymentModel "tokobuku_backend/internals/features/finance/payments/model"
	orderModel "tokobuku_backend/internals/features/orders/orders/model"
	helper "tokobuku_backend/internals/helpers"
)

/* ==========================
   Create
========================== */

// CreatePayment: satu payment per order (409 kalau sudah ada), amount harus
// sama persis dengan total order. Metode gateway sekalian minta Snap token.
func CreatePayment(db *gorm.DB, userID uuid.UUID, req *dto.CreatePaymentRequest) (*paymentModel.PaymentModel, error) {
	var order orderModel.OrderModel
	if err := db.First(&order, "order_id = ? AND order_user_id = ?", req.OrderID, userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Order tidak ditemukan")
	}
	if order.IsTerminal() {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Order dengan status "+order.OrderStatus+" tidak bisa dibayar")
	}

	var count int64
	if err := db.Model(&paymentModel.PaymentModel{}).
		Where("payment_order_id = ?", req.OrderID).Count(&count).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Order ini sudah punya payment")
	}

	// amount harus eksak, tidak ada toleransi
	if req.AmountIDR != order.OrderTotalAmountIDR {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Jumlah pembayaran tidak sesuai: order %d, dibayar %d",
				order.OrderTotalAmountIDR, req.AmountIDR))
	}

	payment := paymentModel.PaymentModel{
		PaymentOrderID:   req.OrderID,
		PaymentAmountIDR: req.AmountIDR,
		PaymentStatus:    paymentModel.PaymentStatusProcessing,
		PaymentMethod:    req.Method,
	}

	if req.Method == paymentModel.PaymentMethodGateway {
		snapToken, redirectURL, err := CreateSnapTransaction(order.OrderID, order.OrderTotalAmountIDR)
		if err != nil {
			return nil, err
		}
		payment.PaymentSnapToken = &snapToken
		payment.PaymentCheckoutURL = &redirectURL
	}

	if err := db.Create(&payment).Error; err != nil {
		return nil, helper.TranslateDBError(err, "Order ini sudah punya payment", "Order tidak valid", "Gagal membuat payment")
	}
	return &payment, nil
}

/* ==========================
   Status
========================== */

// ApplyPaymentStatus: inti transisi payment. paid -> isi paid_at + order ikut
// completed dalam transaksi YANG SAMA (tidak ada jendela payment paid tapi
// order belum selesai). Dipakai update manual admin maupun webhook.
func ApplyPaymentStatus(db *gorm.DB, paymentID uuid.UUID, newStatus string) (*paymentModel.PaymentModel, error) {
	if !paymentModel.IsValidPaymentStatus(newStatus) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Status payment tidak dikenal: "+newStatus)
	}

	var payment paymentModel.PaymentModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&payment, "payment_id = ?", paymentID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Payment tidak ditemukan")
		}
		if payment.PaymentStatus == newStatus {
			return nil // idempotent, webhook sering dikirim ulang
		}
		if !payment.IsProcessing() {
			return fiber.NewError(fiber.StatusBadRequest,
				"Payment dengan status "+payment.PaymentStatus+" tidak bisa diubah")
		}

		updates := map[string]interface{}{"payment_status": newStatus}
		if newStatus == paymentModel.PaymentStatusPaid {
			now := time.Now().UTC()
			updates["payment_paid_at"] = now
			payment.PaymentPaidAt = &now
		}
		if err := tx.Model(&payment).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal update payment")
		}
		payment.PaymentStatus = newStatus

		if newStatus == paymentModel.PaymentStatusPaid {
			var order orderModel.OrderModel
			if err := tx.First(&order, "order_id = ?", payment.PaymentOrderID).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Order payment tidak ditemukan")
			}
			if orderModel.CanTransition(order.OrderStatus, orderModel.OrderStatusCompleted) {
				if err := tx.Model(&order).
					Update("order_status", orderModel.OrderStatusCompleted).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyelesaikan order")
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// ProcessPayment: simulasi settlement untuk metode manual (cash/transfer).
// Hanya payment processing yang bisa diproses.
func ProcessPayment(db *gorm.DB, paymentID uuid.UUID) (*paymentModel.PaymentModel, error) {
	return ApplyPaymentStatus(db, paymentID, paymentModel.PaymentStatusPaid)
}

/* ==========================
   Read
========================== */

func GetPaymentByOrder(db *gorm.DB, userID, orderID uuid.UUID) (*paymentModel.PaymentModel, error) {
	var order orderModel.OrderModel
	if err := db.Select("order_id").
		First(&order, "order_id = ? AND order_user_id = ?", orderID, userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Order tidak ditemukan")
	}
	var payment paymentModel.PaymentModel
	if err := db.First(&payment, "payment_order_id = ?", orderID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Payment tidak ditemukan")
	}
	return &payment, nil
}

func ListPayments(db *gorm.DB, status string, params helper.Params) ([]paymentModel.PaymentModel, int64, error) {
	q := db.Model(&paymentModel.PaymentModel{})
	if status != "" {
		if !paymentModel.IsValidPaymentStatus(status) {
			return nil, 0, fiber.NewError(fiber.StatusBadRequest, "Status payment tidak dikenal: "+status)
		}
		q = q.Where("payment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	order, err := params.SafeOrderClause(map[string]string{
		"created_at": "payment_created_at",
		"amount":     "payment_amount_idr",
	}, "created_at")
	if err != nil {
		return nil, 0, fiber.NewError(fiber.StatusBadRequest, "sort_by tidak valid")
	}

	var payments []paymentModel.PaymentModel
	if err := q.Order(order).
		Limit(params.Limit()).Offset(params.Offset()).
		Find(&payments).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return payments, total, nil
}
