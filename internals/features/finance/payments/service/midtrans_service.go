package service

import (
	"crypto/sha512"
	"encoding/hex"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tokobuku_backend/internals/configs"
	"tokobuku_backend/internals/features/finance/payments/dto"
	paymentModel "tokobuku_backend/internals/features/finance/payments/model"
)

var snapClient snap.Client

// InitMidtrans dipanggil sekali dari main. Tanpa server key, metode gateway
// akan ditolak saat dipakai.
func InitMidtrans() {
	key := strings.TrimSpace(configs.MidtransServerKey)
	if key == "" {
		log.Println("⚠️  MIDTRANS_SERVER_KEY kosong, payment gateway nonaktif")
		return
	}
	env := midtrans.Sandbox
	if configs.GetEnv("MIDTRANS_ENV") == "production" {
		env = midtrans.Production
	}
	snapClient.New(key, env)
	log.Println("🔌 Midtrans Snap client siap")
}

// CreateSnapTransaction bikin transaksi Snap untuk satu order.
func CreateSnapTransaction(orderID uuid.UUID, amountIDR int64) (snapToken, redirectURL string, err error) {
	if strings.TrimSpace(configs.MidtransServerKey) == "" {
		return "", "", fiber.NewError(fiber.StatusServiceUnavailable, "Payment gateway belum dikonfigurasi")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID.String(),
			GrossAmt: amountIDR,
		},
	}
	resp, snapErr := snapClient.CreateTransaction(req)
	if snapErr != nil {
		log.Printf("[midtrans] create transaction gagal: %v", snapErr.GetMessage())
		return "", "", fiber.NewError(fiber.StatusBadGateway, "Gagal membuat transaksi di payment gateway")
	}
	return resp.Token, resp.RedirectURL, nil
}

// VerifyMidtransSignature: sha512(order_id + status_code + gross_amount + server_key).
func VerifyMidtransSignature(n *dto.MidtransNotification, serverKey string) bool {
	payload := n.OrderID + n.StatusCode + n.GrossAmount + serverKey
	sum := sha512.Sum512([]byte(payload))
	return hex.EncodeToString(sum[:]) == n.SignatureKey
}

// HandleMidtransNotification: map status gateway -> status payment internal,
// lalu terapkan lewat ApplyPaymentStatus (order ikut completed kalau paid).
func HandleMidtransNotification(db *gorm.DB, n *dto.MidtransNotification) error {
	if !VerifyMidtransSignature(n, strings.TrimSpace(configs.MidtransServerKey)) {
		return fiber.NewError(fiber.StatusUnauthorized, "Signature tidak valid")
	}

	orderID, err := uuid.Parse(n.OrderID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "order_id tidak valid")
	}

	var payment paymentModel.PaymentModel
	if err := db.First(&payment, "payment_order_id = ?", orderID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Payment tidak ditemukan")
	}

	var newStatus string
	switch n.TransactionStatus {
	case "capture":
		if n.FraudStatus == "accept" {
			newStatus = paymentModel.PaymentStatusPaid
		} else {
			newStatus = paymentModel.PaymentStatusFailed
		}
	case "settlement":
		newStatus = paymentModel.PaymentStatusPaid
	case "deny", "cancel", "expire", "failure":
		newStatus = paymentModel.PaymentStatusFailed
	case "pending":
		return nil // belum final, tunggu notifikasi berikutnya
	default:
		log.Printf("[midtrans] transaction_status tidak dikenal: %s", n.TransactionStatus)
		return nil
	}

	// simpan jejak gateway sebelum transisi
	meta := datatypes.JSONMap{
		"transaction_id":     n.TransactionID,
		"transaction_status": n.TransactionStatus,
		"payment_type":       n.PaymentType,
	}
	if err := db.Model(&payment).Updates(map[string]interface{}{
		"payment_external_id": n.TransactionID,
		"payment_meta":        meta,
	}).Error; err != nil {
		log.Printf("[midtrans] simpan meta gagal: %v", err)
	}

	_, err = ApplyPaymentStatus(db, payment.PaymentID, newStatus)
	return err
}
