package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"tokobuku_backend/internals/features/finance/payments/dto"
)

func signedNotification(serverKey string) *dto.MidtransNotification {
	n := &dto.MidtransNotification{
		OrderID:           "9f2c1a00-0000-0000-0000-000000000001",
		StatusCode:        "200",
		GrossAmount:       "285000.00",
		TransactionStatus: "settlement",
	}
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + serverKey))
	n.SignatureKey = hex.EncodeToString(sum[:])
	return n
}

func TestVerifyMidtransSignature(t *testing.T) {
	n := signedNotification("SB-server-key")
	assert.True(t, VerifyMidtransSignature(n, "SB-server-key"))
}

func TestVerifyMidtransSignature_KeySalah(t *testing.T) {
	n := signedNotification("SB-server-key")
	assert.False(t, VerifyMidtransSignature(n, "key-lain"))
}

func TestVerifyMidtransSignature_PayloadDiubah(t *testing.T) {
	n := signedNotification("SB-server-key")
	n.GrossAmount = "1.00" // amount dimanipulasi setelah ditandatangani
	assert.False(t, VerifyMidtransSignature(n, "SB-server-key"))
}
